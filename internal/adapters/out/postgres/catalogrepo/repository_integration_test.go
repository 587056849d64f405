package catalogrepo_test

import (
	"context"
	"testing"

	"fastfood/internal/adapters/out/postgres/catalogrepo"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogIntegrationTestSuite exercises the catalog reader against a real
// PostgreSQL database holding the reference tables.
type CatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *catalogrepo.GormCatalog
}

func (suite *CatalogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.DroneDTO{},
	)
	suite.Require().NoError(err)

	suite.catalog = catalogrepo.NewGormCatalog(db)
}

func (suite *CatalogIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users, restaurants, menu_items, drones").Error
	suite.Require().NoError(err)
}

func (suite *CatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CatalogIntegrationTestSuite) TestGetUser() {
	ctx := context.Background()
	id := kernel.NewUUID()

	err := suite.db.Create(&catalogrepo.UserDTO{ID: id.Bytes(), Name: "Nguyen Van A"}).Error
	suite.Require().NoError(err)

	user, err := suite.catalog.GetUser(ctx, id)
	suite.Require().NoError(err)
	suite.True(id.IsEqual(user.ID))
	suite.Equal("Nguyen Van A", user.Name)

	_, err = suite.catalog.GetUser(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogIntegrationTestSuite) TestGetRestaurant_NotGeocodedYet() {
	ctx := context.Background()
	id := kernel.NewUUID()

	err := suite.db.Create(&catalogrepo.RestaurantDTO{
		ID:      id.Bytes(),
		Name:    "Quan Pho 24",
		Address: "24 Le Loi, Ben Nghe, Ho Chi Minh",
	}).Error
	suite.Require().NoError(err)

	restaurant, err := suite.catalog.GetRestaurant(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Quan Pho 24", restaurant.Name)
	suite.True(restaurant.Coordinate.IsZero(), "Unset coordinate should read back as the zero marker")
}

func (suite *CatalogIntegrationTestSuite) TestSetRestaurantCoordinate() {
	ctx := context.Background()
	id := kernel.NewUUID()

	err := suite.db.Create(&catalogrepo.RestaurantDTO{
		ID:      id.Bytes(),
		Name:    "Quan Pho 24",
		Address: "24 Le Loi, Ben Nghe, Ho Chi Minh",
	}).Error
	suite.Require().NoError(err)

	point, err := kernel.NewGeoPoint(10.762622, 106.660172)
	suite.Require().NoError(err)

	err = suite.catalog.SetRestaurantCoordinate(ctx, id, point)
	suite.Require().NoError(err)

	restaurant, err := suite.catalog.GetRestaurant(ctx, id)
	suite.Require().NoError(err)
	suite.False(restaurant.Coordinate.IsZero())
	suite.InDelta(10.762622, restaurant.Coordinate.Latitude(), 1e-9)
	suite.InDelta(106.660172, restaurant.Coordinate.Longitude(), 1e-9)

	err = suite.catalog.SetRestaurantCoordinate(ctx, kernel.NewUUID(), point)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogIntegrationTestSuite) TestGetMenuItem() {
	ctx := context.Background()
	id := kernel.NewUUID()

	err := suite.db.Create(&catalogrepo.MenuItemDTO{ID: id.Bytes(), Name: "Pho bo", Price: 50000}).Error
	suite.Require().NoError(err)

	item, err := suite.catalog.GetMenuItem(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Pho bo", item.Name)
	suite.Equal(int64(50000), item.Price)

	_, err = suite.catalog.GetMenuItem(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogIntegrationTestSuite) TestGetDrone() {
	ctx := context.Background()
	id := kernel.NewUUID()

	err := suite.db.Create(&catalogrepo.DroneDTO{ID: id.Bytes(), Name: "DRN-07"}).Error
	suite.Require().NoError(err)

	drone, err := suite.catalog.GetDrone(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("DRN-07", drone.Name)

	_, err = suite.catalog.GetDrone(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogIntegrationTestSuite))
}
