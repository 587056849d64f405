package catalogrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalog implements the Catalog port over the reference tables. Reads
// run outside the unit of work: the catalog is not part of any business
// transaction this core owns.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM catalog reader.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetUser retrieves a user by id.
func (c *GormCatalog) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	var dto UserDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.User{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.User{}, err
	}

	return ports.User{ID: userID, Name: dto.Name}, nil
}

// GetRestaurant retrieves a restaurant by id. The coordinate is always a
// constructed point; callers detect "not geocoded yet" through IsZero.
func (c *GormCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return ports.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return ports.Restaurant{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}

	coordinate, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:         restaurantID,
		Name:       dto.Name,
		Address:    dto.Address,
		Coordinate: coordinate,
	}, nil
}

// SetRestaurantCoordinate persists a geocoded coordinate onto the restaurant.
func (c *GormCatalog) SetRestaurantCoordinate(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := point.Validate(); err != nil {
		return err
	}

	result := c.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"latitude":  point.Latitude(),
			"longitude": point.Longitude(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return nil
}

// GetMenuItem retrieves a menu item with its current name and price.
func (c *GormCatalog) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return ports.MenuItem{}, err
	}

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return ports.MenuItem{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{ID: menuItemID, Name: dto.Name, Price: dto.Price}, nil
}

// GetDrone retrieves a drone by id.
func (c *GormCatalog) GetDrone(ctx context.Context, id kernel.UUID) (ports.Drone, error) {
	if err := id.Validate(); err != nil {
		return ports.Drone{}, err
	}

	var dto DroneDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Drone{}, errs.NewObjectNotFoundError("drone", id.String())
		}
		return ports.Drone{}, err
	}

	droneID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Drone{}, err
	}

	return ports.Drone{ID: droneID, Name: dto.Name}, nil
}
