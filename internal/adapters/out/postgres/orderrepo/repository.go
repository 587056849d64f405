package orderrepo

import (
	"context"
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line snapshots to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	itemDTOs := itemsFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line snapshots are
// immutable after creation, so only the root row is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select("*") forces zero-valued columns through: a cleared note or a
	// zero shipping fee must persist like any other patch.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	itemDTOs, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// GetAllByCustomer retrieves all orders placed by a customer, newest first.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.getAll(ctx, "customer_id = ?", customerID.Bytes())
}

// GetAllByRestaurant retrieves all orders placed at a restaurant, newest
// first.
func (r *GormOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	return r.getAll(ctx, "restaurant_id = ?", restaurantID.Bytes())
}

// GetAllExpiredPending retrieves Pending orders whose payment deadline passed
// before now.
func (r *GormOrderRepository) GetAllExpiredPending(ctx context.Context, now time.Time) ([]*order.Order, error) {
	return r.getAll(ctx, "status = ? AND payment_expires_at < ?", order.Pending.String(), now)
}

func (r *GormOrderRepository) getAll(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		itemDTOs, itemsErr := r.loadItems(ctx, dto.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		o, restoreErr := toDomain(dto, itemDTOs)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDTO, error) {
	var itemDTOs []OrderItemDTO
	err := r.db.WithContext(ctx).Find(&itemDTOs, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return itemDTOs, nil
}
