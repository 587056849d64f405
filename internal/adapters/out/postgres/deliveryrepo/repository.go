package deliveryrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves the deliveries created for an order.
func (r *GormDeliveryRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.getAll(ctx, "order_id = ?", orderID.Bytes())
}

// GetAllByDrone retrieves the deliveries assigned to a drone, newest first.
func (r *GormDeliveryRepository) GetAllByDrone(ctx context.Context, droneID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := droneID.Validate(); err != nil {
		return nil, err
	}
	return r.getAll(ctx, "drone_id = ?", droneID.Bytes())
}

func (r *GormDeliveryRepository) getAll(ctx context.Context, query string, args ...any) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
