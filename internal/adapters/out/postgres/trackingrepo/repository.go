package trackingrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM. Samples
// are value objects, not aggregates, so nothing is tracked for post-commit
// processing.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a position sample to the history.
func (r *GormTrackingRepository) Add(ctx context.Context, sample tracking.Sample) error {
	dto := fromDomain(sample)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatestByDrone retrieves the most recent sample for a drone.
func (r *GormTrackingRepository) GetLatestByDrone(ctx context.Context, droneID kernel.UUID) (tracking.Sample, error) {
	if err := droneID.Validate(); err != nil {
		return tracking.Sample{}, err
	}

	var dto DroneLocationDTO
	err := r.db.WithContext(ctx).
		Where("drone_id = ?", droneID.Bytes()).
		Order("recorded_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tracking.Sample{}, errs.NewObjectNotFoundError("droneLocation", droneID.String())
		}
		return tracking.Sample{}, err
	}

	return toDomain(dto)
}
