package queries

import (
	"context"
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type droneLocationRow struct {
	DroneID    uuid.UUID
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

// GetDroneLocationQueryHandler answers position reads from the TTL cache,
// falling back to the newest history row on a miss and refilling the cache
// from it.
type GetDroneLocationQueryHandler struct {
	cache ports.LocationCache
	db    *gorm.DB
}

// NewGetDroneLocationQueryHandler creates a handler for drone position reads.
func NewGetDroneLocationQueryHandler(cache ports.LocationCache, db *gorm.DB) GetDroneLocationQueryHandler {
	return GetDroneLocationQueryHandler{cache: cache, db: db}
}

// Handle executes the read. A drone that never reported a position yields an
// ObjectNotFoundError.
func (h GetDroneLocationQueryHandler) Handle(ctx context.Context, query GetDroneLocationQuery) (LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return LocationResponse{}, err
	}

	if sample, ok := h.cache.Get(query.DroneID()); ok {
		return sampleToResponse(sample), nil
	}

	var row droneLocationRow
	err := h.db.WithContext(ctx).
		Table("drone_locations").
		Where("drone_id = ?", query.DroneID().Bytes()).
		Order("recorded_at DESC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocationResponse{}, errs.NewObjectNotFoundError("droneLocation", query.DroneID().String())
		}
		return LocationResponse{}, err
	}

	sample, err := rowToSample(row)
	if err != nil {
		return LocationResponse{}, err
	}

	h.cache.Set(sample.DroneID(), sample)

	return sampleToResponse(sample), nil
}

func rowToSample(row droneLocationRow) (tracking.Sample, error) {
	droneID, err := kernel.UUIDFromBytes(row.DroneID[:])
	if err != nil {
		return tracking.Sample{}, err
	}
	point, err := kernel.NewGeoPoint(row.Latitude, row.Longitude)
	if err != nil {
		return tracking.Sample{}, err
	}
	return tracking.NewSample(droneID, point, row.RecordedAt)
}

func sampleToResponse(sample tracking.Sample) LocationResponse {
	return LocationResponse{
		DroneID:    sample.DroneID().String(),
		Latitude:   sample.Point().Latitude(),
		Longitude:  sample.Point().Longitude(),
		RecordedAt: sample.RecordedAt(),
		Timestamp:  sample.Timestamp(),
	}
}
