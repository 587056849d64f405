// Package trackingrepo persists the append-only drone position history onto
// the drone_locations table.
package trackingrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// DroneLocationDTO maps one position sample onto the drone_locations table.
// Rows are inserted and read, never updated.
type DroneLocationDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	DroneID    uuid.UUID `gorm:"type:uuid;index"`
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "drone_locations".
func (DroneLocationDTO) TableName() string {
	return "drone_locations"
}

// fromDomain converts a position sample to its database representation.
func fromDomain(sample tracking.Sample) DroneLocationDTO {
	return DroneLocationDTO{
		DroneID:    sample.DroneID().Bytes(),
		Latitude:   sample.Point().Latitude(),
		Longitude:  sample.Point().Longitude(),
		RecordedAt: sample.RecordedAt(),
	}
}

// toDomain rehydrates a position sample from its row.
func toDomain(dto DroneLocationDTO) (tracking.Sample, error) {
	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return tracking.Sample{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return tracking.Sample{}, err
	}

	return tracking.NewSample(droneID, point, dto.RecordedAt)
}
