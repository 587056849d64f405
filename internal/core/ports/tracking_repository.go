package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
)

// TrackingRepository persists the append-only drone position history.
type TrackingRepository interface {
	// Add appends a position sample. Samples are never updated or deleted.
	Add(ctx context.Context, sample tracking.Sample) error

	// GetLatestByDrone retrieves the most recent sample for a drone.
	// Returns an ObjectNotFoundError when the drone never reported.
	GetLatestByDrone(ctx context.Context, droneID kernel.UUID) (tracking.Sample, error)
}
