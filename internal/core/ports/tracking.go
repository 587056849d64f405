package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
)

// LocationCache holds the current position per drone with a fixed TTL.
// An entry that has not been refreshed within the TTL disappears, which
// models "presumed offline if silent".
type LocationCache interface {
	// Set writes or overwrites the drone's current entry, resetting its TTL.
	Set(droneID kernel.UUID, sample tracking.Sample)

	// Get returns the cached current value if present and unexpired.
	Get(droneID kernel.UUID) (tracking.Sample, bool)
}

// LocationPublisher fans a position sample out to subscribers of the drone's
// topic. Broadcast is best-effort: the caller logs failures and never fails
// the originating request over them.
type LocationPublisher interface {
	PublishLocation(ctx context.Context, sample tracking.Sample) error
}
