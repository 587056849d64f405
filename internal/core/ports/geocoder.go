package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
)

// Geocoder resolves a postal address string into a coordinate. Lookups are
// single-attempt outbound calls; callers needing resilience retry externally.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
