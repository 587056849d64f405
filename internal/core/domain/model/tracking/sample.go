// Package tracking contains the drone position sample: an append-only history
// record whose latest value is additionally duplicated into the TTL cache.
package tracking

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

// Sample is one immutable position report from a drone.
type Sample struct {
	droneID    kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time
}

// NewSample validates and creates a position sample.
func NewSample(droneID kernel.UUID, point kernel.GeoPoint, recordedAt time.Time) (Sample, error) {
	if err := droneID.Validate(); err != nil {
		return Sample{}, errs.NewValueIsRequiredErrorWithCause("droneID", err)
	}
	if err := point.Validate(); err != nil {
		return Sample{}, errs.NewValueIsRequiredErrorWithCause("point", err)
	}
	return Sample{droneID: droneID, point: point, recordedAt: recordedAt}, nil
}

// DroneID returns the reporting drone's identifier.
func (s Sample) DroneID() kernel.UUID { return s.droneID }

// Point returns the reported coordinate.
func (s Sample) Point() kernel.GeoPoint { return s.point }

// RecordedAt returns when the position was reported.
func (s Sample) RecordedAt() time.Time { return s.recordedAt }

// Timestamp returns the report time in unix milliseconds, the form the
// broadcast payload carries.
func (s Sample) Timestamp() int64 { return s.recordedAt.UnixMilli() }
