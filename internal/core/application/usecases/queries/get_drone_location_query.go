package queries

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetDroneLocationQueryIsNotConstructed = errors.New(
	"GetDroneLocationQuery must be created via NewGetDroneLocationQuery constructor",
)

// GetDroneLocationQuery asks for a drone's most recently reported position.
type GetDroneLocationQuery struct {
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDroneLocationQuery validates and creates the query.
func NewGetDroneLocationQuery(droneID kernel.UUID) (GetDroneLocationQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetDroneLocationQuery{}, err
	}
	return GetDroneLocationQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneLocationQueryIsNotConstructed)
}

// DroneID returns the drone whose position is requested.
func (q GetDroneLocationQuery) DroneID() kernel.UUID {
	return q.droneID
}

// LocationResponse is the read shape of a drone position.
type LocationResponse struct {
	DroneID    string    `json:"droneId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
	Timestamp  int64     `json:"timestamp"`
}
