package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrRecordDroneLocationCommandIsNotConstructed = errors.New(
	"RecordDroneLocationCommand must be created via NewRecordDroneLocationCommand constructor",
)

// RecordDroneLocationCommand represents one position report from a drone.
// Coordinate range validation happens here, before any state is touched.
type RecordDroneLocationCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRecordDroneLocationCommand validates the drone id and coordinate
// ranges (latitude [-90, 90], longitude [-180, 180]).
func NewRecordDroneLocationCommand(droneID kernel.UUID, latitude, longitude float64) (RecordDroneLocationCommand, error) {
	cmd := RecordDroneLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := droneID.Validate(); err != nil {
		return RecordDroneLocationCommand{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return RecordDroneLocationCommand{}, err
	}

	cmd.droneID = droneID
	cmd.point = point

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDroneLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordDroneLocationCommandIsNotConstructed)
}

// DroneID returns the reporting drone's identifier.
func (c RecordDroneLocationCommand) DroneID() kernel.UUID { return c.droneID }

// Point returns the validated coordinate.
func (c RecordDroneLocationCommand) Point() kernel.GeoPoint { return c.point }
