package queries

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via one of its constructors",
)

type deliveriesFilter int

const (
	deliveriesByOrder deliveriesFilter = iota + 1
	deliveriesByDrone
)

// GetDeliveriesQuery lists delivery trips either for an order or for a
// drone.
type GetDeliveriesQuery struct {
	filter deliveriesFilter
	id     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByOrderQuery lists the trips created for an order.
func NewGetDeliveriesByOrderQuery(orderID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{
		filter: deliveriesByOrder,
		id:     orderID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetDeliveriesByDroneQuery lists the trips assigned to a drone.
func NewGetDeliveriesByDroneQuery(droneID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{
		filter: deliveriesByDrone,
		id:     droneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// DeliveryResponse is the read shape of a delivery trip.
type DeliveryResponse struct {
	ID      string  `json:"id"`
	OrderID string  `json:"orderId"`
	DroneID *string `json:"droneId,omitempty"`

	StartLatitude  float64 `json:"startLatitude"`
	StartLongitude float64 `json:"startLongitude"`
	EndLatitude    float64 `json:"endLatitude"`
	EndLongitude   float64 `json:"endLongitude"`

	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
