package ports

import (
	"context"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllByOrder retrieves the deliveries created for an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// GetAllByDrone retrieves the deliveries assigned to a drone, newest
	// first.
	GetAllByDrone(ctx context.Context, droneID kernel.UUID) ([]*delivery.Delivery, error)
}
