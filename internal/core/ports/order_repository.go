package ports

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by a customer, newest
	// first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves all orders placed at a restaurant, newest
	// first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllExpiredPending retrieves Pending orders whose payment deadline
	// passed before now. Used by the expiration sweeper.
	GetAllExpiredPending(ctx context.Context, now time.Time) ([]*order.Order, error)
}
