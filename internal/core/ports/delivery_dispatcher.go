package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
)

// DeliveryDispatcher creates the delivery trip for a confirmed order. The
// settlement flow invokes it after its own transaction committed; a dispatch
// failure is logged and never unwinds the settled payment.
type DeliveryDispatcher interface {
	DispatchForOrder(ctx context.Context, orderID kernel.UUID) error
}
