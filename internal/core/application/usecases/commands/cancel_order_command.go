package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents an unconditional cancellation. Unlike
// ChangeOrderStatusCommand it bypasses the transition table; compensating
// flows use it on orders in any state.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand validates the order id.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
