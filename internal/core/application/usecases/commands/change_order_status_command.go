package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a guarded status transition request.
// The transition table itself is enforced by the aggregate; the command only
// checks the target is a defined status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order id and the target status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = target

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status { return c.target }
