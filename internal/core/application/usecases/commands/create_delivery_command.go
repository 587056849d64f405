package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to dispatch a delivery trip for
// a confirmed order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates the order id.
func NewCreateDeliveryCommand(orderID kernel.UUID) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the confirmed order's identifier.
func (c CreateDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
