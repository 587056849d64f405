package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// ReceiverPatch replaces the order's delivery contact wholesale.
type ReceiverPatch struct {
	Name  string
	Email string
	Phone string
}

// AddressPatch replaces the order's delivery address wholesale.
type AddressPatch struct {
	Street string
	Ward   string
	City   string
}

// UpdateOrderCommand represents a partial update of an order's mutable info:
// receiver, address, note and shipping fee. Nil parts are left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	receiver    *order.Receiver
	address     *order.Address
	note        *string
	shippingFee *int64

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates whichever patch parts are present. A patch
// with all parts nil is rejected as an empty update.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	receiver *ReceiverPatch,
	address *AddressPatch,
	note *string,
	shippingFee *int64,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.orderID = orderID

	if receiver == nil && address == nil && note == nil && shippingFee == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	if receiver != nil {
		r, err := order.NewReceiver(receiver.Name, receiver.Email, receiver.Phone)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.receiver = &r
	}
	if address != nil {
		a, err := order.NewAddress(address.Street, address.Ward, address.City)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.address = &a
	}
	if shippingFee != nil && *shippingFee < 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("shippingFee")
	}

	cmd.note = note
	cmd.shippingFee = shippingFee

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Patch returns the validated domain-level patch.
func (c UpdateOrderCommand) Patch() order.UpdateInfoPatch {
	return order.UpdateInfoPatch{
		Receiver:    c.receiver,
		Address:     c.address,
		Note:        c.note,
		ShippingFee: c.shippingFee,
	}
}
