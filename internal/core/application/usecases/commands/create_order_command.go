package commands

import (
	"errors"
	"fmt"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemRequest is one requested line: a menu-item reference and a
// quantity. Name and price are snapshotted by the handler, not the caller.
type OrderItemRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a checkout request: who orders, from which
// restaurant, where to deliver, and which items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    OrderID: kernel.NewUUID(), CustomerID: customerID, RestaurantID: restaurantID,
//	    ReceiverName: "Nguyen Van A", ReceiverPhone: "0900000001",
//	    Street: "12 Ly Thuong Kiet", Ward: "Ward 7", City: "Ho Chi Minh City",
//	    Items: []OrderItemRequest{{MenuItemID: itemID, Quantity: 2}},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	receiverName  string
	receiverEmail string
	receiverPhone string

	street string
	ward   string
	city   string
	note   string

	items       []OrderItemRequest
	shippingFee *int64

	guard guard.ConstructorGuard
}

// CreateOrderParams carries the raw checkout inputs for NewCreateOrderCommand.
type CreateOrderParams struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID

	ReceiverName  string
	ReceiverEmail string
	ReceiverPhone string

	Street string
	Ward   string
	City   string
	Note   string

	Items []OrderItemRequest

	// ShippingFee overrides the flat default when non-nil.
	ShippingFee *int64
}

// NewCreateOrderCommand validates the checkout request shape: identifiers
// present, receiver name/phone and all address parts non-empty, at least one
// item, every quantity positive. Existence of the referenced customer,
// restaurant and items is the handler's job.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID("orderID", params.OrderID, &cmd.orderID),
		cmd.setID("customerID", params.CustomerID, &cmd.customerID),
		cmd.setID("restaurantID", params.RestaurantID, &cmd.restaurantID),
		cmd.setRequired("receiverName", params.ReceiverName, &cmd.receiverName),
		cmd.setRequired("receiverPhone", params.ReceiverPhone, &cmd.receiverPhone),
		cmd.setRequired("street", params.Street, &cmd.street),
		cmd.setRequired("ward", params.Ward, &cmd.ward),
		cmd.setRequired("city", params.City, &cmd.city),
		cmd.setItems(params.Items),
		cmd.setShippingFee(params.ShippingFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.receiverEmail = params.ReceiverEmail
	cmd.note = params.Note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// RestaurantID returns the restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// ReceiverName returns the delivery contact name.
func (c CreateOrderCommand) ReceiverName() string { return c.receiverName }

// ReceiverEmail returns the delivery contact email, possibly empty.
func (c CreateOrderCommand) ReceiverEmail() string { return c.receiverEmail }

// ReceiverPhone returns the delivery contact phone.
func (c CreateOrderCommand) ReceiverPhone() string { return c.receiverPhone }

// Street returns the delivery street line.
func (c CreateOrderCommand) Street() string { return c.street }

// Ward returns the delivery ward.
func (c CreateOrderCommand) Ward() string { return c.ward }

// City returns the delivery city.
func (c CreateOrderCommand) City() string { return c.city }

// Note returns the free-form customer note, possibly empty.
func (c CreateOrderCommand) Note() string { return c.note }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemRequest { return c.items }

// ShippingFee returns the fee override, or nil for the flat default.
func (c CreateOrderCommand) ShippingFee() *int64 { return c.shippingFee }

func (c *CreateOrderCommand) setID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (c *CreateOrderCommand) setRequired(name, value string, dst *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = make([]OrderItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setShippingFee(fee *int64) error {
	if fee != nil && *fee < 0 {
		return errs.NewValueIsInvalidError("shippingFee")
	}
	c.shippingFee = fee
	return nil
}
