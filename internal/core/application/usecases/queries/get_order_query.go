// Package queries contains the read side of the CQRS split: handlers that
// bypass the domain aggregates and read response shapes straight from the
// database (or the location cache).
package queries

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one order line in a read response.
type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Subtotal   int64  `json:"subtotal"`
}

// OrderResponse is the full read shape of an order.
type OrderResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`

	ReceiverName  string `json:"receiverName"`
	ReceiverEmail string `json:"receiverEmail,omitempty"`
	ReceiverPhone string `json:"receiverPhone"`

	Street string `json:"street"`
	Ward   string `json:"ward"`
	City   string `json:"city"`
	Note   string `json:"note,omitempty"`

	Items []OrderItemResponse `json:"items"`

	TotalPrice  int64 `json:"totalPrice"`
	ShippingFee int64 `json:"shippingFee"`
	FinalAmount int64 `json:"finalAmount"`

	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	PaymentExpiresAt time.Time `json:"paymentExpiresAt"`
}
