package queries

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via one of its constructors",
)

type ordersFilter int

const (
	ordersByCustomer ordersFilter = iota + 1
	ordersByRestaurant
)

// GetOrdersQuery lists orders either for a customer or for a restaurant,
// newest first. Construct through NewGetOrdersByCustomerQuery or
// NewGetOrdersByRestaurantQuery.
type GetOrdersQuery struct {
	filter ordersFilter
	id     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery lists a customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		filter: ordersByCustomer,
		id:     customerID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersByRestaurantQuery lists a restaurant's orders.
func NewGetOrdersByRestaurantQuery(restaurantID kernel.UUID) (GetOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		filter: ordersByRestaurant,
		id:     restaurantID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
