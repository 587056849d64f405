package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

// CreateDeliveryCommandHandler dispatches the physical trip for a confirmed
// order: it resolves the restaurant and customer coordinates and creates a
// Pending delivery between them.
//
// The restaurant coordinate is geocoded at most once: a stored non-zero
// coordinate is reused, otherwise the restaurant's address is geocoded and
// the result persisted back onto the catalog. The customer coordinate is
// geocoded from the order's composed address on every dispatch.
//
// Nothing here guards against repeated dispatches for the same order; a
// second call creates a second trip.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	catalog    ports.Catalog
	geocoder   ports.Geocoder
}

// NewCreateDeliveryCommandHandler creates a handler for delivery dispatch.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	catalog ports.Catalog,
	geocoder ports.Geocoder,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		geocoder:   geocoder,
	}
}

// Handle dispatches the trip and returns the persisted delivery. Fails with
// an InvalidStateError unless the order is Confirmed; geocoding failures
// propagate to the caller, which decides whether to log or surface them.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Status() != order.Confirmed {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "create delivery")
	}

	start, err := h.resolveRestaurantCoordinate(ctx, o.RestaurantID())
	if err != nil {
		return nil, err
	}

	end, err := h.geocoder.Geocode(ctx, o.Address().Composed())
	if err != nil {
		return nil, err
	}

	trip, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), start, end, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, trip); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return trip, nil
}

func (h *CreateDeliveryCommandHandler) resolveRestaurantCoordinate(
	ctx context.Context,
	restaurantID kernel.UUID,
) (kernel.GeoPoint, error) {
	restaurant, err := h.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	if restaurant.Coordinate.Validate() == nil && !restaurant.Coordinate.IsZero() {
		return restaurant.Coordinate, nil
	}

	point, err := h.geocoder.Geocode(ctx, restaurant.Address)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	if err = h.catalog.SetRestaurantCoordinate(ctx, restaurantID, point); err != nil {
		return kernel.GeoPoint{}, err
	}

	return point, nil
}
