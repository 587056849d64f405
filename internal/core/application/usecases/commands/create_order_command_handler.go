package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
)

// CreateOrderCommandHandler handles checkout: it verifies the referenced
// customer, restaurant and menu items exist, snapshots current item names
// and prices, and persists a Pending order with a fresh payment window.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.Catalog
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.Catalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the checkout command. Totals are computed from the
// snapshotted prices; the shipping fee falls back to the flat default when
// the command carries no override.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.GetUser(ctx, cmd.CustomerID()); err != nil {
		return err
	}
	if _, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, req := range cmd.Items() {
		menuItem, err := h.catalog.GetMenuItem(ctx, req.MenuItemID)
		if err != nil {
			return err
		}
		item, err := order.NewItem(menuItem.ID, menuItem.Name, req.Quantity, menuItem.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	receiver, err := order.NewReceiver(cmd.ReceiverName(), cmd.ReceiverEmail(), cmd.ReceiverPhone())
	if err != nil {
		return err
	}
	address, err := order.NewAddress(cmd.Street(), cmd.Ward(), cmd.City())
	if err != nil {
		return err
	}

	fee := order.DefaultShippingFee
	if cmd.ShippingFee() != nil {
		fee = *cmd.ShippingFee()
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:           cmd.OrderID(),
		CustomerID:   cmd.CustomerID(),
		RestaurantID: cmd.RestaurantID(),
		Receiver:     receiver,
		Address:      address,
		Note:         cmd.Note(),
		Items:        items,
		ShippingFee:  fee,
	}, time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
