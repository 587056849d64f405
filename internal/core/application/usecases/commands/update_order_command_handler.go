package commands

import (
	"context"
	"time"
)

// UpdateOrderCommandHandler applies info patches to orders that have not yet
// entered the physical delivery flow.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order info updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the patch through the aggregate's state
// guard and persists the result. Rejected with an InvalidStateError once the
// order is Shipping, Delivered or Cancelled.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateInfo(cmd.Patch(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
