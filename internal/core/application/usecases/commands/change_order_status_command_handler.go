package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler moves an order along the guarded
// transition table. Disallowed edges fail with an InvalidTransitionError and
// leave the stored status untouched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for guarded status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, attempts the transition and persists the result.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.TransitionTo(cmd.Target(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
