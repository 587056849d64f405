package commands

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
)

// CancelExpiredOrdersCommandHandler sweeps Pending orders whose payment
// window elapsed and force-cancels them.
//
// Each order is cancelled in its own transaction and re-checked after the
// fresh read: a late callback may have settled it between the listing and
// the cancel, in which case that order is skipped. A failure on one order is
// logged and never blocks the rest of the sweep.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelExpiredOrdersCommandHandler creates a handler for expiration
// sweeps.
func NewCancelExpiredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_expired_orders"),
	}
}

// Handle runs one sweep. It never fails over an individual order; only the
// initial listing can return an error.
func (h *CancelExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd CancelExpiredOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	expired, err := uow.OrderRepository().GetAllExpiredPending(ctx, now)
	if rbErr := uow.Rollback(ctx); rbErr != nil {
		h.logger.WarnContext(ctx, "rollback after listing failed", "error", rbErr)
	}
	if err != nil {
		return err
	}

	for _, candidate := range expired {
		if err := h.cancelOne(ctx, candidate.ID(), now); err != nil {
			h.logger.ErrorContext(ctx, "failed to cancel expired order",
				"orderID", candidate.ID().String(), "error", err)
		}
	}

	return nil
}

func (h *CancelExpiredOrdersCommandHandler) cancelOne(ctx context.Context, orderID kernel.UUID, now time.Time) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	// Re-check under the fresh read: a late callback wins the race by
	// flipping the status first.
	if o.Status() != order.Pending || !o.PaymentWindowExpired(now) {
		return nil
	}

	o.ForceCancel(now)
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "cancelled expired order", "orderID", orderID.String())
	return nil
}
