package commands

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/ports"
)

// ResolvePaymentCallbackCommandHandler settles a payment from a verified
// gateway callback and propagates the outcome to the order.
//
// Callback delivery is at-least-once, so resolution is idempotent: a payment
// that already left Pending makes the whole call a no-op. The same gate
// resolves the race against the expiration sweeper: whichever side observes
// the Pending state first wins.
type ResolvePaymentCallbackCommandHandler struct {
	uowFactory PaymentUoWFactory
	dispatcher ports.DeliveryDispatcher
	logger     *slog.Logger
}

// NewResolvePaymentCallbackCommandHandler creates a handler for callback
// settlement.
func NewResolvePaymentCallbackCommandHandler(
	uowFactory PaymentUoWFactory,
	dispatcher ports.DeliveryDispatcher,
	logger *slog.Logger,
) ResolvePaymentCallbackCommandHandler {
	return ResolvePaymentCallbackCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "resolve_payment_callback"),
	}
}

// Handle settles the payment and, when the order confirms, dispatches the
// delivery after the settlement transaction committed. Dispatch failures are
// logged and never unwind the settlement: payment truth is final.
func (h *ResolvePaymentCallbackCommandHandler) Handle(ctx context.Context, cmd ResolvePaymentCallbackCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	orderRepo := uow.OrderRepository()

	attempt, err := paymentRepo.GetByTxnRef(ctx, cmd.TxnRef())
	if err != nil {
		return err
	}

	if !attempt.IsPending() {
		h.logger.InfoContext(ctx, "duplicate callback ignored",
			"txnRef", cmd.TxnRef(), "status", attempt.Status().String())
		return nil
	}

	now := time.Now()
	if err = attempt.Resolve(cmd.Success(), cmd.Amount(), cmd.Gateway(), now); err != nil {
		return err
	}
	if err = paymentRepo.Update(ctx, attempt); err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, attempt.OrderID())
	if err != nil {
		return err
	}

	confirmed := false
	if o.Status() == order.Pending {
		target := order.Cancelled
		if attempt.Status() == payment.Success {
			target = order.Confirmed
			confirmed = true
		}
		if err = o.TransitionTo(target, now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if confirmed {
		if err = h.dispatcher.DispatchForOrder(ctx, o.ID()); err != nil {
			h.logger.ErrorContext(ctx, "delivery dispatch failed after settlement",
				"orderID", o.ID().String(), "error", err)
		}
	}

	return nil
}
