package commands

import (
	"context"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

// CreatePaymentCommandHandler starts a new payment attempt for an order.
//
// The whole sequence runs inside one transaction so that two concurrent
// retries can never both end up live: supersede every prior Pending attempt,
// re-arm the order's payment window, persist the new Pending attempt, obtain
// the signed redirect URL from the gateway and attach it.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewCreatePaymentCommandHandler creates a handler for payment attempts.
func NewCreatePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment attempt and returns the persisted payment,
// redirect URL attached.
//
// Fails with an InvalidStateError unless the order is Pending, and with a
// PaymentWindowExpiredError once the order's deadline passed; an expired
// order must be cancelled and recreated.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
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

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if o.Status() != order.Pending {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "create payment")
	}
	if o.PaymentWindowExpired(now) {
		return nil, errs.NewPaymentWindowExpiredError(o.ID().String(), o.PaymentExpiresAt())
	}

	pending, err := paymentRepo.GetAllPendingByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	for _, prior := range pending {
		if err = prior.Supersede(now); err != nil {
			return nil, err
		}
		if err = paymentRepo.Update(ctx, prior); err != nil {
			return nil, err
		}
	}

	o.ExtendPaymentWindow(now)
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	txnRef := payment.NewTxnRef(o.ID(), now)
	attempt, err := payment.NewPayment(
		kernel.NewUUID(), o.ID(), o.FinalAmount(), cmd.Method(), txnRef, now)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, attempt); err != nil {
		return nil, err
	}

	url, err := h.gateway.BuildAuthorizationURL(ports.AuthorizationRequest{
		TxnRef:    txnRef,
		Amount:    attempt.Amount(),
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", o.ID()),
		ClientIP:  cmd.ClientIP(),
	})
	if err != nil {
		return nil, err
	}

	if err = attempt.AttachAuthorizationURL(url, now); err != nil {
		return nil, err
	}
	if err = paymentRepo.Update(ctx, attempt); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return attempt, nil
}
