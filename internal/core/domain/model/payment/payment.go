package payment

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// GatewayResult carries the provider fields reported by a resolved callback.
type GatewayResult struct {
	TransactionNo string
	BankCode      string
	ResponseCode  string
	PayDate       string
}

// Payment is one authorization attempt for an order.
//
// Invariants:
//   - amount is positive and fixed at creation
//   - txnRef is unique across all payments and never changes
//   - a terminal payment (Success or Failed) never mutates again
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID

	amount int64
	method string
	txnRef string

	status Status

	authorizationURL string
	gateway          GatewayResult

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTxnRef builds the globally unique correlation id for an attempt:
// "<orderID>-<unix millis>-<6 random digits>". The random suffix keeps two
// attempts created within the same millisecond distinct.
func NewTxnRef(orderID kernel.UUID, now time.Time) string {
	return fmt.Sprintf("%s-%d-%06d", orderID.String(), now.UnixMilli(), rand.IntN(1000000))
}

// NewPayment creates a Pending attempt for the given order and amount.
// The amount is the order's finalAmount at attempt time, in VND.
func NewPayment(id, orderID kernel.UUID, amount int64, method, txnRef string, now time.Time) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setTxnRef(txnRef),
	); err != nil {
		return nil, err
	}

	p.createdAt = now
	p.updatedAt = now

	return p, nil
}

// RestorePayment rehydrates a payment from persistence.
func RestorePayment(params RestorePaymentParams) (*Payment, error) {
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:               params.ID,
		orderID:          params.OrderID,
		amount:           params.Amount,
		method:           params.Method,
		txnRef:           params.TxnRef,
		status:           params.Status,
		authorizationURL: params.AuthorizationURL,
		gateway:          params.Gateway,
		createdAt:        params.CreatedAt,
		updatedAt:        params.UpdatedAt,
		isConstructed:    true,
	}, nil
}

// RestorePaymentParams carries a persisted payment snapshot.
type RestorePaymentParams struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Amount           int64
	Method           string
	TxnRef           string
	Status           Status
	AuthorizationURL string
	Gateway          GatewayResult
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by identifier.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order being paid.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the charged amount in VND.
func (p *Payment) Amount() int64 { return p.amount }

// Method returns the payment method label, e.g. "VNPAY".
func (p *Payment) Method() string { return p.method }

// TxnRef returns the gateway correlation id.
func (p *Payment) TxnRef() string { return p.txnRef }

// Status returns the current lifecycle status.
func (p *Payment) Status() Status { return p.status }

// IsPending reports whether the attempt is still live.
func (p *Payment) IsPending() bool { return p.status == Pending }

// AuthorizationURL returns the signed redirect URL, empty until attached.
func (p *Payment) AuthorizationURL() string { return p.authorizationURL }

// Gateway returns the provider fields from the resolving callback. Zero
// until the payment is resolved.
func (p *Payment) Gateway() GatewayResult { return p.gateway }

// CreatedAt returns when the attempt was created.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// AttachAuthorizationURL stores the signed redirect URL produced by the
// gateway adapter. Only a Pending payment can receive one.
func (p *Payment) AttachAuthorizationURL(url string, now time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateError("payment", p.status.String(), "attach authorization URL")
	}
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("authorizationURL")
	}
	p.authorizationURL = url
	p.updatedAt = now
	return nil
}

// Resolve settles a Pending payment from a verified callback, recording the
// provider fields alongside the terminal status.
//
// Success is honored only when the reported amount equals the recorded one
// exactly; any mismatch forces Failed regardless of the gateway's response
// code. Resolving a non-Pending payment fails with an InvalidStateError; the
// caller implements callback idempotency by checking IsPending first and
// treating an already-terminal payment as a no-op.
func (p *Payment) Resolve(success bool, reportedAmount int64, result GatewayResult, now time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateError("payment", p.status.String(), "resolve")
	}

	if success && reportedAmount == p.amount {
		p.status = Success
	} else {
		p.status = Failed
	}
	p.gateway = result
	p.updatedAt = now
	return nil
}

// Supersede force-fails a still-Pending attempt because a newer attempt for
// the same order is being created. No-op semantics are the caller's job; a
// terminal payment cannot be superseded.
func (p *Payment) Supersede(now time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateError("payment", p.status.String(), "supersede")
	}
	p.status = Failed
	p.updatedAt = now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("method")
	}
	p.method = method
	return nil
}

func (p *Payment) setTxnRef(txnRef string) error {
	if strings.TrimSpace(txnRef) == "" {
		return errs.NewValueIsRequiredError("txnRef")
	}
	p.txnRef = txnRef
	return nil
}
