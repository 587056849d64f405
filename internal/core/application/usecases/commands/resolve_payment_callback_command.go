package commands

import (
	"errors"
	"strings"

	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrResolvePaymentCallbackCommandIsNotConstructed = errors.New(
	"ResolvePaymentCallbackCommand must be created via NewResolvePaymentCallbackCommand constructor",
)

// ResolvePaymentCallbackCommand carries a signature-verified gateway
// callback. The transport layer verifies the signature before building this
// command; an unverified callback never reaches the ledger.
type ResolvePaymentCallbackCommand struct { //nolint:recvcheck //using for validation
	txnRef  string
	success bool
	amount  int64
	gateway payment.GatewayResult

	guard guard.ConstructorGuard
}

// NewResolvePaymentCallbackCommand validates the correlation id and reported
// amount.
func NewResolvePaymentCallbackCommand(
	txnRef string,
	success bool,
	amount int64,
	gateway payment.GatewayResult,
) (ResolvePaymentCallbackCommand, error) {
	cmd := ResolvePaymentCallbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(txnRef) == "" {
		return ResolvePaymentCallbackCommand{}, errs.NewValueIsRequiredError("txnRef")
	}
	if amount < 0 {
		return ResolvePaymentCallbackCommand{}, errs.NewValueIsInvalidError("amount")
	}

	cmd.txnRef = txnRef
	cmd.success = success
	cmd.amount = amount
	cmd.gateway = gateway

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolvePaymentCallbackCommand) Validate() error {
	return c.guard.Validate(ErrResolvePaymentCallbackCommandIsNotConstructed)
}

// TxnRef returns the gateway correlation id.
func (c ResolvePaymentCallbackCommand) TxnRef() string { return c.txnRef }

// Success reports whether the gateway's response code signals success.
func (c ResolvePaymentCallbackCommand) Success() bool { return c.success }

// Amount returns the amount the gateway reports as charged, in VND.
func (c ResolvePaymentCallbackCommand) Amount() int64 { return c.amount }

// Gateway returns the provider fields to record on the payment.
func (c ResolvePaymentCallbackCommand) Gateway() payment.GatewayResult { return c.gateway }
