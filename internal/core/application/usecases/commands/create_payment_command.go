package commands

import (
	"errors"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to start a new payment attempt
// for a pending order. ClientIP is forwarded to the gateway, which embeds it
// in the signed authorization request.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	method   string
	clientIP string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand validates the order id, method and client IP.
func NewCreatePaymentCommand(orderID kernel.UUID, method, clientIP string) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CreatePaymentCommand{}, err
	}
	if strings.TrimSpace(method) == "" {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredError("method")
	}
	if strings.TrimSpace(clientIP) == "" {
		return CreatePaymentCommand{}, errs.NewValueIsRequiredError("clientIP")
	}

	cmd.orderID = orderID
	cmd.method = method
	cmd.clientIP = clientIP

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c CreatePaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Method returns the payment method label.
func (c CreatePaymentCommand) Method() string { return c.method }

// ClientIP returns the paying customer's IP address.
func (c CreatePaymentCommand) ClientIP() string { return c.clientIP }
