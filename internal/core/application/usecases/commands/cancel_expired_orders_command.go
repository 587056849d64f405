package commands

import (
	"errors"

	"fastfood/internal/pkg/guard"
)

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand triggers one sweep over Pending orders whose
// payment window elapsed. It carries no parameters; the sweep time is taken
// when the handler runs.
type CancelExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelExpiredOrdersCommand creates the sweep command.
func NewCancelExpiredOrdersCommand() (CancelExpiredOrdersCommand, error) {
	return CancelExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}
