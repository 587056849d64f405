package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByTxnRef retrieves the payment carrying the given gateway
	// correlation id. Returns an ObjectNotFoundError when unknown; callbacks
	// are rejected with NotFound on that basis.
	GetByTxnRef(ctx context.Context, txnRef string) (*payment.Payment, error)

	// GetAllPendingByOrder retrieves the still-live attempts for an order.
	// The ledger fails them before creating a new attempt.
	GetAllPendingByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
