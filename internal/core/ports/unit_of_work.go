package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control; repositories obtained from it are bound
// to the active transaction once Begin has been called.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Rolling back without an active transaction is a no-op, which lets
	// handlers defer it unconditionally.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction.
	DeliveryRepository() DeliveryRepository

	// TrackingRepository returns a TrackingRepository bound to the current
	// transaction.
	TrackingRepository() TrackingRepository
}
