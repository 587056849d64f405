// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fastfood/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composition covering the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within
	// a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within
	// a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions spanning the order and payment
	// aggregates. The ledger's supersede-and-create sequence and callback
	// settlement both mutate the two together.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions spanning the order and delivery
	// aggregates.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TrackingUoW manages transactions for position-history writes.
	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}
)
