// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories
// obtained from it share the same database transaction, and aggregates they
// touch are tracked for post-commit processing.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation should use its own instance; a unit of work is not
// safe for concurrent use.
package postgres

import (
	"context"

	"fastfood/internal/adapters/out/postgres/deliveryrepo"
	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/adapters/out/postgres/paymentrepo"
	"fastfood/internal/adapters/out/postgres/trackingrepo"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin while a transaction is
// already active is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. After commit the transaction is
// closed; returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Rolling back with no active
// transaction is a no-op, which lets handlers defer it unconditionally and
// commit on the success path.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the active transaction
// if one exists, otherwise to the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PaymentRepository returns a payment repository bound to the active
// transaction if one exists, otherwise to the main connection.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// DeliveryRepository returns a delivery repository bound to the active
// transaction if one exists, otherwise to the main connection.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// TrackingRepository returns a tracking repository bound to the active
// transaction if one exists, otherwise to the main connection.
func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
