package paymentrepo

import (
	"context"
	"errors"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTxnRef retrieves the payment carrying the given correlation id.
func (r *GormPaymentRepository) GetByTxnRef(ctx context.Context, txnRef string) (*payment.Payment, error) {
	if strings.TrimSpace(txnRef) == "" {
		return nil, errs.NewValueIsRequiredError("txnRef")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "txn_ref = ?", txnRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", txnRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByOrder retrieves the still-live attempts for an order.
func (r *GormPaymentRepository) GetAllPendingByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND status = ?", orderID.Bytes(), payment.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		payments = append(payments, p)
	}

	return payments, nil
}
