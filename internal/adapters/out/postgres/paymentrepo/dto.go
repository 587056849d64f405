// Package paymentrepo persists payment aggregates onto the payments table.
// The txn_ref column carries a unique index: it is the correlation id the
// gateway echoes back in callbacks.
package paymentrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO maps the payment aggregate onto the payments table.
type PaymentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	Amount int64
	Method string
	TxnRef string `gorm:"uniqueIndex"`

	Status string `gorm:"index"`

	AuthorizationURL string
	TransactionNo    string
	BankCode         string
	ResponseCode     string
	PayDate          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	gateway := aggregate.Gateway()

	return PaymentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Amount:           aggregate.Amount(),
		Method:           aggregate.Method(),
		TxnRef:           aggregate.TxnRef(),
		Status:           aggregate.Status().String(),
		AuthorizationURL: aggregate.AuthorizationURL(),
		TransactionNo:    gateway.TransactionNo,
		BankCode:         gateway.BankCode,
		ResponseCode:     gateway.ResponseCode,
		PayDate:          gateway.PayDate,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain rehydrates a payment aggregate from its row.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(payment.RestorePaymentParams{
		ID:               id,
		OrderID:          orderID,
		Amount:           dto.Amount,
		Method:           dto.Method,
		TxnRef:           dto.TxnRef,
		Status:           status,
		AuthorizationURL: dto.AuthorizationURL,
		Gateway: payment.GatewayResult{
			TransactionNo: dto.TransactionNo,
			BankCode:      dto.BankCode,
			ResponseCode:  dto.ResponseCode,
			PayDate:       dto.PayDate,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
