package queries

import (
	"context"
	"errors"
	"time"

	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRow mirrors the orders table columns the read side needs.
type orderRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	RestaurantID     uuid.UUID
	ReceiverName     string
	ReceiverEmail    string
	ReceiverPhone    string
	Street           string
	Ward             string
	City             string
	Note             string
	TotalPrice       int64
	ShippingFee      int64
	FinalAmount      int64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaymentExpiresAt time.Time
}

// orderItemRow mirrors the order_items table columns.
type orderItemRow struct {
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Name       string
	Quantity   int
	UnitPrice  int64
	Subtotal   int64
}

func (r orderRow) toResponse(items []OrderItemResponse) OrderResponse {
	return OrderResponse{
		ID:               r.ID.String(),
		CustomerID:       r.CustomerID.String(),
		RestaurantID:     r.RestaurantID.String(),
		ReceiverName:     r.ReceiverName,
		ReceiverEmail:    r.ReceiverEmail,
		ReceiverPhone:    r.ReceiverPhone,
		Street:           r.Street,
		Ward:             r.Ward,
		City:             r.City,
		Note:             r.Note,
		Items:            items,
		TotalPrice:       r.TotalPrice,
		ShippingFee:      r.ShippingFee,
		FinalAmount:      r.FinalAmount,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		PaymentExpiresAt: r.PaymentExpiresAt,
	}
}

func (r orderItemRow) toResponse() OrderItemResponse {
	return OrderItemResponse{
		MenuItemID: r.MenuItemID.String(),
		Name:       r.Name,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice,
		Subtotal:   r.Subtotal,
	}
}

// GetOrderQueryHandler reads a single order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	var itemRows []orderItemRow
	err = h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id = ?", query.OrderID().Bytes()).
		Find(&itemRows).Error
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, item.toResponse())
	}

	return row.toResponse(items), nil
}
