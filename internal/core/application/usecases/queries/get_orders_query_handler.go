package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders for a customer or restaurant, items
// included.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest first. A reference with no orders
// yields an empty slice, not an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column := "customer_id"
	if query.filter == ordersByRestaurant {
		column = "restaurant_id"
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where(column+" = ?", query.id.Bytes()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []OrderResponse{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	var itemRows []orderItemRow
	err = h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id IN ?", orderIDs).
		Find(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse, len(rows))
	for _, item := range itemRows {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item.toResponse())
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		items := itemsByOrder[row.ID]
		if items == nil {
			items = []OrderItemResponse{}
		}
		responses = append(responses, row.toResponse(items))
	}

	return responses, nil
}
