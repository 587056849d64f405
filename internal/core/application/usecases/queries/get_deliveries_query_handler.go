package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deliveryRow struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	DroneID        *uuid.UUID
	StartLatitude  float64
	StartLongitude float64
	EndLatitude    float64
	EndLongitude   float64
	Status         string
	DeliveredAt    *time.Time
	CreatedAt      time.Time
}

func (r deliveryRow) toResponse() DeliveryResponse {
	var droneID *string
	if r.DroneID != nil {
		s := r.DroneID.String()
		droneID = &s
	}
	return DeliveryResponse{
		ID:             r.ID.String(),
		OrderID:        r.OrderID.String(),
		DroneID:        droneID,
		StartLatitude:  r.StartLatitude,
		StartLongitude: r.StartLongitude,
		EndLatitude:    r.EndLatitude,
		EndLongitude:   r.EndLongitude,
		Status:         r.Status,
		DeliveredAt:    r.DeliveredAt,
		CreatedAt:      r.CreatedAt,
	}
}

// GetDeliveriesQueryHandler lists delivery trips from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listings.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column := "order_id"
	if query.filter == deliveriesByDrone {
		column = "drone_id"
	}

	var rows []deliveryRow
	err := h.db.WithContext(ctx).
		Table("deliveries").
		Where(column+" = ?", query.id.Bytes()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]DeliveryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.toResponse())
	}

	return responses, nil
}
