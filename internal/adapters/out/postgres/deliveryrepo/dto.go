// Package deliveryrepo persists delivery aggregates onto the deliveries
// table. Route endpoints are stored as flat latitude/longitude columns.
package deliveryrepo

import (
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO maps the delivery aggregate onto the deliveries table.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;index"`
	DroneID *uuid.UUID `gorm:"type:uuid;index"`

	StartLatitude  float64
	StartLongitude float64
	EndLatitude    float64
	EndLongitude   float64

	Status      string `gorm:"index"`
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var droneID *uuid.UUID
	if id := aggregate.DroneID(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		DroneID:        droneID,
		StartLatitude:  aggregate.Start().Latitude(),
		StartLongitude: aggregate.Start().Longitude(),
		EndLatitude:    aggregate.End().Latitude(),
		EndLongitude:   aggregate.End().Longitude(),
		Status:         aggregate.Status().String(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain rehydrates a delivery aggregate from its row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}
		droneID = &dID
	}

	start, err := kernel.NewGeoPoint(dto.StartLatitude, dto.StartLongitude)
	if err != nil {
		return nil, err
	}
	end, err := kernel.NewGeoPoint(dto.EndLatitude, dto.EndLongitude)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.RestoreDeliveryParams{
		ID:          id,
		OrderID:     orderID,
		DroneID:     droneID,
		Start:       start,
		End:         end,
		Status:      status,
		DeliveredAt: dto.DeliveredAt,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
