// Package orderrepo persists order aggregates. The aggregate spans two
// tables: orders holds the root and order_items holds the immutable line
// snapshots.
package orderrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO maps the order aggregate root onto the orders table.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`

	ReceiverName  string
	ReceiverEmail string
	ReceiverPhone string

	Street string
	Ward   string
	City   string
	Note   string

	TotalPrice  int64
	ShippingFee int64
	FinalAmount int64

	Status string `gorm:"index"`

	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaymentExpiresAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps one order line onto the order_items table. Lines are
// written once at order creation and never updated.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Quantity   int
	UnitPrice  int64
	Subtotal   int64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its root row.
func fromDomain(aggregate *order.Order) OrderDTO {
	receiver := aggregate.Receiver()
	address := aggregate.Address()

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		ReceiverName:     receiver.Name(),
		ReceiverEmail:    receiver.Email(),
		ReceiverPhone:    receiver.Phone(),
		Street:           address.Street(),
		Ward:             address.Ward(),
		City:             address.City(),
		Note:             aggregate.Note(),
		TotalPrice:       aggregate.TotalPrice(),
		ShippingFee:      aggregate.ShippingFee(),
		FinalAmount:      aggregate.FinalAmount(),
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		PaymentExpiresAt: aggregate.PaymentExpiresAt(),
	}
}

// itemsFromDomain converts the aggregate's lines to their rows.
func itemsFromDomain(aggregate *order.Order) []OrderItemDTO {
	items := aggregate.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Subtotal:   item.Subtotal(),
		})
	}
	return dtos
}

// toDomain rehydrates an order aggregate from its root and line rows.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	receiver, err := order.NewReceiver(dto.ReceiverName, dto.ReceiverEmail, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}
	address, err := order.NewAddress(dto.Street, dto.Ward, dto.City)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(menuItemID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CustomerID:       customerID,
		RestaurantID:     restaurantID,
		Receiver:         receiver,
		Address:          address,
		Note:             dto.Note,
		Items:            items,
		ShippingFee:      dto.ShippingFee,
		Status:           status,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
		PaymentExpiresAt: dto.PaymentExpiresAt,
	})
}
