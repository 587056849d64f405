package order

import (
	"fmt"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

// Item is one order line: a menu-item reference with a snapshot of the name
// and unit price at checkout time. Snapshotting keeps historical orders
// stable when the menu changes later.
type Item struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  int64
}

// NewItem creates a validated order line. Quantity must be positive and the
// unit price non-negative; both are in VND.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice int64) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("itemName")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	return Item{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID { return i.menuItemID }

// Name returns the menu-item name snapshot.
func (i Item) Name() string { return i.name }

// Quantity returns how many units were ordered.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the per-unit price snapshot in VND.
func (i Item) UnitPrice() int64 { return i.unitPrice }

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() int64 {
	return i.unitPrice * int64(i.quantity)
}
