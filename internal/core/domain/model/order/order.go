package order

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

const (
	// DefaultShippingFee is the flat fee in VND applied when the caller does
	// not supply one.
	DefaultShippingFee int64 = 30000

	// PaymentWindow is how long an order stays payable. The window starts at
	// creation and is re-armed by every payment attempt made before expiry.
	PaymentWindow = 15 * time.Minute
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - finalAmount = totalPrice + shippingFee, recomputed on every mutation
//   - at least one line item, every line validated by NewItem
//   - status only changes along the guarded transition table, except through
//     ForceCancel which compensating flows use deliberately
//
// All fields are private; mutate through the exported methods only.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	receiver Receiver
	address  Address
	note     string

	items       []Item
	totalPrice  int64
	shippingFee int64
	finalAmount int64

	status Status

	createdAt        time.Time
	updatedAt        time.Time
	paymentExpiresAt time.Time

	isConstructed bool
}

// NewOrder creates a Pending order at checkout time.
//
// The caller resolves the shipping fee beforehand (DefaultShippingFee when
// absent); it must be non-negative. Totals are computed from the item
// snapshots, and the payment window opens at now.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID: kernel.NewUUID(), CustomerID: customerID, RestaurantID: restaurantID,
//	    Receiver: receiver, Address: address,
//	    Items: items, ShippingFee: order.DefaultShippingFee,
//	}, time.Now())
func NewOrder(params NewOrderParams, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setCustomerID(params.CustomerID),
		o.setRestaurantID(params.RestaurantID),
		o.setReceiver(params.Receiver),
		o.setAddress(params.Address),
		o.setItems(params.Items),
		o.setShippingFee(params.ShippingFee),
	); err != nil {
		return nil, err
	}

	o.note = params.Note
	o.recomputeTotals()
	o.createdAt = now
	o.updatedAt = now
	o.paymentExpiresAt = now.Add(PaymentWindow)

	return o, nil
}

// NewOrderParams carries the validated inputs for NewOrder.
type NewOrderParams struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Receiver     Receiver
	Address      Address
	Note         string
	Items        []Item
	ShippingFee  int64
}

// RestoreOrder rehydrates an order from persistence without re-running the
// checkout validation. The stored status must still be a valid lifecycle
// state; totals are recomputed from the item snapshots to re-establish the
// finalAmount invariant.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:               params.ID,
		customerID:       params.CustomerID,
		restaurantID:     params.RestaurantID,
		receiver:         params.Receiver,
		address:          params.Address,
		note:             params.Note,
		items:            params.Items,
		shippingFee:      params.ShippingFee,
		status:           params.Status,
		createdAt:        params.CreatedAt,
		updatedAt:        params.UpdatedAt,
		paymentExpiresAt: params.PaymentExpiresAt,
		isConstructed:    true,
	}
	o.recomputeTotals()

	return o, nil
}

// RestoreOrderParams carries a persisted order snapshot for RestoreOrder.
type RestoreOrderParams struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	RestaurantID     kernel.UUID
	Receiver         Receiver
	Address          Address
	Note             string
	Items            []Item
	ShippingFee      int64
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaymentExpiresAt time.Time
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// Receiver returns the delivery contact.
func (o *Order) Receiver() Receiver { return o.receiver }

// Address returns the delivery address.
func (o *Order) Address() Address { return o.address }

// Note returns the free-form customer note.
func (o *Order) Note() string { return o.note }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the sum of line subtotals in VND.
func (o *Order) TotalPrice() int64 { return o.totalPrice }

// ShippingFee returns the shipping fee in VND.
func (o *Order) ShippingFee() int64 { return o.shippingFee }

// FinalAmount returns totalPrice + shippingFee, the amount charged to the
// payment gateway.
func (o *Order) FinalAmount() int64 { return o.finalAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// PaymentExpiresAt returns the current payment deadline.
func (o *Order) PaymentExpiresAt() time.Time { return o.paymentExpiresAt }

// PaymentWindowExpired reports whether the payment deadline has passed
// relative to now.
func (o *Order) PaymentWindowExpired(now time.Time) bool {
	return now.After(o.paymentExpiresAt)
}

// ExtendPaymentWindow re-arms the payment deadline to now + PaymentWindow.
// Called on every payment attempt made before the previous deadline.
func (o *Order) ExtendPaymentWindow(now time.Time) {
	o.paymentExpiresAt = now.Add(PaymentWindow)
	o.updatedAt = now
}

// UpdateInfoPatch carries the optional fields UpdateInfo may change.
// Nil pointers leave the current value untouched.
type UpdateInfoPatch struct {
	Receiver    *Receiver
	Address     *Address
	Note        *string
	ShippingFee *int64
}

// UpdateInfo applies a partial update of receiver, address, note or shipping
// fee, recomputing finalAmount when the fee changes.
//
// Rejected with an InvalidStateError once the order reached Shipping,
// Delivered or Cancelled: the physical flow has taken over or the order is
// dead.
func (o *Order) UpdateInfo(patch UpdateInfoPatch, now time.Time) error {
	if o.status == Shipping || o.status == Delivered || o.status == Cancelled {
		return errs.NewInvalidStateError("order", o.status.String(), "update")
	}

	if patch.Receiver != nil {
		if err := o.setReceiver(*patch.Receiver); err != nil {
			return err
		}
	}
	if patch.Address != nil {
		if err := o.setAddress(*patch.Address); err != nil {
			return err
		}
	}
	if patch.Note != nil {
		o.note = *patch.Note
	}
	if patch.ShippingFee != nil {
		if err := o.setShippingFee(*patch.ShippingFee); err != nil {
			return err
		}
	}

	o.recomputeTotals()
	o.updatedAt = now
	return nil
}

// TransitionTo moves the order along the guarded transition table.
// A disallowed edge fails with an InvalidTransitionError and leaves the
// status unchanged.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Confirm marks the order paid. Shorthand for TransitionTo(Confirmed, now).
func (o *Order) Confirm(now time.Time) error {
	return o.TransitionTo(Confirmed, now)
}

// Cancel moves the order to Cancelled along the guarded path; it fails from
// Shipping and the terminal states.
func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(Cancelled, now)
}

// ForceCancel unconditionally sets the status to Cancelled, bypassing the
// transition table. Reserved for compensating flows: the expiration sweeper
// and the explicit cancel endpoint.
func (o *Order) ForceCancel(now time.Time) {
	o.status = Cancelled
	o.updatedAt = now
}

func (o *Order) recomputeTotals() {
	var total int64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	o.totalPrice = total
	o.finalAmount = total + o.shippingFee
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setReceiver(receiver Receiver) error {
	if receiver.Name() == "" || receiver.Phone() == "" {
		return errs.NewValueIsRequiredError("receiver")
	}
	o.receiver = receiver
	return nil
}

func (o *Order) setAddress(address Address) error {
	if address.Street() == "" || address.Ward() == "" || address.City() == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("shippingFee")
	}
	o.shippingFee = fee
	return nil
}
