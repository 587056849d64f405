package delivery

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate for one trip from restaurant to customer.
// Start and end coordinates are resolved by the dispatcher before
// construction; deliveredAt stays nil until the trip completes.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	droneID *kernel.UUID

	start kernel.GeoPoint
	end   kernel.GeoPoint

	status      Status
	deliveredAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDelivery creates a Pending trip for a confirmed order. The dispatcher
// guarantees the order-status precondition; this constructor only validates
// identifiers and coordinates.
func NewDelivery(id, orderID kernel.UUID, start, end kernel.GeoPoint, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setRoute(start, end),
	); err != nil {
		return nil, err
	}

	d.createdAt = now
	d.updatedAt = now

	return d, nil
}

// RestoreDelivery rehydrates a delivery from persistence.
func RestoreDelivery(params RestoreDeliveryParams) (*Delivery, error) {
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            params.ID,
		orderID:       params.OrderID,
		droneID:       params.DroneID,
		start:         params.Start,
		end:           params.End,
		status:        params.Status,
		deliveredAt:   params.DeliveredAt,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryParams carries a persisted delivery snapshot.
type RestoreDeliveryParams struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	DroneID     *kernel.UUID
	Start       kernel.GeoPoint
	End         kernel.GeoPoint
	Status      Status
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// DroneID returns the assigned drone, or nil if unassigned.
func (d *Delivery) DroneID() *kernel.UUID { return d.droneID }

// Start returns the restaurant coordinate.
func (d *Delivery) Start() kernel.GeoPoint { return d.start }

// End returns the customer coordinate.
func (d *Delivery) End() kernel.GeoPoint { return d.end }

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status { return d.status }

// DeliveredAt returns the completion time, nil until Delivered.
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }

// CreatedAt returns when the trip was dispatched.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// AssignDrone attaches a drone to the trip. Reassignment is allowed while
// the trip is not terminal.
func (d *Delivery) AssignDrone(droneID kernel.UUID, now time.Time) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	if d.status == Delivered || d.status == Cancelled {
		return errs.NewInvalidStateError("delivery", d.status.String(), "assign drone")
	}
	d.droneID = &droneID
	d.updatedAt = now
	return nil
}

// Start transitions Pending -> Delivering.
func (d *Delivery) StartTrip(now time.Time) error {
	return d.transitionTo(Delivering, now)
}

// Complete transitions Delivering -> Delivered and stamps deliveredAt.
func (d *Delivery) Complete(now time.Time) error {
	if err := d.transitionTo(Delivered, now); err != nil {
		return err
	}
	d.deliveredAt = &now
	return nil
}

// Cancel moves the trip to Cancelled from any non-terminal state.
func (d *Delivery) Cancel(now time.Time) error {
	return d.transitionTo(Cancelled, now)
}

func (d *Delivery) transitionTo(target Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = newStatus
	d.updatedAt = now
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setRoute(start, end kernel.GeoPoint) error {
	if err := start.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("start", err)
	}
	if err := end.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("end", err)
	}
	d.start = start
	d.end = end
	return nil
}
