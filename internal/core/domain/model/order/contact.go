package order

import (
	"fmt"
	"strings"

	"fastfood/internal/pkg/errs"
)

// Receiver is the contact the delivery unit hands the order to. Name and
// phone are mandatory, email is optional.
type Receiver struct {
	name  string
	email string
	phone string
}

// NewReceiver validates and creates a Receiver contact.
func NewReceiver(name, email, phone string) (Receiver, error) {
	if strings.TrimSpace(name) == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiverName")
	}
	if strings.TrimSpace(phone) == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiverPhone")
	}
	return Receiver{name: name, email: email, phone: phone}, nil
}

// Name returns the receiver's display name.
func (r Receiver) Name() string { return r.name }

// Email returns the receiver's email, possibly empty.
func (r Receiver) Email() string { return r.email }

// Phone returns the receiver's phone number.
func (r Receiver) Phone() string { return r.phone }

// Address is the delivery destination. All three components are mandatory
// because geocoding composes them into a single query string.
type Address struct {
	street string
	ward   string
	city   string
}

// NewAddress validates and creates a delivery Address.
func NewAddress(street, ward, city string) (Address, error) {
	if strings.TrimSpace(street) == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if strings.TrimSpace(ward) == "" {
		return Address{}, errs.NewValueIsRequiredError("ward")
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	return Address{street: street, ward: ward, city: city}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// Ward returns the ward.
func (a Address) Ward() string { return a.ward }

// City returns the city.
func (a Address) City() string { return a.city }

// Composed joins the address parts into the "street, ward, city" form used
// as a geocoding query.
func (a Address) Composed() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.ward, a.city)
}
