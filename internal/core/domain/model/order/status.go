package order

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (guarded path):
//
//	Pending ──> Confirmed ──> Preparing ──> Shipping ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal under the guarded path. ForceCancel on
// the aggregate bypasses the table entirely.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is created and waiting for a
	// successful payment inside its payment window.
	Pending

	// Confirmed indicates payment settled successfully.
	Confirmed

	// Preparing indicates the restaurant accepted the order and is cooking.
	Preparing

	// Shipping indicates the order left the restaurant with a delivery unit.
	Shipping

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state. Reached on payment failure,
	// payment-window expiry, or an explicit cancel.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getTransitions returns the allowed edges of the guarded state machine.
// Delivered and Cancelled have no outgoing edges.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Shipping, Cancelled},
		Shipping:  {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a persisted or transport-supplied status string.
// Matching is exact against the canonical upper-case names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the canonical upper-case name of the status, or "Unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing guarded transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the guarded table allows an edge from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs a guarded transition.
//
// Returns the target status on an allowed edge, or an InvalidTransitionError
// leaving the caller's state untouched otherwise. Both statuses must be valid
// lifecycle states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
