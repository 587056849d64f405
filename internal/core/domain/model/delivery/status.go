package delivery

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery trip.
//
//	Pending ──> Delivering ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the trip exists but no drone left yet.
	Pending

	// Delivering indicates a drone is en route with the order.
	Delivering

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "PENDING",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Delivering, Cancelled},
		Delivering: {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the Status is a defined lifecycle state.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the canonical upper-case name. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TransitionTo performs a guarded transition, returning an
// InvalidTransitionError on a disallowed edge.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("delivery", s.String(), target.String())
}
