package payment

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment attempt.
//
// Pending is the only non-terminal state. A payment leaves it exactly once:
// to Success or Failed via callback resolution, or to Failed when a newer
// attempt supersedes it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the redirect URL was (or is being)
	// handed to the customer and no callback has resolved the attempt yet.
	Pending

	// Success indicates the gateway confirmed the charge and the reported
	// amount matched the recorded one.
	Success

	// Failed indicates the gateway declined, the amount did not reconcile,
	// or a newer attempt superseded this one.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "PENDING",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "PENDING",
		Success: "SUCCESS",
		Failed:  "FAILED",
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
		"status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the Status is a defined lifecycle state.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid payment status", s))
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

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s == Success || s == Failed
}
