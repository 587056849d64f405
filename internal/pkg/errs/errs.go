package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to one of these, so callers and transport layers can branch on the
// category without depending on concrete types.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrObjectNotFound       = errors.New("object not found")
	ErrInvalidState         = errors.New("operation is not valid for the current state")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrPaymentWindowExpired = errors.New("payment window has expired")
	ErrSignatureMismatch    = errors.New("signature mismatch")
)

// sanitize flattens newlines so error text stays single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError signals that a mandatory value was missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

// ValueIsInvalidError signals that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

// ValueIsOutOfRangeError signals that a numeric value fell outside its bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is out of range: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error { return ErrValueIsOutOfRange }

// ObjectNotFoundError signals that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

// InvalidStateError signals that an operation is not permitted while the
// target entity is in its current status.
type InvalidStateError struct {
	Entity    string
	Status    string
	Operation string
}

func NewInvalidStateError(entity, status, operation string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Status: status, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("operation is not valid for the current state: cannot %s %s in status %s",
		sanitize(e.Operation), sanitize(e.Entity), sanitize(e.Status))
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvalidTransitionError signals a disallowed edge in a status state machine.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition is not allowed: %s cannot go from %s to %s",
		sanitize(e.Entity), sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// PaymentWindowExpiredError signals that an order's payment deadline has
// passed; the caller must cancel and recreate the order.
type PaymentWindowExpiredError struct {
	OrderID   string
	ExpiredAt time.Time
}

func NewPaymentWindowExpiredError(orderID string, expiredAt time.Time) *PaymentWindowExpiredError {
	return &PaymentWindowExpiredError{OrderID: orderID, ExpiredAt: expiredAt}
}

func (e *PaymentWindowExpiredError) Error() string {
	return fmt.Sprintf("payment window has expired: order %s, expired at %s",
		sanitize(e.OrderID), e.ExpiredAt.UTC().Format(time.RFC3339))
}

func (e *PaymentWindowExpiredError) Unwrap() error { return ErrPaymentWindowExpired }

// SignatureMismatchError signals that an inbound gateway callback failed
// signature verification and was rejected before touching any state.
type SignatureMismatchError struct {
	ParamName string
}

func NewSignatureMismatchError(paramName string) *SignatureMismatchError {
	return &SignatureMismatchError{ParamName: paramName}
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature mismatch: %s", sanitize(e.ParamName))
}

func (e *SignatureMismatchError) Unwrap() error { return ErrSignatureMismatch }
