// Package errs provides the standardized error types used across the
// application. Every error follows the same pattern: a sentinel error
// variable for classification, a struct carrying the details, constructors
// with and without a cause, an Error() formatter, and an Unwrap() that
// returns the sentinel so errors.Is works uniformly.
//
// Categories:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     synchronous input validation failures, no state was touched
//   - ObjectNotFoundError: a referenced order/payment/restaurant/item/user/
//     drone does not exist
//   - InvalidStateError: the operation is not permitted for the entity's
//     current status
//   - InvalidTransitionError: a disallowed edge in a status state machine
//   - PaymentWindowExpiredError: the order's payment deadline has passed
//   - SignatureMismatchError: an inbound gateway callback failed verification
package errs
