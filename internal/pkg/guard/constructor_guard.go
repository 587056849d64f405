package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks value objects and commands as having been created
// through their designated constructor. A zero-value struct carries a
// zero-value guard and fails validation, which keeps invariants from being
// bypassed by direct struct literals.
//
// Embed the guard as a private field, set it with NewConstructorGuard in the
// constructor, and delegate to Validate from the object's own Validate method:
//
//	type Receiver struct {
//	    name  string
//	    phone string
//	    guard guard.ConstructorGuard
//	}
//
//	func (r Receiver) Validate() error {
//	    return r.guard.Validate(ErrReceiverIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
