// Package guard holds the constructor guard shared by domain objects, commands
// and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when
// the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embedding it in a
// struct lets Validate tell a constructed value from a zero value:
//
//	var ErrTripIsNotConstructed = errors.New("trip must be created via NewTrip")
//
//	type Trip struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (t *Trip) Validate() error {
//	    return t.guard.Validate(ErrTripIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed. Call it only from
// constructors and restore functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. A zero-value guard returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
