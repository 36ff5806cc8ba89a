// Package guard provides ConstructorGuard, a marker embedded in value objects
// so that zero values can be told apart from instances built by a constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that value objects are only created through their
// designated constructor functions.
//
// Embed a ConstructorGuard in a struct and set it with NewConstructorGuard in the
// constructor. A zero-value struct then fails Validate.
//
// Example usage:
//
//	var ErrCentimetersIsNotConstructed = errors.New("Centimeters must be created via NewCentimeters")
//
//	type Centimeters struct {
//	    value uint
//	    guard guard.ConstructorGuard
//	}
//
//	func (c Centimeters) Validate() error {
//	    return c.guard.Validate(ErrCentimetersIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError if the guarded object was not built by its
// constructor, or ErrDefaultConstructorGuard when validationError is nil.
// It returns nil for properly constructed objects.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
