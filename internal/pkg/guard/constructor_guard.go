// Package guard provides ConstructorGuard, a marker that distinguishes values
// built by their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects so that
// handlers can reject zero-value instances that skipped validation.
//
// Example:
//
//	var ErrRejectPackageCommandIsNotConstructed = errors.New("...")
//
//	type RejectPackageCommand struct {
//	    packageID kernel.Code
//	    reason    string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c RejectPackageCommand) Validate() error {
//	    return c.guard.Validate(ErrRejectPackageCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
