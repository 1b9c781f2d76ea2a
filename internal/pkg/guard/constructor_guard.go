// Package guard provides a defensive programming helper that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance detectable, so handlers can reject objects that
// bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a zero-value guard, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; a guard obtained from NewConstructorGuard passes.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    shopName string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(shopName string) (PlaceOrderCommand, error) {
//	    if shopName == "" {
//	        return PlaceOrderCommand{}, errs.NewValueIsRequiredError("shopName")
//	    }
//	    return PlaceOrderCommand{shopName: shopName, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
