package service

import "errors"

// Error taxonomy for the checkout flow. Each value maps to exactly one
// status+message pair at the request boundary.
var (
	// ErrValidation covers missing required fields.
	ErrValidation = errors.New("missing required fields")
	// ErrConflict covers a duplicate username or email on signup.
	ErrConflict = errors.New("username or email already in use")
	// ErrBadLogin covers a failed credential check.
	ErrBadLogin = errors.New("bad credentials")
	// ErrNotLoggedIn covers operations that require an active login.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrEmptyCart covers a purchase with no cart entries.
	ErrEmptyCart = errors.New("empty cart")
	// ErrOutOfStock covers a cart that cannot be satisfied.
	ErrOutOfStock = errors.New("insufficient stock")
	// ErrNotFound covers a catalog lookup with no matching dessert.
	ErrNotFound = errors.New("dessert not found")
	// ErrStore covers any underlying read/write fault.
	ErrStore = errors.New("store failure")
)
