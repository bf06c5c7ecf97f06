package services

import (
	"errors"
)

// ErrEmptyCart is returned by checkout when there is nothing to bill. The
// operator must see it; it is never swallowed.
var ErrEmptyCart = errors.New("cart is empty")

// ErrNotFound is returned by lookups for an unknown menu item id.
var ErrNotFound = errors.New("not found")

// ValidationError rejects bad menu-form input. The operation aborts before
// any state is mutated or persisted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
