package ledger

import "errors"

var (
	// ErrValidation occurs when an operation receives a value outside its
	// domain, such as a negative amount or a non-positive exchange course.
	ErrValidation = errors.New("validation failed")

	// ErrConflict occurs when registering a currency name that already exists.
	ErrConflict = errors.New("already exists")

	// ErrNotFound occurs when no wallet exists or an operation references an
	// unknown currency.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds occurs when a conversion is requested against an
	// absent or too-small balance entry.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
