package services

import "errors"

var (
	// ErrValidation rejects a write before it reaches the store, e.g. a
	// non-positive amount on a transaction or contribution.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports that a referenced record does not exist or is not
	// visible to the acting user.
	ErrNotFound = errors.New("not found")
)
