// Package apperr defines the error kinds shared across layers.
package apperr

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates an insert targeted an id that already exists
	// in the collection. The existing record is left untouched.
	ErrDuplicateKey = errors.New("duplicate key")
)
