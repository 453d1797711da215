package repository

import "errors"

var (
	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the unique email constraint is hit.
	ErrDuplicateEmail = errors.New("duplicate email")
)
