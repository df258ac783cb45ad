package platform

import "errors"

var (
	// ErrNotFound is returned when requested entity doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when entity is not in a state allowing requested operation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned when provided input is missing required values or is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicate is returned when storage rejects write because of unique constraint.
	ErrDuplicate = errors.New("duplicate")
)
