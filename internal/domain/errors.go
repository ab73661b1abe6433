package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrInvalidInput is returned when the caller supplied malformed or missing fields.
	// No store call is made.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation is returned when the store rejects a write because of a
	// unique, foreign key, not-null or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)
