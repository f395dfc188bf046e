package domain

import "errors"

// Common domain errors used across the application. Entity-specific errors
// wrap one of these so callers can classify them with errors.Is.
var (
	// ErrValidation is returned when a domain entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or empty.
	ErrInvalidID = errors.New("invalid ID")
)
