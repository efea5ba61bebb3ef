package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownMentor is returned when a mentor ID is not in the catalog.
	ErrUnknownMentor = errors.New("unknown mentor")

	// ErrUnknownPortal is returned when a time portal ID is not in the catalog.
	ErrUnknownPortal = errors.New("unknown time portal")

	// ErrAnswerOutOfRange is returned when a chaos answer index is not 0..3.
	ErrAnswerOutOfRange = errors.New("answer index out of range")
)
