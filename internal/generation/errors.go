package generation

import "errors"

// Common errors returned by Model implementations
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the model response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for network or service errors that might resolve on a later call
	ErrTransientFailure = errors.New("transient error during content generation")

	// ErrInvalidConfig is returned when the model configuration is invalid
	ErrInvalidConfig = errors.New("invalid model configuration")
)
