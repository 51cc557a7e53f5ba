package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrListingNotFound is returned when a CEO agent listing does not exist
	ErrListingNotFound = errors.New("CEO Agent not found")

	// ErrCompanyNotFound is returned when a company does not exist
	ErrCompanyNotFound = errors.New("company not found")

	// ErrPipelineRunNotFound is returned when a pipeline run does not exist
	ErrPipelineRunNotFound = errors.New("pipeline run not found")

	// ErrDuplicateTokenSymbol is returned when a listing is created with a symbol already in use
	ErrDuplicateTokenSymbol = errors.New("Token symbol already exists. Please choose a different symbol.") //nolint:staticcheck

	// ErrInsufficientTokens is returned when a purchase exceeds the available tokens
	ErrInsufficientTokens = errors.New("not enough tokens available")

	// ErrInvalidTransition is returned when a trigger is not allowed in the current pipeline state
	ErrInvalidTransition = errors.New("invalid pipeline transition")

	// ErrInvalidInput is returned for malformed client input
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable is returned when the text-generation provider cannot be reached or errors
	ErrLLMUnavailable = errors.New("llm provider error")

	// ErrMalformedOutput is returned when the model output cannot be decoded into the expected shape
	ErrMalformedOutput = errors.New("malformed model output")
)

// InsufficientTokensError carries the remaining availability of a listing
type InsufficientTokensError struct {
	Available int64
}

func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("Not enough tokens available. Only %d tokens left.", e.Available)
}

func (e *InsufficientTokensError) Unwrap() error {
	return ErrInsufficientTokens
}

// ValidationError describes a client input error with a human readable message
type ValidationError struct {
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
