package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// InternalError signals a broken engine invariant (e.g. negative supply
// discovered mid-turn). It is not recoverable by callers and should only
// surface during testing.
type InternalError struct {
	*DomainError
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{DomainError: &DomainError{Message: fmt.Sprintf(format, args...)}}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
