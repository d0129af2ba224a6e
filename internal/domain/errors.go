package domain

import (
	"errors"
	"fmt"
)

// Domain sentinel errors
var (
	// ErrNotFound the requested entity does not exist in the dataset
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput a request parameter could not be used
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable the dataset could not be obtained in time
	ErrUnavailable = errors.New("dataset unavailable")
	// ErrInternal unexpected failure
	ErrInternal = errors.New("internal error")
)

// DomainError carries a user-facing message next to the wrapped cause
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements error; the text includes the cause and is meant for logs
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message that is safe to show to API clients
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error for an entity id
func NewNotFoundError(resourceType string, id int) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%d' not found", resourceType, id),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewUnavailableError wraps a failure to obtain the dataset
func NewUnavailableError(err error) error {
	return &DomainError{
		Code:    "UNAVAILABLE",
		Message: "dataset is not available, try again later",
		Err:     fmt.Errorf("%w: %v", ErrUnavailable, err),
	}
}

// NewInternalError hides the cause from the user message
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnavailable reports whether err is an unavailable error
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
