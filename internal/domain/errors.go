package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP statuses.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state transition")
)

// DomainError wraps an error kind with a human-readable message.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing entity by type and identifier.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// NewConflictError reports a state clash, e.g. a double booking.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError reports rejected input.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewInvalidStateError reports an illegal lifecycle transition.
func NewInvalidStateError(from, to string) *DomainError {
	return &DomainError{
		Err:     ErrInvalidState,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err, kind error) bool {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return errors.Is(domErr.Err, kind)
	}
	return false
}
