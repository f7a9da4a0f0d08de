package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrPersistence   = errors.New("persistence error")
)

// Ledger-specific validation failures. Both unwrap to ErrValidation so the
// transport layer can treat them as bad requests without knowing about them.
var (
	ErrInvalidAmount = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrInvalidTarget = fmt.Errorf("invalid target: %w", ErrValidation)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError

	// Kind optionally narrows the failure (ErrInvalidAmount, ErrInvalidTarget).
	Kind error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	if e.Kind != nil {
		return e.Kind
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewAmountError reports an unacceptable donation amount.
func NewAmountError(message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: "amount", Message: message}},
		Kind:   ErrInvalidAmount,
	}
}

// NewTargetError reports a donation target that does not resolve to a payable creator.
func NewTargetError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
		Kind:   ErrInvalidTarget,
	}
}
