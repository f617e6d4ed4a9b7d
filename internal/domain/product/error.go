package product

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("product not found")

	// ErrValidation is the parent of every draft validation failure.
	ErrValidation = errors.New("validation failed")

	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrInvalidDateRange     = errors.New("date out of range")
	ErrFieldTooLong         = errors.New("field too long")
	ErrInvalidNumber        = errors.New("invalid number")
)

// ValidationError reports the first failed check of a draft. It matches both
// ErrValidation and its Kind with errors.Is.
type ValidationError struct {
	Field string
	Kind  error
}

func newValidationError(field string, kind error) *ValidationError {
	return &ValidationError{Field: field, Kind: kind}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Kind)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}
