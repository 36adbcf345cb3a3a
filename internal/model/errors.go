package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of every input-shape failure; match with
	// errors.Is, inspect the field with errors.As on *ValidationError.
	ErrValidation = errors.New("model: validation failed")

	// ErrInvariant marks an internal assertion failure. Reaching it means a
	// bug in this package, not bad caller input.
	ErrInvariant = errors.New("model: invariant violated")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolation should never surface to a caller.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("model: invariant violated: %s", e.Msg)
}

func (e *InvariantViolation) Unwrap() error { return ErrInvariant }
