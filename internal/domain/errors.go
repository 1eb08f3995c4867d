package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing user input. No state is
	// mutated when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to a user that does not exist, including
	// "no user selected".
	ErrNotFound = errors.New("not found")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid returns a *ValidationError for field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
