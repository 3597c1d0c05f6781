package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks input that violates the scoring contract: values that
// are not finite non-negative numbers, or a non-positive cutoff.
var ErrInvalidInput = errors.New("invalid input")

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewInvalidInput returns a ValidationError whose chain contains ErrInvalidInput.
func NewInvalidInput(msg string) *ValidationError {
	return &ValidationError{Message: msg, Err: ErrInvalidInput}
}

func NewInvalidInputf(format string, args ...any) *ValidationError {
	return NewInvalidInput(fmt.Sprintf(format, args...))
}

// IsInvalidInput reports whether err was caused by a contract violation.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
