package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists every violated constraint of one input, in field
// declaration order. Messages name the offending field by its JSON name.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from ready messages. It is
// used for type coercion failures that happen before schema validation.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
