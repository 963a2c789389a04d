package workouts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when an operation violates the
	// single active workout lifecycle (e.g. completing with nothing in progress).
	ErrInvalidState = errors.New("invalid state")
	// ErrValidation is matched by every *ValidationError via errors.Is.
	ErrValidation      = errors.New("validation error")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// ValidationError describes a malformed exercise entry or logged workout.
// Index is the exercise position within the workout, or -1 when the
// error is about the workout itself.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func newValidationError(index int, field, reason string) *ValidationError {
	return &ValidationError{
		Index:  index,
		Field:  field,
		Reason: reason,
	}
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation error: exercise [%d] %s %s", e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
