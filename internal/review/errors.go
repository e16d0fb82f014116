package review

import (
	"errors"
	"strings"
)

var (
	// ErrPlanNotFound is returned when no plan exists for a (user, word) pair.
	ErrPlanNotFound = errors.New("review plan not found")
	// ErrInvalidInput is returned for a malformed review submission.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable is returned when the persistence transaction failed or timed out.
	// The caller may resubmit with the same parameters.
	ErrStoreUnavailable = errors.New("review store unavailable")
	// ErrConcurrentConflict is returned by a store when the plan changed under a write.
	ErrConcurrentConflict = errors.New("concurrent review plan update")
)

// FieldViolation describes one invalid field of a request.
type FieldViolation struct {
	Field       string
	Description string
}

// ValidationError lists the invalid fields of a review submission.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	descriptions := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		descriptions = append(descriptions, v.Description)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(descriptions, ", ")
}

// Is makes errors.Is(err, ErrInvalidInput) true for a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
