package engine

import "errors"

var (
	// ErrValidation indicates a request with invalid search parameters.
	ErrValidation = errors.New("validation failed")

	// ErrUnsorted indicates the solver produced a sequence that does not sort
	// the input. It is an internal invariant violation.
	ErrUnsorted = errors.New("solution does not sort the input")
)
