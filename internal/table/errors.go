package table

import "errors"

var (
	// ErrPatternNotFound indicates a lookup for a pattern the table does not cover.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrIncompleteTable indicates a table missing required patterns.
	ErrIncompleteTable = errors.New("incomplete table")
)
