package stack

import "errors"

var (
	// ErrUnknownOperation indicates a symbol outside the eleven operations.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrEmptyStack indicates a push from an empty stack.
	ErrEmptyStack = errors.New("push from empty stack")
)
