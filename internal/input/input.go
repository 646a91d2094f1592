// Package input turns command-line tokens into the values to sort.
//
// Each argument may carry several whitespace-separated integers, so both
// `pushswap 3 1 2` and `pushswap "3 1 2"` describe the same input. Parsing
// fails fast: the first invalid token or repeated value aborts before any
// stack is built.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput indicates a token that is not a base-10 integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateValue indicates a value supplied more than once.
	ErrDuplicateValue = errors.New("duplicate value")
)

// Parse converts args into values, top of stack A first.
func Parse(args []string) ([]int, error) {
	var values []int
	for _, arg := range args {
		for _, tok := range strings.Fields(arg) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
			}
			values = append(values, v)
		}
	}

	if err := CheckDistinct(values); err != nil {
		return nil, err
	}
	return values, nil
}

// CheckDistinct returns ErrDuplicateValue if any value repeats.
func CheckDistinct(values []int) error {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateValue, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
