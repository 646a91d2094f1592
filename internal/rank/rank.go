// Package rank abstracts stack contents into permutation patterns.
package rank

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize returns, for each position, the rank of its value among all
// values (0 is the smallest). Values must be distinct.
func Normalize(values []int) []int {
	ranks := make([]int, len(values))
	taken := make([]bool, len(values))
	for r := range values {
		best := -1
		for i, v := range values {
			if taken[i] {
				continue
			}
			if best < 0 || v < values[best] {
				best = i
			}
		}
		taken[best] = true
		ranks[best] = r
	}
	return ranks
}

// Rotated returns the rank pattern shifted modulo n so that position 0
// carries rank 0. Sequences in the same cyclic order share a pattern.
func Rotated(values []int) []int {
	ranks := Normalize(values)
	n := len(ranks)
	if n == 0 {
		return ranks
	}
	shift := (n - ranks[0]) % n
	for i, r := range ranks {
		ranks[i] = (r + shift) % n
	}
	return ranks
}

// IsAscending reports whether pattern is 0, 1, ..., n-1.
func IsAscending(pattern []int) bool {
	for i, r := range pattern {
		if r != i {
			return false
		}
	}
	return true
}

// IsCyclic reports whether each rank is followed by its successor modulo n,
// wrapping from the last position to the first.
func IsCyclic(pattern []int) bool {
	n := len(pattern)
	for i, r := range pattern {
		if pattern[(i+1)%n] != (r+1)%n {
			return false
		}
	}
	return true
}

// Key formats a pattern as space-separated ranks, e.g. "1 0 2".
func Key(pattern []int) string {
	var b strings.Builder
	for i, r := range pattern {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(r))
	}
	return b.String()
}

// ParseKey parses a key produced by Key. The result must be a permutation
// of 0..n-1.
func ParseKey(key string) ([]int, error) {
	fields := strings.Fields(key)
	pattern := make([]int, len(fields))
	seen := make([]bool, len(fields))
	for i, f := range fields {
		r, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid rank %q in pattern %q", f, key)
		}
		if r < 0 || r >= len(fields) || seen[r] {
			return nil, fmt.Errorf("pattern %q is not a permutation", key)
		}
		seen[r] = true
		pattern[i] = r
	}
	return pattern, nil
}
