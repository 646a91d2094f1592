// Package replay reads operation listings and applies them to a stack
// machine, the way a checker verifies a solver's output.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/danieljhkim/pushswap/internal/stack"
)

// Verdict is the outcome of a replay.
type Verdict string

const (
	OK Verdict = "OK"
	KO Verdict = "KO"
)

// Result holds the final machine and its verdict.
type Result struct {
	Verdict Verdict
	Applied int
	Machine *stack.Machine
}

// ReadOps reads one operation per line from r. Blank lines are skipped. An
// unknown symbol stops the read and is reported with its line number.
func ReadOps(r io.Reader) ([]stack.Op, error) {
	var ops []stack.Op
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		op, err := stack.ParseOp(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read operations: %w", err)
	}
	return ops, nil
}

// Run applies ops to a machine holding values and reports whether the
// result is sorted.
func Run(values []int, ops []stack.Op) (*Result, error) {
	m := stack.New(values)
	for i, op := range ops {
		if err := m.Execute(op); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return &Result{
		Verdict: VerdictOf(m),
		Applied: len(ops),
		Machine: m,
	}, nil
}

// Check reads operations from r and replays them on values.
func Check(values []int, r io.Reader) (*Result, error) {
	ops, err := ReadOps(r)
	if err != nil {
		return nil, err
	}
	return Run(values, ops)
}

// Verify returns an error when ops do not sort values.
func Verify(values []int, ops []stack.Op) error {
	res, err := Run(values, ops)
	if err != nil {
		return err
	}
	if res.Verdict != OK {
		return fmt.Errorf("%w: A=%v B=%v", ErrNotSorted, res.Machine.A().Values(), res.Machine.B().Values())
	}
	return nil
}

// VerdictOf reports OK when m holds its values ascending on A with B empty.
func VerdictOf(m *stack.Machine) Verdict {
	if m.Sorted() {
		return OK
	}
	return KO
}
