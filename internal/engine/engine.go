// Package engine provides the solving engine of pushswap.
//
// The engine acts as the orchestration layer between the CLI and the
// lower-level packages. It validates a request, picks the small-case table
// or the two-phase search, drives the planner's candidate moves through the
// stack machine, and verifies the result before returning it.
//
// Key components:
//   - Engine: main entry point, safe for concurrent Solve calls
//   - Search: budget-bounded backtracking over tied-cost moves
//   - Solve: small case, phase A to B, cyclic remainder, phase B to A, alignment
package engine

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/danieljhkim/pushswap/internal/stack"
	"github.com/danieljhkim/pushswap/internal/table"
)

// Engine solves inputs. It holds only immutable state, so one Engine may
// serve many goroutines.
type Engine struct {
	tables *table.Set
	log    logr.Logger
}

// New creates a new Engine with the given tables and logger.
func New(tables *table.Set, log logr.Logger) *Engine {
	return &Engine{
		tables: tables,
		log:    log,
	}
}

// NewDefault creates an Engine backed by the embedded tables.
func NewDefault(log logr.Logger) (*Engine, error) {
	tables, err := table.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load small-case tables: %w", err)
	}
	return New(tables, log), nil
}

// execute applies ops to m and appends them to the result.
func execute(m *stack.Machine, ops []stack.Op, dst *[]stack.Op) error {
	if err := m.ExecuteAll(ops); err != nil {
		return fmt.Errorf("failed to execute operations: %w", err)
	}
	*dst = append(*dst, ops...)
	return nil
}
