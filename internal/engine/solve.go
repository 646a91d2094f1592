package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/pushswap/internal/input"
	"github.com/danieljhkim/pushswap/internal/planner"
	"github.com/danieljhkim/pushswap/internal/rank"
	"github.com/danieljhkim/pushswap/internal/stack"
	"github.com/danieljhkim/pushswap/internal/table"
)

// Solve computes an operation sequence that sorts req.Values on stack A.
//
// Up to table.MaxSize values are sorted with the ascending table entry for
// their rank pattern. Larger inputs move to B until table.MaxSize values
// remain on A, order those with the cyclic table, move everything back to
// A at its insertion point, and finally rotate the minimum to the top.
func (e *Engine) Solve(ctx context.Context, req *SolveRequest) (*SolveResult, error) {
	if req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative (got %d)", ErrValidation, req.Budget)
	}
	if req.MaxBranches < 0 {
		return nil, fmt.Errorf("%w: max branches must not be negative (got %d)", ErrValidation, req.MaxBranches)
	}
	if err := input.CheckDistinct(req.Values); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(req.Values)
	m := stack.New(req.Values)
	result := &SolveResult{
		Ops:   []stack.Op{},
		Stats: Stats{Size: n},
	}

	switch {
	case n <= 1:
	case n <= table.MaxSize:
		ops, err := e.tables.Ascending.Lookup(rank.Normalize(req.Values))
		if err != nil {
			return nil, err
		}
		if err := execute(m, ops, &result.Ops); err != nil {
			return nil, err
		}
		result.Stats.SmallCase = len(ops)
	default:
		if err := e.solveLarge(ctx, m, req, result); err != nil {
			return nil, err
		}
	}

	if !m.Sorted() {
		return nil, fmt.Errorf("%w: A=%v B=%v", ErrUnsorted, m.A().Values(), m.B().Values())
	}

	e.log.V(1).Info("solved",
		"size", n,
		"ops", len(result.Ops),
		"pushAB", result.Stats.PushAB,
		"smallCase", result.Stats.SmallCase,
		"pushBA", result.Stats.PushBA,
		"align", result.Stats.Align,
		"branchPoints", result.Stats.BranchPoints,
		"branches", result.Stats.Branches,
	)
	return result, nil
}

// solveLarge runs the two move phases around the cyclic small-case table.
func (e *Engine) solveLarge(ctx context.Context, m *stack.Machine, req *SolveRequest, result *SolveResult) error {
	s := &searcher{
		ctx:         ctx,
		m:           m,
		maxBranches: req.MaxBranches,
		log:         e.log,
		stats:       &result.Stats,
	}

	ab, err := s.run(planner.AtoB, table.MaxSize, req.Budget)
	if err != nil {
		return fmt.Errorf("phase %s: %w", planner.AtoB, err)
	}
	result.Ops = append(result.Ops, ab.Ops...)
	result.Stats.PushAB = len(ab.Ops)

	rest, err := e.tables.Cyclic.Lookup(rank.Rotated(m.A().Values()))
	if err != nil {
		return err
	}
	if err := execute(m, rest, &result.Ops); err != nil {
		return err
	}
	result.Stats.SmallCase = len(rest)

	if err := ctx.Err(); err != nil {
		return err
	}

	ba, err := s.run(planner.BtoA, 0, req.Budget)
	if err != nil {
		return fmt.Errorf("phase %s: %w", planner.BtoA, err)
	}
	result.Ops = append(result.Ops, ba.Ops...)
	result.Stats.PushBA = len(ba.Ops)

	align := planner.AlignOps(m.A())
	if err := execute(m, align, &result.Ops); err != nil {
		return err
	}
	result.Stats.Align = len(align)

	e.log.V(1).Info("phases complete",
		"budgetLeftAB", ab.Budget,
		"budgetLeftBA", ba.Budget,
	)
	return nil
}
