package engine

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/danieljhkim/pushswap/internal/planner"
	"github.com/danieljhkim/pushswap/internal/stack"
)

// searcher runs the move phases of one solve. It owns the machine for the
// duration of the solve.
type searcher struct {
	ctx         context.Context
	m           *stack.Machine
	maxBranches int
	log         logr.Logger
	stats       *Stats
}

// run moves values from the source stack of dir until it holds until
// values. The machine is left at the end of the phase and the applied
// operations are returned. On error the machine is restored to its state
// at entry.
//
// Each step takes the cheapest candidate move. When several moves tie and
// budget is positive, the step is a branch point: every tied move is
// evaluated with the rest of the phase searched at budget-1, and the
// shortest continuation is kept.
func (s *searcher) run(dir planner.Direction, until, budget int) (Solution, error) {
	var ops []stack.Op
	src := dir.Source(s.m)

	for src.Len() > until {
		ties := planner.Cheapest(planner.Candidates(s.m, dir))

		if budget == 0 || len(ties) == 1 {
			if err := ties[0].Apply(s.m); err != nil {
				return Solution{}, s.rollback(ops, err)
			}
			ops = append(ops, ties[0].Ops...)
			continue
		}

		best, err := s.branch(dir, until, budget, ties)
		if err != nil {
			return Solution{}, s.rollback(ops, err)
		}
		ops = append(ops, best.Ops...)
		return Solution{Ops: ops, Budget: best.Budget}, nil
	}

	return Solution{Ops: ops, Budget: budget}, nil
}

// branch evaluates each tied move and applies the one whose continuation is
// shortest; the first wins ties. The returned solution covers the rest of
// the phase, starting with the chosen move.
func (s *searcher) branch(dir planner.Direction, until, budget int, ties []planner.Move) (Solution, error) {
	if err := s.ctx.Err(); err != nil {
		return Solution{}, err
	}
	if s.maxBranches > 0 && len(ties) > s.maxBranches {
		ties = ties[:s.maxBranches]
	}
	s.stats.BranchPoints++

	var best Solution
	found := false
	for _, mv := range ties {
		rest, err := s.evaluate(mv, dir, until, budget-1)
		if err != nil {
			return Solution{}, err
		}
		s.stats.Branches++

		if !found || len(mv.Ops)+len(rest.Ops) < len(best.Ops) {
			best = Solution{
				Ops:    append(append([]stack.Op{}, mv.Ops...), rest.Ops...),
				Budget: rest.Budget,
			}
			found = true
		}
	}

	s.log.V(2).Info("branch point",
		"direction", dir.String(),
		"source", dir.Source(s.m).Len(),
		"ties", len(ties),
		"budget", budget,
		"best", len(best.Ops),
	)

	if err := s.m.ExecuteAll(best.Ops); err != nil {
		return Solution{}, fmt.Errorf("failed to apply best branch: %w", err)
	}
	return best, nil
}

// evaluate applies mv, searches the rest of the phase, and restores the
// machine before returning the continuation.
func (s *searcher) evaluate(mv planner.Move, dir planner.Direction, until, budget int) (Solution, error) {
	if err := mv.Apply(s.m); err != nil {
		return Solution{}, err
	}

	rest, err := s.run(dir, until, budget)
	if err == nil {
		err = s.m.UndoAll(rest.Ops)
	}
	if rerr := mv.Revert(s.m); rerr != nil && err == nil {
		err = rerr
	}
	if err != nil {
		return Solution{}, err
	}
	return rest, nil
}

// rollback undoes ops and returns err, noting a failed rollback.
func (s *searcher) rollback(ops []stack.Op, err error) error {
	if uerr := s.m.UndoAll(ops); uerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, uerr)
	}
	return err
}
