package planner

import (
	"fmt"

	"github.com/danieljhkim/pushswap/internal/stack"
)

// Direction names a move phase by its source and destination stacks.
type Direction int

const (
	// AtoB moves values from A to B, keeping B in descending cyclic order.
	AtoB Direction = iota
	// BtoA moves values from B to A, keeping A in ascending cyclic order.
	BtoA
)

func (d Direction) String() string {
	switch d {
	case AtoB:
		return "ab"
	case BtoA:
		return "ba"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Source returns the stack values are taken from.
func (d Direction) Source(m *stack.Machine) *stack.Stack {
	if d == AtoB {
		return m.A()
	}
	return m.B()
}

// Destination returns the stack values are pushed onto.
func (d Direction) Destination(m *stack.Machine) *stack.Stack {
	if d == AtoB {
		return m.B()
	}
	return m.A()
}

// symbols holds the operations used by one direction.
type symbols struct {
	srcForward, srcBackward stack.Op
	dstForward, dstBackward stack.Op
	push                    stack.Op
}

func (d Direction) symbols() symbols {
	if d == AtoB {
		return symbols{stack.RA, stack.RRA, stack.RB, stack.RRB, stack.PB}
	}
	return symbols{stack.RB, stack.RRB, stack.RA, stack.RRA, stack.PA}
}

// Rotation describes how both stacks turn before a push.
type Rotation struct {
	// Source is the number of source rotations
	Source int

	// SourceBackward selects reverse rotations (rra/rrb) for the source
	SourceBackward bool

	// Dest is the number of destination rotations
	Dest int

	// DestBackward selects reverse rotations (rra/rrb) for the destination
	DestBackward bool
}

// Shared returns the number of rotations both stacks perform together as
// rr or rrr.
func (r Rotation) Shared() int {
	if r.SourceBackward != r.DestBackward {
		return 0
	}
	return min(r.Source, r.Dest)
}

// Cost returns the number of operations the rotation needs, excluding the push.
func (r Rotation) Cost() int {
	return r.Source + r.Dest - r.Shared()
}

// Move is a candidate: one source value pushed to its insertion point.
type Move struct {
	// Index is the position of the value on the source stack
	Index int

	// Value is the value being moved
	Value int

	// Target is the insertion index on the destination stack
	Target int

	// Rotation is the chosen rotation combination
	Rotation Rotation

	// Ops is the full operation sequence, ending with the push
	Ops []stack.Op
}

// Cost returns the number of operations of the move.
func (mv Move) Cost() int {
	return len(mv.Ops)
}

// Apply executes the move's operations. On failure m is left unchanged.
func (mv Move) Apply(m *stack.Machine) error {
	if err := m.ExecuteAll(mv.Ops); err != nil {
		return fmt.Errorf("failed to apply move of %d: %w", mv.Value, err)
	}
	return nil
}

// Revert undoes a previously applied move.
func (mv Move) Revert(m *stack.Machine) error {
	if err := m.UndoAll(mv.Ops); err != nil {
		return fmt.Errorf("failed to revert move of %d: %w", mv.Value, err)
	}
	return nil
}
