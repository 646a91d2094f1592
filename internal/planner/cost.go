package planner

import (
	"github.com/danieljhkim/pushswap/internal/stack"
)

// InsertionIndex returns the destination index a value must be brought to
// before it is pushed.
//
// For AtoB it is the index of the largest destination value below v, or of
// the destination maximum when every value is above v. For BtoA it is the
// index of the smallest destination value above v, or of the destination
// minimum when every value is below v. An empty destination yields 0.
func InsertionIndex(dst *stack.Stack, v int, dir Direction) int {
	best := -1
	for i := 0; i < dst.Len(); i++ {
		d := dst.At(i)
		switch dir {
		case AtoB:
			if d < v && (best < 0 || d > dst.At(best)) {
				best = i
			}
		case BtoA:
			if d > v && (best < 0 || d < dst.At(best)) {
				best = i
			}
		}
	}
	if best >= 0 {
		return best
	}
	if dst.Len() == 0 {
		return 0
	}
	if dir == AtoB {
		return dst.MaxIndex()
	}
	return dst.MinIndex()
}

// backward returns the number of reverse rotations bringing index i of a
// stack of the given size to the top.
func backward(i, size int) int {
	if size == 0 {
		return 0
	}
	return (size - i) % size
}

// CheapestRotation evaluates the four rotation combinations for bringing
// source index i and destination index j to the top of their stacks, and
// returns the first one of minimal cost.
func CheapestRotation(i, srcLen, j, dstLen int) Rotation {
	srcBack := backward(i, srcLen)
	dstBack := backward(j, dstLen)

	combos := []Rotation{
		{Source: i, Dest: j},
		{Source: srcBack, SourceBackward: true, Dest: dstBack, DestBackward: true},
		{Source: i, Dest: dstBack, DestBackward: true},
		{Source: srcBack, SourceBackward: true, Dest: j},
	}

	best := combos[0]
	for _, r := range combos[1:] {
		if r.Cost() < best.Cost() {
			best = r
		}
	}
	return best
}

// Ops converts a rotation into the operation sequence for dir: paired
// rotations first, then the remaining source and destination rotations,
// then the push.
func (r Rotation) Ops(dir Direction) []stack.Op {
	sym := dir.symbols()
	ops := make([]stack.Op, 0, r.Cost()+1)

	shared := r.Shared()
	paired := stack.RR
	if r.SourceBackward {
		paired = stack.RRR
	}
	for k := 0; k < shared; k++ {
		ops = append(ops, paired)
	}

	srcOp := sym.srcForward
	if r.SourceBackward {
		srcOp = sym.srcBackward
	}
	for k := shared; k < r.Source; k++ {
		ops = append(ops, srcOp)
	}

	dstOp := sym.dstForward
	if r.DestBackward {
		dstOp = sym.dstBackward
	}
	for k := shared; k < r.Dest; k++ {
		ops = append(ops, dstOp)
	}

	return append(ops, sym.push)
}

// Candidates returns one move per source value, in source order.
func Candidates(m *stack.Machine, dir Direction) []Move {
	src := dir.Source(m)
	dst := dir.Destination(m)

	moves := make([]Move, src.Len())
	for i := range moves {
		v := src.At(i)
		j := InsertionIndex(dst, v, dir)
		rot := CheapestRotation(i, src.Len(), j, dst.Len())
		moves[i] = Move{
			Index:    i,
			Value:    v,
			Target:   j,
			Rotation: rot,
			Ops:      rot.Ops(dir),
		}
	}
	return moves
}

// Cheapest returns the moves of minimal cost, keeping their order.
func Cheapest(moves []Move) []Move {
	if len(moves) == 0 {
		return nil
	}
	best := moves[0].Cost()
	for _, mv := range moves[1:] {
		best = min(best, mv.Cost())
	}

	var ties []Move
	for _, mv := range moves {
		if mv.Cost() == best {
			ties = append(ties, mv)
		}
	}
	return ties
}

// AlignOps returns the rotations that bring the minimum of a to the top,
// turning whichever way is shorter.
func AlignOps(a *stack.Stack) []stack.Op {
	n := a.Len()
	k := a.MinIndex()
	if k <= 0 {
		return nil
	}

	if k < n-k {
		return repeat(stack.RA, k)
	}
	return repeat(stack.RRA, n-k)
}

func repeat(op stack.Op, n int) []stack.Op {
	ops := make([]stack.Op, n)
	for i := range ops {
		ops[i] = op
	}
	return ops
}
