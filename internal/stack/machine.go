package stack

import "fmt"

// Machine holds stacks A and B and executes operations on them.
//
// Swap and rotate on a stack with fewer than two values are the identity.
// A push from an empty stack fails with ErrEmptyStack and leaves both stacks
// untouched, so Undo always restores the exact prior state.
type Machine struct {
	a *Stack
	b *Stack
}

// New creates a Machine with values on A (values[0] on top) and B empty.
func New(values []int) *Machine {
	m := &Machine{
		a: newStack(len(values)),
		b: newStack(len(values)),
	}
	for _, v := range values {
		m.a.pushBack(v)
	}
	return m
}

// A returns stack A.
func (m *Machine) A() *Stack {
	return m.a
}

// B returns stack B.
func (m *Machine) B() *Stack {
	return m.b
}

// Len returns the total number of values held by both stacks.
func (m *Machine) Len() int {
	return m.a.Len() + m.b.Len()
}

// Execute applies a single operation.
func (m *Machine) Execute(op Op) error {
	switch op {
	case SA:
		m.a.swap()
	case SB:
		m.b.swap()
	case SS:
		m.a.swap()
		m.b.swap()
	case RA:
		m.a.rotate()
	case RB:
		m.b.rotate()
	case RR:
		m.a.rotate()
		m.b.rotate()
	case RRA:
		m.a.reverseRotate()
	case RRB:
		m.b.reverseRotate()
	case RRR:
		m.a.reverseRotate()
		m.b.reverseRotate()
	case PA:
		if m.b.Len() == 0 {
			return fmt.Errorf("%s: %w", op, ErrEmptyStack)
		}
		m.a.pushFront(m.b.popFront())
	case PB:
		if m.a.Len() == 0 {
			return fmt.Errorf("%s: %w", op, ErrEmptyStack)
		}
		m.b.pushFront(m.a.popFront())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
	return nil
}

// Undo applies the inverse of op.
func (m *Machine) Undo(op Op) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
	return m.Execute(op.Inverse())
}

// ExecuteAll applies ops in order. If an operation fails, the operations
// already applied are undone before the error is returned.
func (m *Machine) ExecuteAll(ops []Op) error {
	for i, op := range ops {
		if err := m.Execute(op); err != nil {
			if rerr := m.UndoAll(ops[:i]); rerr != nil {
				return fmt.Errorf("rollback after %v failed: %w", err, rerr)
			}
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// UndoAll undoes ops, last first.
func (m *Machine) UndoAll(ops []Op) error {
	for i := len(ops) - 1; i >= 0; i-- {
		if err := m.Undo(ops[i]); err != nil {
			return fmt.Errorf("undo operation %d: %w", i, err)
		}
	}
	return nil
}

// Sorted reports whether A is strictly ascending from top to bottom and B is empty.
func (m *Machine) Sorted() bool {
	if m.b.Len() != 0 {
		return false
	}
	for i := 1; i < m.a.Len(); i++ {
		if m.a.At(i-1) >= m.a.At(i) {
			return false
		}
	}
	return true
}
