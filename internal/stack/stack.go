// Package stack implements the two-stack machine the solver operates on.
//
// A Machine owns stacks A and B and executes the eleven primitive
// operations (sa, sb, ss, ra, rb, rr, rra, rrb, rrr, pa, pb). Every
// operation has an exact inverse, so any sequence applied with Execute can
// be rolled back with Undo. Stacks are fixed-capacity ring buffers: a push
// or rotation never allocates.
package stack

// Stack is an ordered sequence of integers. Index 0 is the top.
type Stack struct {
	buf  []int
	head int
	size int
}

// newStack creates an empty stack able to hold capacity values.
func newStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack{buf: make([]int, capacity)}
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return s.size
}

// At returns the value at index i, counted from the top.
func (s *Stack) At(i int) int {
	return s.buf[s.slot(i)]
}

// Values returns a copy of the stack contents, top first.
func (s *Stack) Values() []int {
	out := make([]int, s.size)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// MinIndex returns the index of the smallest value, or -1 if the stack is empty.
func (s *Stack) MinIndex() int {
	if s.size == 0 {
		return -1
	}
	best := 0
	for i := 1; i < s.size; i++ {
		if s.At(i) < s.At(best) {
			best = i
		}
	}
	return best
}

// MaxIndex returns the index of the largest value, or -1 if the stack is empty.
func (s *Stack) MaxIndex() int {
	if s.size == 0 {
		return -1
	}
	best := 0
	for i := 1; i < s.size; i++ {
		if s.At(i) > s.At(best) {
			best = i
		}
	}
	return best
}

func (s *Stack) slot(i int) int {
	return (s.head + i) % len(s.buf)
}

func (s *Stack) pushFront(v int) {
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = v
	s.size++
}

func (s *Stack) popFront() int {
	v := s.buf[s.head]
	s.head = (s.head + 1) % len(s.buf)
	s.size--
	return v
}

func (s *Stack) pushBack(v int) {
	s.buf[s.slot(s.size)] = v
	s.size++
}

func (s *Stack) popBack() int {
	s.size--
	return s.buf[s.slot(s.size)]
}

// swap exchanges the two top values. Fewer than two values is the identity.
func (s *Stack) swap() {
	if s.size < 2 {
		return
	}
	i, j := s.slot(0), s.slot(1)
	s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
}

// rotate moves the top value to the bottom.
func (s *Stack) rotate() {
	if s.size < 2 {
		return
	}
	s.pushBack(s.popFront())
}

// reverseRotate moves the bottom value to the top.
func (s *Stack) reverseRotate() {
	if s.size < 2 {
		return
	}
	s.pushFront(s.popBack())
}
