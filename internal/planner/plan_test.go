package planner

import (
	"testing"

	"github.com/danieljhkim/pushswap/internal/stack"
)

// machineWith builds a machine whose stacks hold a and b, top first.
func machineWith(t *testing.T, a, b []int) *stack.Machine {
	t.Helper()
	values := make([]int, 0, len(a)+len(b))
	for i := len(b) - 1; i >= 0; i-- {
		values = append(values, b[i])
	}
	values = append(values, a...)

	m := stack.New(values)
	for range b {
		if err := m.Execute(stack.PB); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return m
}

func TestRotation_Cost(t *testing.T) {
	tests := []struct {
		name       string
		rot        Rotation
		wantShared int
		wantCost   int
	}{
		{"no rotation", Rotation{}, 0, 0},
		{"forward both", Rotation{Source: 2, Dest: 5}, 2, 5},
		{"backward both", Rotation{Source: 4, SourceBackward: true, Dest: 1, DestBackward: true}, 1, 4},
		{"mixed", Rotation{Source: 3, Dest: 2, DestBackward: true}, 0, 5},
		{"source only", Rotation{Source: 3, SourceBackward: true}, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rot.Shared(); got != tt.wantShared {
				t.Errorf("Shared() = %d, want %d", got, tt.wantShared)
			}
			if got := tt.rot.Cost(); got != tt.wantCost {
				t.Errorf("Cost() = %d, want %d", got, tt.wantCost)
			}
		})
	}
}

func TestDirection_Stacks(t *testing.T) {
	m := machineWith(t, []int{1, 2}, []int{3})

	if AtoB.Source(m) != m.A() || AtoB.Destination(m) != m.B() {
		t.Error("AtoB should move from A to B")
	}
	if BtoA.Source(m) != m.B() || BtoA.Destination(m) != m.A() {
		t.Error("BtoA should move from B to A")
	}
	if AtoB.String() != "ab" || BtoA.String() != "ba" {
		t.Errorf("unexpected names %q %q", AtoB, BtoA)
	}
}

func TestMove_ApplyRevert(t *testing.T) {
	m := machineWith(t, []int{1, 4, 7}, []int{5, 9, 0})
	mv := Move{Value: 5, Ops: []stack.Op{stack.RRA, stack.PA}}

	if err := mv.Apply(m); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := m.A().Values(); !equalInts(got, []int{5, 7, 1, 4}) {
		t.Errorf("A after apply = %v", got)
	}

	if err := mv.Revert(m); err != nil {
		t.Fatalf("Revert() error = %v", err)
	}
	if got := m.A().Values(); !equalInts(got, []int{1, 4, 7}) {
		t.Errorf("A after revert = %v", got)
	}
	if got := m.B().Values(); !equalInts(got, []int{5, 9, 0}) {
		t.Errorf("B after revert = %v", got)
	}
}

func TestMove_ApplyFailureLeavesState(t *testing.T) {
	m := machineWith(t, []int{1, 2}, nil)
	mv := Move{Value: 1, Ops: []stack.Op{stack.RA, stack.PA}}

	if err := mv.Apply(m); err == nil {
		t.Fatal("expected error pushing from empty B")
	}
	if got := m.A().Values(); !equalInts(got, []int{1, 2}) {
		t.Errorf("A = %v, want [1 2]", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
