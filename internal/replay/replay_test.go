package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/pushswap/internal/stack"
)

func TestReadOps(t *testing.T) {
	got, err := ReadOps(strings.NewReader("sa\n\n  pb \nrrr\n"))
	if err != nil {
		t.Fatalf("ReadOps() error = %v", err)
	}
	want := []stack.Op{stack.SA, stack.PB, stack.RRR}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadOps() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOps_UnknownOperation(t *testing.T) {
	_, err := ReadOps(strings.NewReader("sa\nrb\nswap\n"))
	if !errors.Is(err, stack.ErrUnknownOperation) {
		t.Fatalf("ReadOps() error = %v, want ErrUnknownOperation", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		ops    string
		want   Verdict
	}{
		{"already sorted", []int{1, 2, 3}, "", OK},
		{"swap sorts", []int{2, 1, 3}, "sa\n", OK},
		{"rotate sorts", []int{3, 1, 2}, "ra\n", OK},
		{"wrong op", []int{3, 1, 2}, "rra\n", KO},
		{"values left on b", []int{1, 2, 3}, "pb\n", KO},
		{"round trip", []int{1, 2, 3}, "pb\npb\npa\npa\n", OK},
		{"empty input", nil, "", OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Check(tt.values, strings.NewReader(tt.ops))
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if res.Verdict != tt.want {
				t.Errorf("Check() verdict = %s, want %s", res.Verdict, tt.want)
			}
		})
	}
}

func TestRun_EmptyPush(t *testing.T) {
	_, err := Run([]int{1, 2}, []stack.Op{stack.PA})
	if !errors.Is(err, stack.ErrEmptyStack) {
		t.Fatalf("Run() error = %v, want ErrEmptyStack", err)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify([]int{2, 1}, []stack.Op{stack.SA}); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
	if err := Verify([]int{2, 1}, nil); !errors.Is(err, ErrNotSorted) {
		t.Errorf("Verify() error = %v, want ErrNotSorted", err)
	}
}
