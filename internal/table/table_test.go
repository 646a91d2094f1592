package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/pushswap/internal/rank"
	"github.com/danieljhkim/pushswap/internal/stack"
)

func loadDefault(t *testing.T) *Set {
	t.Helper()
	set, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return set
}

func TestDefault_Complete(t *testing.T) {
	set := loadDefault(t)

	if got := set.Ascending.Len(); got != 2+6+24+120 {
		t.Errorf("ascending table has %d entries, want 152", got)
	}
	if got := set.Cyclic.Len(); got != 1+2+6+24 {
		t.Errorf("cyclic table has %d entries, want 33", got)
	}

	for n := MinSize; n <= MaxSize; n++ {
		for _, p := range Permutations(n) {
			if _, err := set.Ascending.Lookup(p); err != nil {
				t.Errorf("ascending lookup %v: %v", p, err)
			}
		}
	}
}

func TestDefault_Scenarios(t *testing.T) {
	set := loadDefault(t)

	tests := []struct {
		name   string
		values []int
		want   []stack.Op
	}{
		{"swap", []int{2, 1, 3}, []stack.Op{stack.SA}},
		{"rotate", []int{3, 1, 2}, []stack.Op{stack.RA}},
		{"sorted", []int{1, 2, 3, 4, 5}, []stack.Op{}},
		{"five", []int{50, 10, 30, 20, 40}, []stack.Op{stack.RA, stack.RA, stack.SA, stack.RRA}},
		{"pair", []int{9, -9}, []stack.Op{stack.SA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := set.Ascending.Lookup(rank.Normalize(tt.values))
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup(%v) mismatch (-want +got):\n%s", tt.values, diff)
			}
		})
	}
}

// shortest computes the length of a shortest sa/ra/rra sequence from
// pattern to goal by breadth-first search.
func shortest(pattern []int, goal Goal) int {
	start := rank.Key(pattern)
	dist := map[string]int{start: 0}
	queue := [][]int{pattern}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if goal.reached(cur) {
			return dist[rank.Key(cur)]
		}
		for _, op := range []stack.Op{stack.SA, stack.RA, stack.RRA} {
			m := stack.New(cur)
			_ = m.Execute(op)
			next := m.A().Values()
			key := rank.Key(next)
			if _, seen := dist[key]; seen {
				continue
			}
			dist[key] = dist[rank.Key(cur)] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestDefault_EntriesAreShortest(t *testing.T) {
	set := loadDefault(t)

	for _, tbl := range []*Table{set.Ascending, set.Cyclic} {
		for key, ops := range tbl.entries {
			pattern, err := rank.ParseKey(key)
			if err != nil {
				t.Fatalf("ParseKey(%q): %v", key, err)
			}
			if want := shortest(pattern, tbl.Goal()); len(ops) != want {
				t.Errorf("%s %q: %d ops, shortest is %d", tbl.Goal(), key, len(ops), want)
			}
		}
	}
}

func TestCyclic_KeyedByRotatedPattern(t *testing.T) {
	set := loadDefault(t)

	values := []int{40, 50, 10, 30, 20}
	ops, err := set.Cyclic.Lookup(rank.Rotated(values))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	m := stack.New(values)
	if err := m.ExecuteAll(ops); err != nil {
		t.Fatalf("ExecuteAll() error = %v", err)
	}
	if !rank.IsCyclic(rank.Normalize(m.A().Values())) {
		t.Errorf("A = %v is not in cyclic order", m.A().Values())
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	set := loadDefault(t)
	p := []int{2, 1, 0}

	first, _ := set.Ascending.Lookup(p)
	first[0] = stack.PB

	second, _ := set.Ascending.Lookup(p)
	if second[0] == stack.PB {
		t.Error("Lookup returned shared storage")
	}
}

func TestLookup_Unknown(t *testing.T) {
	set := loadDefault(t)

	for _, p := range [][]int{{0}, {0, 1, 2, 3, 4, 5}, {1, 0, 2}} {
		tbl := set.Ascending
		if len(p) == 3 {
			tbl = set.Cyclic
		}
		if _, err := tbl.Lookup(p); !errors.Is(err, ErrPatternNotFound) {
			t.Errorf("Lookup(%v) expected ErrPatternNotFound, got %v", p, err)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	full := string(tablesYAML)

	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing entry",
			doc:     strings.Replace(full, "  \"1 0\": [sa]\n", "", 1),
			wantErr: ErrIncompleteTable,
		},
		{
			name:    "wrong sequence",
			doc:     strings.Replace(full, "  \"1 0\": [sa]\n", "  \"1 0\": [ra, ra]\n", 1),
			wantMsg: "does not reach",
		},
		{
			name:    "forbidden operation",
			doc:     strings.Replace(full, "  \"1 0\": [sa]\n", "  \"1 0\": [pb, pa, sa]\n", 1),
			wantMsg: "not allowed",
		},
		{
			name:    "unknown symbol",
			doc:     strings.Replace(full, "  \"1 0\": [sa]\n", "  \"1 0\": [swap]\n", 1),
			wantErr: stack.ErrUnknownOperation,
		},
		{
			name:    "foreign pattern",
			doc:     full + "  \"1 0 2\": [sa]\n",
			wantMsg: "unexpected pattern",
		},
		{
			name:    "not yaml",
			doc:     "ascending: [",
			wantMsg: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPermutations(t *testing.T) {
	if got := len(Permutations(5)); got != 120 {
		t.Errorf("len(Permutations(5)) = %d, want 120", got)
	}
	want := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	if diff := cmp.Diff(want, Permutations(3)); diff != "" {
		t.Errorf("Permutations(3) mismatch (-want +got):\n%s", diff)
	}
}
