// Package table holds the small-case lookup tables.
//
// The tables are data, not code: tables.yaml is embedded into the binary and
// decoded once per process. Decoding validates completeness (every required
// permutation pattern present) and correctness (each sequence reaches the
// table's goal when replayed on its pattern), so a damaged table fails at
// load instead of producing a wrong answer later.
package table

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/pushswap/internal/rank"
	"github.com/danieljhkim/pushswap/internal/stack"
)

// Pattern lengths covered by the tables.
const (
	MinSize = 2
	MaxSize = 5
)

//go:embed tables.yaml
var tablesYAML []byte

// Goal is the state a table entry leads to.
type Goal int

const (
	// Ascending means A is fully ascending from top to bottom.
	Ascending Goal = iota
	// Cyclic means A is ascending up to a rotation.
	Cyclic
)

func (g Goal) String() string {
	switch g {
	case Ascending:
		return "ascending"
	case Cyclic:
		return "cyclic"
	default:
		return "unknown"
	}
}

// reached reports whether pattern satisfies the goal.
func (g Goal) reached(pattern []int) bool {
	if g == Cyclic {
		return rank.IsCyclic(pattern)
	}
	return rank.IsAscending(pattern)
}

// required reports whether pattern must have an entry in a table with this goal.
func (g Goal) required(pattern []int) bool {
	if len(pattern) < MinSize || len(pattern) > MaxSize {
		return false
	}
	return g == Ascending || pattern[0] == 0
}

// allowed lists the operations a table entry may use.
var allowed = map[stack.Op]bool{stack.SA: true, stack.RA: true, stack.RRA: true}

// Table maps rank patterns to operation sequences.
type Table struct {
	goal    Goal
	entries map[string][]stack.Op
}

// Set is the pair of tables used by the solver.
type Set struct {
	// Ascending sorts inputs of MinSize..MaxSize values completely.
	Ascending *Table

	// Cyclic orders the values left on A after the first phase; it is keyed
	// by rank.Rotated patterns.
	Cyclic *Table
}

type document struct {
	Ascending map[string][]string `yaml:"ascending"`
	Cyclic    map[string][]string `yaml:"cyclic"`
}

// Default returns the embedded tables, decoded and validated once.
var Default = sync.OnceValues(func() (*Set, error) {
	return Parse(tablesYAML)
})

// Parse decodes and validates a YAML table document.
func Parse(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}

	asc, err := build(Ascending, doc.Ascending)
	if err != nil {
		return nil, err
	}
	cyc, err := build(Cyclic, doc.Cyclic)
	if err != nil {
		return nil, err
	}
	return &Set{Ascending: asc, Cyclic: cyc}, nil
}

func build(goal Goal, raw map[string][]string) (*Table, error) {
	t := &Table{goal: goal, entries: make(map[string][]stack.Op, len(raw))}

	for key, symbols := range raw {
		pattern, err := rank.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("%s table: %w", goal, err)
		}
		if !goal.required(pattern) {
			return nil, fmt.Errorf("%s table: unexpected pattern %q", goal, key)
		}
		ops, err := stack.ParseOps(symbols)
		if err != nil {
			return nil, fmt.Errorf("%s table, pattern %q: %w", goal, key, err)
		}
		if err := check(goal, pattern, ops); err != nil {
			return nil, fmt.Errorf("%s table, pattern %q: %w", goal, key, err)
		}
		t.entries[rank.Key(pattern)] = ops
	}

	var missing []string
	for n := MinSize; n <= MaxSize; n++ {
		for _, p := range Permutations(n) {
			if !goal.required(p) {
				continue
			}
			if _, ok := t.entries[rank.Key(p)]; !ok {
				missing = append(missing, rank.Key(p))
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s table lacks %d patterns (first %q)", ErrIncompleteTable, goal, len(missing), missing[0])
	}

	return t, nil
}

// check replays ops on pattern and verifies the goal is reached.
func check(goal Goal, pattern []int, ops []stack.Op) error {
	m := stack.New(pattern)
	for _, op := range ops {
		if !allowed[op] {
			return fmt.Errorf("operation %s not allowed in small-case tables", op)
		}
		if err := m.Execute(op); err != nil {
			return err
		}
	}
	if !goal.reached(m.A().Values()) {
		return fmt.Errorf("sequence does not reach %s order", goal)
	}
	return nil
}

// Goal returns the goal the table's sequences reach.
func (t *Table) Goal() Goal {
	return t.goal
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the sequence for pattern. The returned slice is a copy.
func (t *Table) Lookup(pattern []int) ([]stack.Op, error) {
	key := rank.Key(pattern)
	ops, ok := t.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s table has no entry for %q", ErrPatternNotFound, t.goal, key)
	}
	return append([]stack.Op{}, ops...), nil
}

// Permutations returns every permutation of 0..n-1 in lexicographic order.
func Permutations(n int) [][]int {
	var out [][]int
	used := make([]bool, n)
	cur := make([]int, 0, n)
	var walk func()
	walk = func() {
		if len(cur) == n {
			out = append(out, append([]int{}, cur...))
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			walk()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	walk()
	return out
}
