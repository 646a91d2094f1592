package engine

// SolveRequest represents a request to sort a set of values.
type SolveRequest struct {
	// Values are the distinct integers on stack A, top first
	Values []int

	// Budget is the generation budget: how many branch points a search path
	// may pass before it falls back to greedy choices (0 = pure greedy).
	// Each phase is searched on its own, so a phase is never longer than its
	// greedy run from the same start, but the whole solution can be: the
	// A to B phase may leave B in an order the B to A phase handles worse.
	Budget int

	// MaxBranches caps the tied moves explored at one branch point
	// (0 = explore every tie)
	MaxBranches int
}
