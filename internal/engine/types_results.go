package engine

import "github.com/danieljhkim/pushswap/internal/stack"

// SolveResult represents the outcome of a solve.
type SolveResult struct {
	// Ops is the operation sequence, in execution order
	Ops []stack.Op `json:"operations"`

	// Stats describes how the sequence was built
	Stats Stats `json:"stats"`
}

// Stats breaks a solution down by phase.
type Stats struct {
	// Size is the number of input values
	Size int `json:"size"`

	// SmallCase counts table operations: the whole solution for up to five
	// values, or the ordering of the five values left on A otherwise
	SmallCase int `json:"small_case"`

	// PushAB counts operations of the A to B phase
	PushAB int `json:"push_ab"`

	// PushBA counts operations of the B to A phase
	PushBA int `json:"push_ba"`

	// Align counts the final rotations
	Align int `json:"align"`

	// BranchPoints counts branch points the search explored
	BranchPoints int `json:"branch_points"`

	// Branches counts tied moves evaluated with lookahead
	Branches int `json:"branches"`
}

// Solution is a search result: the operations of a phase plus the
// generation budget left on the path that produced them.
type Solution struct {
	Ops    []stack.Op
	Budget int
}
