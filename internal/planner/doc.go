// Package planner is the cost model of the solver.
//
// For a move phase (A to B, or B to A) the planner computes, for every value
// on the source stack, the cheapest operation sequence that brings the value
// to the top of the source, brings its insertion point to the top of the
// destination, and pushes it. Nothing is executed while planning; each
// candidate is returned as a Move that can later be applied to and reverted
// from a stack.Machine.
//
// Key responsibilities:
//   - Locate insertion points that keep the destination in cyclic order
//   - Pick the cheapest of the four rotation combinations, sharing rotations
//     as rr/rrr when both stacks turn the same way
//   - Emit deterministic operation sequences ending with the push
//   - Produce the final alignment rotation for stack A
package planner
