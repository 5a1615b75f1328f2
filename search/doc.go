// Package search defines the contract shared by every grid search strategy:
// the Problem a strategy is initialized with, the per-run State it owns,
// the Step/Status protocol a stepper drives, the heuristics, request
// validation and path reconstruction.
//
// What
//
//   - Strategy: Name, Init, Step, State. One Step performs exactly one
//     expansion (one frontier removal plus its neighbor relaxations).
//     The goal is tested when it leaves the frontier, never when it enters.
//   - Status: Continue, Found or Exhausted. After a terminal status Step
//     keeps returning that same status and does nothing else.
//   - State: g-costs, rhs (D*-Lite only), predecessors, closed set, the
//     visited sequence, the effective direction set and an Admissible flag.
//   - Replanner: optional interface for strategies that can repair their
//     state after an obstacle appears mid-run.
//
// Heuristics
//
//	Manhattan (L1) is the default. It overestimates when the direction set
//	has diagonal moves; in that case the strategy keeps it and reports
//	State.Admissible == false. WithStrictHeuristic switches to
//	max(L∞, ceil(L1/k)) with k the longest L1 move, which never overestimates.
//
// Errors
//
//   - ErrInvalidRequest wraps every validation failure together with one of
//     ErrNilGrid, ErrDimsMismatch, ErrOutOfBounds, ErrBlocked or
//     grid.ErrBadDirections.
//   - ErrOptionViolation for a bad Option.
//   - An exhausted frontier is a Status, not an error.
//
// Complexity of the helpers:
//
//   - Validate:    O(|directions|)
//   - Reconstruct: O(path length)
package search
