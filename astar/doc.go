// Package astar implements step-wise A* search over a grid.Grid.
//
// The frontier is a priority queue keyed by f = g + h (+ an optional bias,
// see NewWithBias). Cells are closed when popped and never reopened; stale
// entries are skipped (lazy decrease-key, as in package dijkstra).
//
// Heuristic
//
//	Manhattan (L1) by default. With a direction set containing diagonal
//	moves L1 overestimates, and State().Admissible is false: the returned
//	path is then not guaranteed shortest. search.WithStrictHeuristic selects
//	max(L∞, ceil(L1/k)), which is admissible for any unit direction set.
//
// Complexity:
//
//   - Time:  O(V·D log V) worst case, usually far fewer expansions than
//     Dijkstra on open grids.
//   - Space: O(V·D).
package astar
