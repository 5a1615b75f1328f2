// Package bfs provides step-wise breadth-first search over a grid.Grid.
//
// What
//
//   - Explores cells in non-decreasing move count from the start, using a
//     FIFO frontier.
//   - A cell is marked discovered when it is enqueued; the first discovery
//     fixes its predecessor and depth, later ones are ignored.
//   - The goal is tested when it is dequeued.
//   - Hooks from package search: OnEnqueue (priority is the depth) and
//     OnDequeue.
//
// Why
//
//   - Shortest paths in moves on unit-cost lattices without a heuristic.
//   - Baseline for cross-checking Dijkstra and A* path lengths.
//
// Determinism
//
//	Neighbors are expanded in direction-set order, so the visited sequence
//	and the returned path are fully reproducible.
//
// Complexity (V = open cells, D = |directions|)
//
//   - Time:   O(V·D)
//   - Memory: O(V)
//
// Usage
//
//	s := bfs.New()
//	path, status, err := search.Solve(s, search.Problem{
//	    Start: grid.XY(0, 0), Goal: grid.XY(9, 9), Grid: g, Directions: grid.Axis2D,
//	})
package bfs
