// Package bellmanford implements a step-wise Bellman-Ford relaxation over a
// grid.Grid.
//
// What
//
//   - All costs start at +∞ except the start (0).
//   - A pass sweeps every cell with a finite cost, in the order the cells
//     were first reached, and relaxes the moves out of it. Cells reached
//     during a pass are swept in that same pass.
//   - One Step relaxes one cell. Passes repeat until one makes no update or
//     V-1 passes have run (V = Grid.CellCount()).
//   - The goal is decided after the last pass: Found if its cost is finite.
//   - Visited lists each cell the first time it is swept.
//
// Edge mode
//
//	WithEdges replaces the grid moves with an explicit weighted edge list.
//	Edges whose endpoints are out of bounds or blocked are ignored. Negative
//	weights are allowed; if a V-th pass still improves a cost, the run ends
//	Exhausted and NegativeCycle reports true. Paths found in edge mode follow
//	the edges, not the direction set.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; on unit-cost grids a sweep in discovery
//     order converges in about two passes.
//   - Space: O(V).
package bellmanford
