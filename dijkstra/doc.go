// Package dijkstra implements Dijkstra's shortest-path algorithm as a
// step-wise search over a grid.Grid.
//
// Every move costs 1, so Dijkstra expands cells in the same layers as BFS;
// it exists as the uninformed member of the priority-queue family and as the
// baseline A* is compared against.
//
// Complexity:
//
//   - Time:  O(V·D log V), V = open cells, D = |directions|.
//   - Each cell is closed at most once: V extractions.
//   - Each relaxation may push a new entry: up to V·D pushes.
//   - Space: O(V·D) worst case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries (already closed) when they are popped.
//   - We relax only on strict improvement (g(u)+1 < g(v)), so the first
//     predecessor to reach the best cost keeps it.
//   - Equal distances pop in insertion order (frontier.PriorityQueue), which
//     makes the visited sequence reproducible.
package dijkstra
