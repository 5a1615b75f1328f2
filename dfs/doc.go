// Package dfs implements step-wise depth-first search on a grid.Grid.
//
// What:
//
//   - LIFO frontier. Neighbors are pushed in reverse direction order, so the
//     first direction of the set is explored first.
//   - A cell may sit on the stack several times. The latest push overwrites
//     its predecessor; entries for cells closed in the meantime are skipped
//     when popped.
//   - The goal is tested when it is popped.
//
// Why:
//   - Cheap on memory along long corridors.
//   - Useful as a contrast to BFS: DFS finds *a* path, not a shortest one.
//
// Complexity:
//
//   - Time:   O(V·D), V = open cells, D = |directions|.
//   - Memory: O(V·D) stack entries in the worst case.
package dfs
