// Package algorithms is the registry of search strategies: it maps the
// names used by commands and the visualization protocol to constructors.
//
// Registered names:
//
//   - "bfs"               breadth-first search
//   - "dfs"               depth-first search
//   - "dijkstra"          Dijkstra
//   - "astar"             A*
//   - "bellman-ford"      Bellman-Ford relaxation
//   - "dstar-lite"        D*-Lite, axis moves (replanning)
//   - "dstar-lite-biased" D*-Lite, goal-ward moves only (replanning, incomplete)
//   - "hybrid"            A* with potential-field bias
//
// A strategy is chosen once, when a run is constructed; there is no dynamic
// dispatch table beyond that.
package algorithms
