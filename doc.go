// Package gridpath is a step-wise pathfinding engine for 2D and 3D grids
// with obstacles.
//
// What is inside?
//
//	grid/         coordinates, obstacle sets, direction presets, the lattice
//	frontier/     stable priority queue, FIFO and LIFO frontiers
//	search/       the Strategy contract, shared options, heuristics,
//	              request validation and path reconstruction
//	bfs/, dfs/, dijkstra/, astar/, bellmanford/, dstarlite/, hybrid/
//	              one strategy per package, each advancing one expansion per Step
//	algorithms/   name → strategy registry
//	injector/     seeded random obstacles, up front or between steps
//	stepper/      drives a strategy with delay, cancellation, dynamic
//	              obstacles, metrics, tracing and logging
//	cmd/gridpath  command-line runner printing an ASCII map
//	cmd/pathviz   websocket server streaming live runs to a browser
//
// Quick start:
//
//	g, _ := grid.New(10, 2, grid.NewObstacleSet(grid.XY(4, 4)))
//	p := search.Problem{Start: grid.XY(0, 0), Goal: grid.XY(9, 9), Grid: g, Directions: grid.Diagonal2D}
//	s, _ := algorithms.New("astar", search.WithStrictHeuristic())
//	sp, _ := stepper.New(s, p, stepper.WithDelay(10*time.Millisecond))
//	res, _ := sp.Run(ctx)
//	fmt.Println(res.Outcome, len(res.Path))
//
// Every strategy is deterministic for a given grid and direction order;
// runs with dynamic obstacles are reproducible for a fixed injector seed.
package gridpath
