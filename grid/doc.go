// Package grid models the bounded integer lattice that every search runs on.
//
// What:
//
//   - Coord is a small value type (X, Y, Z plus its arity) usable directly as a
//     map key, so cost and predecessor maps never serialize coordinates.
//   - Grid bounds a cube of side Size in 2 or 3 dimensions and owns the
//     ObstacleSet consulted before any neighbor is admitted to a frontier.
//   - Directions is the ordered move set; presets reproduce the classic
//     4/8-neighbour 2D sets and the 6/12-vector 3D sets, and GoalBiased builds
//     the reduced set used by the goal-biased D*-Lite variant.
//
// Why:
//
//   - One bounds/obstacle check shared by every strategy keeps the
//     "never admit an out-of-bounds or blocked cell" invariant in one place.
//   - Neighbors is a lazy iter.Seq: callers range over it once per expansion
//     and can stop early; it has no side effects and can be restarted.
//
// Complexity:
//
//   - InBounds, IsObstacle: O(1).
//   - Neighbors: O(|Directions|) per full iteration.
//
// Errors:
//
//   - ErrBadSize:       Size must be positive.
//   - ErrBadDims:       only 2 and 3 dimensions are supported.
//   - ErrBadDirections: empty set, zero vector, non-unit component or arity mismatch.
package grid
