// Package dstarlite implements an incremental planner in the D*-Lite family
// over a grid.Grid: it keeps, per cell, a g-value and a one-step lookahead
// rhs, and can repair its state when obstacles appear mid-run.
//
// What
//
//   - rhs(start) = 0; for any other cell rhs = min over open predecessors
//     p of g(p)+1. A cell is consistent when g == rhs.
//   - Inconsistent cells sit in a priority queue keyed by
//     [min(g, rhs) + h, min(g, rhs)], compared lexicographically.
//     Step pops the lowest key (stale entries skipped):
//     overconsistent (g > rhs): g = rhs, then update every successor;
//     underconsistent (g < rhs): g = +∞, then update the cell and its
//     successors.
//   - A cell may be popped more than once, so State().Visited may repeat and
//     there is no closed set.
//   - The goal is Found when it is popped with a finite rhs below its g.
//     An underconsistent goal is first reset like any other cell.
//
// Variants
//
//   - New: axis moves only (4 in 2D, 6 in 3D); the requested direction set
//     is ignored.
//   - NewGoalBiased: only the axis moves that reduce the distance to the
//     goal. This variant is incomplete: it reports Exhausted whenever the
//     only routes need a detour away from the goal on some axis.
//
// Replanning
//
//	ObstacleAdded blocks a cell, resets its g and rhs and re-runs the rhs
//	update on its successors. Cells whose estimate depended on the blocked
//	cell become underconsistent and are repaired as they are popped. This is
//	a local repair, not the full D*-Lite key-modifier scheme.
package dstarlite
