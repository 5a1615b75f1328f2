// Package hybrid is A* with a potential-field bias on the queue priority.
//
// For a cell n the bias is |attract − repulse|, where
//
//	attract = goal − n
//	repulse = Σ (n − o) / d²   over obstacles o with Euclidean d = |n − o| < radius
//
// The bias is added to f = g + h when n is queued; g is never touched, so the
// bias only reorders expansion, steering it away from cluttered areas. Paths
// are therefore valid but not guaranteed shortest, and State().Admissible is
// always false. Works for 2D and 3D grids alike.
package hybrid
