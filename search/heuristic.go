package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Coord) float64

// Manhattan is the L1 distance. Admissible only for axis-aligned moves.
func Manhattan(a, b grid.Coord) float64 {
	return float64(a.Manhattan(b))
}

// Chebyshev is the L∞ distance.
func Chebyshev(a, b grid.Coord) float64 {
	return float64(a.Chebyshev(b))
}

// Euclidean is the straight-line distance.
func Euclidean(a, b grid.Coord) float64 {
	d := a.Sub(b)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
}

// Strict returns max(L∞, ceil(L1/k)). With unit moves of L1 length at most k,
// a move lowers L∞ by at most 1 and L1 by at most k, so the estimate never
// exceeds the true number of moves.
func Strict(k int) Heuristic {
	if k < 1 {
		k = 1
	}
	return func(a, b grid.Coord) float64 {
		l1 := a.Manhattan(b)
		return float64(max(a.Chebyshev(b), (l1+k-1)/k))
	}
}

// StrictFor returns Strict(dirs.MaxStep()).
func StrictFor(dirs grid.Directions) Heuristic {
	return Strict(dirs.MaxStep())
}
