// Package grid provides the bounded lattice used by every search strategy.
//
// Cells outside [0,Size) on any axis, and cells in the ObstacleSet, are never
// yielded by Neighbors.
package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Grid is a cube of side Size in Dims dimensions with a set of blocked cells.
// The obstacle set is shared by reference with whoever built the grid; a
// dynamic obstacle injector may grow it between two search steps.
type Grid struct {
	Size      int
	Dims      int
	Obstacles *ObstacleSet
}

// New constructs a Grid. A nil obstacle set is replaced by an empty one.
// Returns ErrBadSize for size <= 0 or a cell count that overflows int, and
// ErrBadDims for dims not in {2,3}.
func New(size, dims int, obstacles *ObstacleSet) (*Grid, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if dims != 2 && dims != 3 {
		return nil, ErrBadDims
	}
	cells := size
	for i := 1; i < dims; i++ {
		if cells > math.MaxInt/size {
			return nil, fmt.Errorf("%w: %d^%d cells overflow int", ErrBadSize, size, dims)
		}
		cells *= size
	}
	if obstacles == nil {
		obstacles = NewObstacleSet()
	}
	return &Grid{Size: size, Dims: dims, Obstacles: obstacles}, nil
}

// InBounds reports whether c has the grid's arity and lies within [0,Size)
// on every axis.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	if c.Dims() != g.Dims {
		return false
	}
	if c.X < 0 || c.X >= g.Size || c.Y < 0 || c.Y >= g.Size {
		return false
	}
	if g.Dims == 3 {
		return c.Z >= 0 && c.Z < g.Size
	}
	return true
}

// IsObstacle reports whether c is blocked.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Coord) bool {
	return g.Obstacles.Has(c)
}

// Open reports whether c is in bounds and not blocked.
func (g *Grid) Open(c Coord) bool {
	return g.InBounds(c) && !g.IsObstacle(c)
}

// CellCount returns Size^Dims, the number of lattice cells.
func (g *Grid) CellCount() int {
	n := g.Size * g.Size
	if g.Dims == 3 {
		n *= g.Size
	}
	return n
}

// Neighbors lazily yields c+d for each d in dirs, in order, skipping cells that
// are out of bounds, blocked, or for which skip returns true. skip may be nil.
// The sequence reads the obstacle set at iteration time and can be ranged
// over any number of times.
func (g *Grid) Neighbors(c Coord, dirs Directions, skip func(Coord) bool) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range dirs {
			n := c.Add(d)
			if !g.Open(n) {
				continue
			}
			if skip != nil && skip(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Cells yields every cell of the grid in Z, Y, X order.
func (g *Grid) Cells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		depth := 1
		if g.Dims == 3 {
			depth = g.Size
		}
		for z := 0; z < depth; z++ {
			for y := 0; y < g.Size; y++ {
				for x := 0; x < g.Size; x++ {
					c := XY(x, y)
					if g.Dims == 3 {
						c = XYZ(x, y, z)
					}
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}

// Render draws a 2D grid as text, one row per line with y growing downward:
// '#' obstacle, '.' free, and any cell present in marks drawn with its rune.
// 3D grids render one layer per z, separated by a blank line.
func (g *Grid) Render(marks map[Coord]rune) string {
	var b strings.Builder
	depth := 1
	if g.Dims == 3 {
		depth = g.Size
	}
	for z := 0; z < depth; z++ {
		if z > 0 {
			b.WriteByte('\n')
		}
		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				c := XY(x, y)
				if g.Dims == 3 {
					c = XYZ(x, y, z)
				}
				switch r, ok := marks[c]; {
				case ok:
					b.WriteRune(r)
				case g.IsObstacle(c):
					b.WriteByte('#')
				default:
					b.WriteByte('.')
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
