// Package grid defines coordinates, obstacle sets, direction sets
// and sentinel errors for the lattice model.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for grid construction and validation.
var (
	// ErrBadSize indicates a non-positive grid side length.
	ErrBadSize = errors.New("grid: size must be positive")
	// ErrBadDims indicates an unsupported number of dimensions.
	ErrBadDims = errors.New("grid: dimensions must be 2 or 3")
	// ErrBadDirections indicates an unusable direction set.
	ErrBadDirections = errors.New("grid: invalid direction set")
	// ErrBadCoord indicates a coordinate that cannot be decoded.
	ErrBadCoord = errors.New("grid: coordinate must have 2 or 3 components")
)

// Coord is a lattice coordinate of arity 2 or 3.
// For 2D coordinates Z is always zero. Two coordinates are equal only if
// they have the same arity and components, so Coord is safe as a map key.
type Coord struct {
	X, Y, Z int
	dims    uint8
}

// XY returns a 2D coordinate.
func XY(x, y int) Coord { return Coord{X: x, Y: y, dims: 2} }

// XYZ returns a 3D coordinate.
func XYZ(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z, dims: 3} }

// Of builds a coordinate from a component slice of length 2 or 3.
func Of(components []int) (Coord, error) {
	switch len(components) {
	case 2:
		return XY(components[0], components[1]), nil
	case 3:
		return XYZ(components[0], components[1], components[2]), nil
	default:
		return Coord{}, fmt.Errorf("%w: got %d", ErrBadCoord, len(components))
	}
}

// Dims returns the arity of c (2 or 3), or 0 for the zero Coord.
func (c Coord) Dims() int { return int(c.dims) }

// Components returns c as a slice of length Dims().
func (c Coord) Components() []int {
	if c.dims == 3 {
		return []int{c.X, c.Y, c.Z}
	}
	return []int{c.X, c.Y}
}

// Add returns c+d, keeping the arity of c.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z, dims: c.dims}
}

// Sub returns c-d, keeping the arity of c.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y, Z: c.Z - d.Z, dims: c.dims}
}

// Manhattan returns the L1 distance between c and d.
func (c Coord) Manhattan(d Coord) int {
	return abs(c.X-d.X) + abs(c.Y-d.Y) + abs(c.Z-d.Z)
}

// Chebyshev returns the L∞ distance between c and d.
func (c Coord) Chebyshev(d Coord) int {
	return max(abs(c.X-d.X), abs(c.Y-d.Y), abs(c.Z-d.Z))
}

// String formats c as "(x,y)" or "(x,y,z)".
func (c Coord) String() string {
	if c.dims == 3 {
		return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// MarshalJSON encodes c as [x,y] or [x,y,z].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Components())
}

// UnmarshalJSON decodes [x,y] or [x,y,z].
func (c *Coord) UnmarshalJSON(b []byte) error {
	var comps []int
	if err := json.Unmarshal(b, &comps); err != nil {
		return err
	}
	v, err := Of(comps)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// less orders coordinates by Z, then Y, then X.
func less(a, b Coord) int {
	if a.Z != b.Z {
		return a.Z - b.Z
	}
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ObstacleSet is a growable set of blocked coordinates.
// It never shrinks: a running search may see it grow between steps,
// never lose members.
type ObstacleSet struct {
	cells map[Coord]struct{}
}

// NewObstacleSet returns a set holding the given cells.
func NewObstacleSet(cells ...Coord) *ObstacleSet {
	s := &ObstacleSet{cells: make(map[Coord]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s *ObstacleSet) Add(c Coord) bool {
	if s.cells == nil {
		s.cells = make(map[Coord]struct{})
	}
	if _, ok := s.cells[c]; ok {
		return false
	}
	s.cells[c] = struct{}{}
	return true
}

// Has reports whether c is blocked. A nil set blocks nothing.
func (s *ObstacleSet) Has(c Coord) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of blocked cells.
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Slice returns the blocked cells ordered by Z, Y, X.
func (s *ObstacleSet) Slice() []Coord {
	if s == nil {
		return nil
	}
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, less)
	return out
}

// Clone returns an independent copy of s.
func (s *ObstacleSet) Clone() *ObstacleSet {
	c := &ObstacleSet{cells: make(map[Coord]struct{}, s.Len())}
	if s != nil {
		for k := range s.cells {
			c.cells[k] = struct{}{}
		}
	}
	return c
}
