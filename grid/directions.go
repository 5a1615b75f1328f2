package grid

import (
	"fmt"
	"strings"
)

// Directions is an ordered set of unit moves. Order matters: strategies
// expand neighbors in this order, which fixes tie-breaking between
// equally good neighbors.
type Directions []Coord

// Axis2D moves along one axis at a time: N, E, S, W.
var Axis2D = Directions{XY(0, 1), XY(1, 0), XY(0, -1), XY(-1, 0)}

// Diagonal2D adds the four diagonals after the axis moves.
var Diagonal2D = Directions{
	XY(0, 1), XY(1, 0), XY(0, -1), XY(-1, 0),
	XY(1, 1), XY(-1, -1), XY(1, -1), XY(-1, 1),
}

// Axis3D moves along one axis at a time in 3D.
var Axis3D = Directions{
	XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, -1, 0),
	XYZ(-1, 0, 0), XYZ(0, 0, 1), XYZ(0, 0, -1),
}

// Mixed3D is the 12-vector 3D set: the six axis moves plus six planar diagonals.
// It is not symmetric: (1,1,0) is absent while (1,-1,0) is present.
var Mixed3D = Directions{
	XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, -1, 0), XYZ(-1, 0, 0),
	XYZ(0, 0, 1), XYZ(0, 0, -1),
	XYZ(1, -1, 0), XYZ(-1, 1, 0), XYZ(1, 0, 1),
	XYZ(-1, 0, -1), XYZ(0, 1, -1), XYZ(0, -1, 1),
}

// AxisDirections returns the axis-aligned set for dims (Axis2D or Axis3D).
func AxisDirections(dims int) Directions {
	if dims == 3 {
		return Axis3D.Clone()
	}
	return Axis2D.Clone()
}

// GoalBiased returns only the axis moves that reduce the Manhattan distance
// from start to goal: at most one move per axis, in X, Y, Z order.
// For start == goal the set is empty.
//
// The set cannot move away from the goal on any axis, so searches using it
// can miss paths that need a detour around obstacles.
func GoalBiased(start, goal Coord) Directions {
	d := goal.Sub(start)
	unit := func(x, y, z int) Coord {
		if start.Dims() == 3 {
			return XYZ(x, y, z)
		}
		return XY(x, y)
	}
	var out Directions
	if s := sign(d.X); s != 0 {
		out = append(out, unit(s, 0, 0))
	}
	if s := sign(d.Y); s != 0 {
		out = append(out, unit(0, s, 0))
	}
	if start.Dims() == 3 {
		if s := sign(d.Z); s != 0 {
			out = append(out, unit(0, 0, s))
		}
	}
	return out
}

// Clone returns a copy of ds.
func (ds Directions) Clone() Directions {
	return append(Directions(nil), ds...)
}

// Contains reports whether d is one of the moves.
func (ds Directions) Contains(d Coord) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// HasDiagonal reports whether any move changes more than one axis.
// With such moves the Manhattan distance overestimates the remaining cost.
func (ds Directions) HasDiagonal() bool {
	for _, d := range ds {
		if abs(d.X)+abs(d.Y)+abs(d.Z) > 1 {
			return true
		}
	}
	return false
}

// MaxStep returns the largest L1 length among the moves (0 for an empty set).
func (ds Directions) MaxStep() int {
	m := 0
	for _, d := range ds {
		m = max(m, abs(d.X)+abs(d.Y)+abs(d.Z))
	}
	return m
}

// Validate checks that ds is non-empty and every move is a non-zero unit
// step of the given arity.
func (ds Directions) Validate(dims int) error {
	if len(ds) == 0 {
		return fmt.Errorf("%w: empty", ErrBadDirections)
	}
	for i, d := range ds {
		if d.Dims() != dims {
			return fmt.Errorf("%w: move %d %v has arity %d, want %d", ErrBadDirections, i, d, d.Dims(), dims)
		}
		if d.X == 0 && d.Y == 0 && d.Z == 0 {
			return fmt.Errorf("%w: move %d is the zero vector", ErrBadDirections, i)
		}
		if abs(d.X) > 1 || abs(d.Y) > 1 || abs(d.Z) > 1 {
			return fmt.Errorf("%w: move %d %v is not a unit step", ErrBadDirections, i, d)
		}
	}
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ParseDirections resolves a preset name for the given arity:
//
//	"axis"      Axis2D or Axis3D
//	"diagonal"  Diagonal2D, or Mixed3D in 3D
//	"mixed"     Mixed3D (3D only)
func ParseDirections(name string, dims int) (Directions, error) {
	if dims != 2 && dims != 3 {
		return nil, ErrBadDims
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "axis":
		return AxisDirections(dims), nil
	case "diagonal", "diag":
		if dims == 3 {
			return Mixed3D.Clone(), nil
		}
		return Diagonal2D.Clone(), nil
	case "mixed":
		if dims == 3 {
			return Mixed3D.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown preset %q for %dD", ErrBadDirections, name, dims)
}
