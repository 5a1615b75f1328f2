package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for request validation and option parsing.
var (
	// ErrInvalidRequest wraps every rejected Problem.
	ErrInvalidRequest = errors.New("search: invalid request")

	// ErrNilGrid is returned when the Problem carries no grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrDimsMismatch is returned when start or goal arity differs from the grid's.
	ErrDimsMismatch = errors.New("search: coordinate arity does not match grid")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: coordinate out of bounds")

	// ErrBlocked is returned when start or goal is an obstacle.
	ErrBlocked = errors.New("search: coordinate is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Inf is the cost of a cell that has not been reached.
var Inf = math.Inf(1)

// Status is the result of one Step.
type Status int

const (
	// Continue means the frontier is non-empty and the goal not yet reached.
	Continue Status = iota
	// Found means the goal was removed from the frontier.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the run.
func (s Status) Terminal() bool { return s == Found || s == Exhausted }

// Problem is one search request.
// Directions is the requested move set; strategies with a fixed or derived
// move set ignore it and report what they used in State.Directions.
type Problem struct {
	Start      grid.Coord
	Goal       grid.Coord
	Grid       *grid.Grid
	Directions grid.Directions
}

// Strategy is a step-wise search algorithm over a grid.
// A Strategy is owned by a single goroutine. Init resets all state, so one
// value can serve several sequential runs.
type Strategy interface {
	// Name returns the registry name, e.g. "astar".
	Name() string
	// Init validates p and allocates fresh per-run state.
	Init(p Problem) error
	// Step performs one expansion.
	Step() Status
	// State exposes the per-run state. Callers must not modify it.
	State() *State
}

// Replanner is implemented by strategies that repair their state when an
// obstacle appears during a run.
type Replanner interface {
	ObstacleAdded(c grid.Coord)
}

// State is the per-run bookkeeping of one strategy.
//
//   - Cost:   g-score per reached cell. Missing means +Inf.
//   - Aux:    rhs per cell, D*-Lite only (nil otherwise).
//   - Pred:   predecessor of each reached cell on its best-known path.
//   - Closed: cells that will not be expanded again (nil for D*-Lite).
//   - Visited: cells in the order they left the frontier.
//   - Directions: the move set actually used by the run.
//   - Admissible: false when the heuristic may overestimate, in which case
//     a returned path is not guaranteed shortest.
type State struct {
	Cost       map[grid.Coord]float64
	Aux        map[grid.Coord]float64
	Pred       map[grid.Coord]grid.Coord
	Closed     map[grid.Coord]bool
	Visited    []grid.Coord
	Directions grid.Directions
	Admissible bool
}

// NewState returns an empty State with a closed set, using dirs.
func NewState(dirs grid.Directions, capacity int) *State {
	return &State{
		Cost:       make(map[grid.Coord]float64, capacity),
		Pred:       make(map[grid.Coord]grid.Coord, capacity),
		Closed:     make(map[grid.Coord]bool, capacity),
		Visited:    make([]grid.Coord, 0, capacity),
		Directions: dirs,
		Admissible: true,
	}
}

// G returns the g-score of c, or Inf if c was never reached.
func (s *State) G(c grid.Coord) float64 {
	if v, ok := s.Cost[c]; ok {
		return v
	}
	return Inf
}

// Rhs returns the rhs value of c, or Inf if unset.
func (s *State) Rhs(c grid.Coord) float64 {
	if v, ok := s.Aux[c]; ok {
		return v
	}
	return Inf
}

// IsClosed reports whether c is in the closed set. Always false for
// strategies without one.
func (s *State) IsClosed(c grid.Coord) bool {
	return s.Closed[c]
}

// Path reconstructs the start→goal path from the predecessor map.
func (s *State) Path(start, goal grid.Coord) []grid.Coord {
	return Reconstruct(s.Pred, start, goal)
}
