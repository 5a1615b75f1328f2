package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Option configures a strategy via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Apply.
type Option func(*Options)

// Options holds the settings every strategy understands.
type Options struct {
	// OnEnqueue is called whenever a cell is inserted into the frontier,
	// with the priority it was inserted at (depth for BFS/DFS).
	OnEnqueue func(c grid.Coord, priority float64)

	// OnDequeue is called when a cell leaves the frontier, stale entries
	// included.
	OnDequeue func(c grid.Coord)

	// Heuristic overrides the default estimate. The caller vouches for its
	// admissibility.
	Heuristic Heuristic

	// Strict selects the admissible heuristic for diagonal direction sets.
	Strict bool

	err error
}

// DefaultOptions returns no-op hooks, no custom heuristic and the
// Manhattan (non-strict) heuristic mode.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Coord, float64) {},
		OnDequeue: func(grid.Coord) {},
	}
}

// Apply builds Options from opts and returns the first recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// WithOnEnqueue registers a callback to run on every frontier insertion.
func WithOnEnqueue(fn func(c grid.Coord, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on every frontier removal.
func WithOnDequeue(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithHeuristic replaces the default heuristic. A nil h is a violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithStrictHeuristic selects the admissible heuristic max(L∞, ceil(L1/k)).
func WithStrictHeuristic() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// Resolve picks the heuristic for dirs and reports whether it is admissible.
//
//	custom heuristic      → custom, true
//	strict                → Strict(dirs.MaxStep()), true
//	no diagonal moves     → Manhattan, true
//	diagonal moves        → Manhattan, false
func (o Options) Resolve(dirs grid.Directions) (Heuristic, bool) {
	switch {
	case o.Heuristic != nil:
		return o.Heuristic, true
	case o.Strict:
		return StrictFor(dirs), true
	default:
		return Manhattan, !dirs.HasDiagonal()
	}
}
