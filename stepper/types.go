package stepper

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/injector"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stepper: invalid option supplied")

	// ErrNilStrategy is returned by New when no strategy is given.
	ErrNilStrategy = errors.New("stepper: strategy is nil")

	// ErrStepLimit is returned when a run exceeds WithMaxSteps.
	ErrStepLimit = errors.New("stepper: step limit exceeded")
)

// Outcome is how a run ended.
type Outcome int

const (
	// Running means the run has not ended yet.
	Running Outcome = iota
	// Found means a path from start to goal was produced.
	Found
	// NotFound means the search space was exhausted.
	NotFound
	// Cancelled means the run was stopped before it ended on its own.
	Cancelled
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Update describes one completed step.
type Update struct {
	// Step is the 1-based step number.
	Step int
	// Visited holds the cells that left the frontier during this step.
	Visited []grid.Coord
	// Injected is the obstacle inserted after this step, if any.
	Injected []grid.Coord
	// Status is the strategy's status after the step.
	Status search.Status
}

// Result summarizes a run.
type Result struct {
	Strategy     string
	Outcome      Outcome
	Path         []grid.Coord
	Visited      []grid.Coord
	VisitedCount int
	Steps        int
	Elapsed      time.Duration
	Injected     []grid.Coord
	// Admissible is false when the heuristic may overestimate, so Path may
	// be longer than the shortest one.
	Admissible bool
	// Stale is true when Path crosses an obstacle added to the grid after
	// the strategy had already expanded the cell.
	Stale bool
}

// Options configures a Stepper.
type Options struct {
	Delay    time.Duration
	MaxSteps int
	Injector *injector.Injector
	OnStep   func(Update)
	Logger   *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no delay, no step limit, no injector and the
// default slog logger.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithDelay sets the pause Run takes after each step. Negative is invalid.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Delay = d
	}
}

// WithMaxSteps caps the number of steps; 0 means no cap. Negative is invalid.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSteps = n
	}
}

// WithInjector enables dynamic obstacles. Nil disables them.
func WithInjector(in *injector.Injector) Option {
	return func(o *Options) { o.Injector = in }
}

// WithOnStep registers a hook called after every step, on the stepping
// goroutine. The hook must not modify the Update slices.
func WithOnStep(fn func(Update)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithLogger sets the logger. Nil is invalid.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Logger = l
	}
}
