package stepper

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Stepper runs one search.
type Stepper struct {
	s    search.Strategy
	p    search.Problem
	opts Options

	cancelled atomic.Bool
	stop      chan struct{}
	stopOnce  sync.Once

	steps    int
	seen     int // len(State().Visited) already published
	injected []grid.Coord
	started  time.Time
	result   Result
}

// New validates opts, initializes s with p and returns a Stepper ready to
// run. Request errors wrap search.ErrInvalidRequest.
//
// Dynamic obstacles are added to p.Grid in place.
func New(s search.Strategy, p search.Problem, opts ...Option) (*Stepper, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := s.Init(p); err != nil {
		return nil, err
	}
	return &Stepper{
		s:      s,
		p:      p,
		opts:   o,
		stop:   make(chan struct{}),
		result: Result{Strategy: s.Name(), Outcome: Running},
	}, nil
}

// Cancel asks the run to stop before its next step. Safe from any goroutine
// and idempotent.
func (st *Stepper) Cancel() {
	st.cancelled.Store(true)
	st.stopOnce.Do(func() { close(st.stop) })
}

// Done reports whether the run has ended.
func (st *Stepper) Done() bool { return st.result.Outcome != Running }

// Result returns the run summary. Before the run ends only Strategy and
// Outcome (Running) are meaningful.
func (st *Stepper) Result() Result { return st.result }

// Next performs one iteration:
//
//  1. Stop with Cancelled if Cancel was called.
//  2. Stop with ErrStepLimit if the step cap is reached.
//  3. Advance the strategy by one Step.
//  4. Let the injector insert an obstacle and notify a search.Replanner.
//  5. Publish the Update through OnStep.
//  6. On Found build the path, on Exhausted finish NotFound.
//
// It reports whether the run has ended. Calling Next after the end is a
// no-op.
func (st *Stepper) Next() (bool, error) {
	if st.Done() {
		return true, nil
	}
	if st.started.IsZero() {
		st.started = time.Now()
	}

	// 1) cancellation
	if st.cancelled.Load() {
		st.finish(Cancelled)
		return true, nil
	}

	// 2) step cap
	if st.opts.MaxSteps > 0 && st.steps >= st.opts.MaxSteps {
		st.finish(NotFound)
		return true, fmt.Errorf("%w: %d steps", ErrStepLimit, st.opts.MaxSteps)
	}

	// 3) one expansion
	status := st.s.Step()
	st.steps++
	state := st.s.State()
	u := Update{Step: st.steps, Status: status}
	if state != nil {
		u.Visited = state.Visited[st.seen:]
		st.seen = len(state.Visited)
	}

	// 4) dynamic obstacles, only while the run continues
	if status == search.Continue && st.opts.Injector != nil {
		if c, ok := st.opts.Injector.MaybeInject(st.p.Grid, st.p.Start, st.p.Goal); ok {
			st.injected = append(st.injected, c)
			u.Injected = []grid.Coord{c}
			if r, ok := st.s.(search.Replanner); ok {
				r.ObstacleAdded(c)
			}
			st.opts.Logger.Debug("obstacle injected",
				slog.String("strategy", st.s.Name()),
				slog.String("cell", c.String()),
				slog.Int("step", st.steps),
			)
		}
	}

	// 5) publish
	if st.opts.OnStep != nil {
		st.opts.OnStep(u)
	}

	// 6) terminal handling
	switch status {
	case search.Found:
		st.finish(Found)
	case search.Exhausted:
		st.finish(NotFound)
	default:
		return false, nil
	}
	return true, nil
}

// Run steps until the run ends, ctx is done or Cancel is called, sleeping
// WithDelay between steps. Context cancellation ends the run as Cancelled;
// only ErrStepLimit is returned as an error.
func (st *Stepper) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer().Start(ctx, "stepper.Run",
		trace.WithAttributes(
			attribute.String("strategy", st.s.Name()),
			attribute.String("start", st.p.Start.String()),
			attribute.String("goal", st.p.Goal.String()),
			attribute.Int("grid_size", st.p.Grid.Size),
			attribute.Int("grid_dims", st.p.Grid.Dims),
		),
	)
	defer span.End()

	st.opts.Logger.DebugContext(ctx, "run started",
		slog.String("strategy", st.s.Name()),
		slog.String("start", st.p.Start.String()),
		slog.String("goal", st.p.Goal.String()),
	)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if ctx.Err() != nil {
			st.Cancel()
		}
		done, err := st.Next()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "step limit exceeded")
			st.opts.Logger.WarnContext(ctx, "run aborted",
				slog.String("strategy", st.s.Name()),
				slog.Int("steps", st.steps),
				slog.String("error", err.Error()),
			)
			return st.result, err
		}
		if done {
			break
		}
		if st.opts.Delay <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(st.opts.Delay)
		} else {
			timer.Reset(st.opts.Delay)
		}
		select {
		case <-timer.C:
		case <-ctx.Done():
		case <-st.stop:
		}
	}

	res := st.result
	span.SetAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("visited", res.VisitedCount),
		attribute.Int("steps", res.Steps),
		attribute.Int("path_len", len(res.Path)),
		attribute.Int("injected", len(res.Injected)),
	)
	span.SetStatus(codes.Ok, res.Outcome.String())
	return res, nil
}

// finish freezes the result and records metrics.
func (st *Stepper) finish(o Outcome) {
	state := st.s.State()
	res := Result{
		Strategy: st.s.Name(),
		Outcome:  o,
		Steps:    st.steps,
		Elapsed:  time.Since(st.started),
		Injected: slices.Clone(st.injected),
	}
	if state != nil {
		res.Visited = slices.Clone(state.Visited)
		res.VisitedCount = len(state.Visited)
		res.Admissible = state.Admissible
	}
	if o == Found && state != nil {
		res.Path = state.Path(st.p.Start, st.p.Goal)
		res.Stale = search.CheckPath(st.p.Grid, res.Path, state.Directions) != nil
	}
	st.result = res
	observe(res)

	st.opts.Logger.Debug("run finished",
		slog.String("strategy", res.Strategy),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("visited", res.VisitedCount),
		slog.Int("steps", res.Steps),
		slog.Int("path_len", len(res.Path)),
		slog.Int("injected", len(res.Injected)),
		slog.Duration("elapsed", res.Elapsed),
	)
}
