package stepper_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/dstarlite"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/injector"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

func problem(t *testing.T, size int, start, goal grid.Coord, dirs grid.Directions, obs ...grid.Coord) search.Problem {
	t.Helper()
	g, err := grid.New(size, start.Dims(), grid.NewObstacleSet(obs...))
	require.NoError(t, err)
	return search.Problem{Start: start, Goal: goal, Grid: g, Directions: dirs}
}

func TestRun_Found(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	var published []grid.Coord
	steps := 0
	sp, err := stepper.New(bfs.New(), p, stepper.WithOnStep(func(u stepper.Update) {
		steps++
		assert.Equal(t, steps, u.Step)
		published = append(published, u.Visited...)
	}))
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepper.Found, res.Outcome)
	assert.Equal(t, "bfs", res.Strategy)
	assert.Len(t, res.Path, 19)
	assert.NoError(t, search.CheckPath(p.Grid, res.Path, grid.Axis2D))
	assert.Equal(t, res.Steps, res.VisitedCount)
	assert.Equal(t, res.Visited, published)
	assert.Equal(t, steps, res.Steps)
	assert.True(t, res.Admissible)
	assert.False(t, res.Stale)
	assert.Empty(t, res.Injected)
	assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
	assert.True(t, sp.Done())
}

func TestRun_NotFound(t *testing.T) {
	goal := grid.XY(3, 3)
	var ring []grid.Coord
	for _, d := range grid.Diagonal2D {
		ring = append(ring, goal.Add(d))
	}
	p := problem(t, 6, grid.XY(0, 0), goal, grid.Diagonal2D, ring...)
	sp, err := stepper.New(dijkstra.New(), p)
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepper.NotFound, res.Outcome)
	assert.Empty(t, res.Path)
	assert.Equal(t, 36-9, res.VisitedCount)
}

func TestRun_StartIsGoal(t *testing.T) {
	p := problem(t, 4, grid.XY(2, 2), grid.XY(2, 2), grid.Axis2D)
	sp, err := stepper.New(bfs.New(), p)
	require.NoError(t, err)
	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepper.Found, res.Outcome)
	assert.Equal(t, []grid.Coord{grid.XY(2, 2)}, res.Path)
	assert.Equal(t, 1, res.Steps)
}

func TestNew_Errors(t *testing.T) {
	p := problem(t, 4, grid.XY(0, 0), grid.XY(3, 3), grid.Axis2D)

	_, err := stepper.New(nil, p)
	assert.ErrorIs(t, err, stepper.ErrNilStrategy)

	bad := p
	bad.Goal = grid.XY(4, 0)
	_, err = stepper.New(bfs.New(), bad)
	assert.ErrorIs(t, err, search.ErrInvalidRequest)
	assert.ErrorIs(t, err, search.ErrOutOfBounds)

	for _, opt := range []stepper.Option{
		stepper.WithDelay(-time.Second),
		stepper.WithMaxSteps(-1),
		stepper.WithLogger(nil),
	} {
		_, err = stepper.New(bfs.New(), p, opt)
		assert.ErrorIs(t, err, stepper.ErrOptionViolation)
	}
}

// TestCancel_FromHook stops the run from inside OnStep; the partial visited
// list survives and no path is produced.
func TestCancel_FromHook(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	var sp *stepper.Stepper
	sp, err := stepper.New(bfs.New(), p, stepper.WithOnStep(func(u stepper.Update) {
		if u.Step == 3 {
			sp.Cancel()
		}
	}))
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepper.Cancelled, res.Outcome)
	assert.Equal(t, 3, res.Steps)
	assert.Len(t, res.Visited, 3)
	assert.Empty(t, res.Path)

	// terminal state is sticky
	done, err := sp.Next()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, 3, sp.Result().Steps)
}

// TestCancel_DuringDelay cancels from another goroutine while Run sleeps.
func TestCancel_DuringDelay(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	first := make(chan struct{})
	sp, err := stepper.New(bfs.New(), p,
		stepper.WithDelay(time.Hour),
		stepper.WithOnStep(func(u stepper.Update) {
			if u.Step == 1 {
				close(first)
			}
		}),
	)
	require.NoError(t, err)

	out := make(chan stepper.Result, 1)
	go func() {
		res, _ := sp.Run(context.Background())
		out <- res
	}()
	<-first
	sp.Cancel()
	sp.Cancel() // idempotent

	select {
	case res := <-out:
		assert.Equal(t, stepper.Cancelled, res.Outcome)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, []grid.Coord{grid.XY(0, 0)}, res.Visited)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Cancel")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	sp, err := stepper.New(bfs.New(), p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := sp.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, stepper.Cancelled, res.Outcome)
	assert.Equal(t, 0, res.Steps)
	assert.Empty(t, res.Visited)
}

func TestRun_StepLimit(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	sp, err := stepper.New(bfs.New(), p, stepper.WithMaxSteps(5))
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	assert.ErrorIs(t, err, stepper.ErrStepLimit)
	assert.Equal(t, stepper.NotFound, res.Outcome)
	assert.Equal(t, 5, res.Steps)
}

// TestNext_Manual drives the run by hand, the way an interactive client does.
func TestNext_Manual(t *testing.T) {
	p := problem(t, 3, grid.XY(0, 0), grid.XY(2, 0), grid.Axis2D)
	sp, err := stepper.New(bfs.New(), p)
	require.NoError(t, err)
	assert.Equal(t, stepper.Running, sp.Result().Outcome)

	n := 0
	for {
		done, err := sp.Next()
		require.NoError(t, err)
		n++
		if done {
			break
		}
	}
	res := sp.Result()
	assert.Equal(t, stepper.Found, res.Outcome)
	assert.Equal(t, n, res.Steps)
	assert.Equal(t, []grid.Coord{grid.XY(0, 0), grid.XY(1, 0), grid.XY(2, 0)}, res.Path)
}

func TestInjector_NeverBlocksEndpoints(t *testing.T) {
	start, goal := grid.XY(0, 0), grid.XY(11, 11)
	p := problem(t, 12, start, goal, grid.Axis2D)
	in, err := injector.New(injector.WithProbability(1), injector.WithSeed(3))
	require.NoError(t, err)

	var perStep []grid.Coord
	sp, err := stepper.New(dstarlite.New(), p,
		stepper.WithInjector(in),
		stepper.WithMaxSteps(10_000),
		stepper.WithOnStep(func(u stepper.Update) { perStep = append(perStep, u.Injected...) }),
	)
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []stepper.Outcome{stepper.Found, stepper.NotFound}, res.Outcome)
	require.NotEmpty(t, res.Injected)
	assert.Equal(t, res.Injected, perStep)
	assert.NotContains(t, res.Injected, start)
	assert.NotContains(t, res.Injected, goal)
	for _, c := range res.Injected {
		assert.True(t, p.Grid.IsObstacle(c))
	}
}

// TestInjector_Reproducible: the same seed and strategy give identical runs.
func TestInjector_Reproducible(t *testing.T) {
	run := func() stepper.Result {
		p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
		in, err := injector.New(injector.WithProbability(0.2), injector.WithSeed(99))
		require.NoError(t, err)
		sp, err := stepper.New(bfs.New(), p, stepper.WithInjector(in))
		require.NoError(t, err)
		res, err := sp.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Outcome, b.Outcome)
	assert.Equal(t, a.Visited, b.Visited)
	assert.Equal(t, a.Injected, b.Injected)
	assert.Equal(t, a.Path, b.Path)
	assert.NotEmpty(t, a.Injected)
}

func TestLogger_DebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := problem(t, 3, grid.XY(0, 0), grid.XY(2, 2), grid.Axis2D)
	sp, err := stepper.New(bfs.New(), p, stepper.WithLogger(logger))
	require.NoError(t, err)
	_, err = sp.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "outcome=found")
	assert.Contains(t, out, "strategy=bfs")
}

func TestOutcome_String(t *testing.T) {
	names := []string{}
	for _, o := range []stepper.Outcome{stepper.Running, stepper.Found, stepper.NotFound, stepper.Cancelled, 42} {
		names = append(names, o.String())
	}
	assert.True(t, slices.Equal([]string{"running", "found", "not_found", "cancelled", "unknown"}, names))
}

// TestStale_ObstacleOnExpandedCell blocks a cell right after BFS expanded it;
// the path still runs through it and the result is flagged.
func TestStale_ObstacleOnExpandedCell(t *testing.T) {
	p := problem(t, 3, grid.XY(0, 0), grid.XY(2, 0), grid.Axis2D)
	blocked := grid.XY(1, 0)
	sp, err := stepper.New(bfs.New(), p, stepper.WithOnStep(func(u stepper.Update) {
		if slices.Contains(u.Visited, blocked) {
			p.Grid.Obstacles.Add(blocked)
		}
	}))
	require.NoError(t, err)

	res, err := sp.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, stepper.Found, res.Outcome)
	assert.Equal(t, []grid.Coord{grid.XY(0, 0), blocked, grid.XY(2, 0)}, res.Path)
	assert.True(t, res.Stale)
	assert.ErrorIs(t, search.CheckPath(p.Grid, res.Path, grid.Axis2D), search.ErrBrokenPath)
}

// TestStale_InjectedUnderStaticStrategy runs BFS with a seeded injector; a
// strategy that cannot replan returns paths through injected cells, and
// Stale reports exactly those.
func TestStale_InjectedUnderStaticStrategy(t *testing.T) {
	stale := 0
	for seed := int64(1); seed <= 40; seed++ {
		p := problem(t, 8, grid.XY(0, 0), grid.XY(7, 7), grid.Axis2D)
		in, err := injector.New(injector.WithProbability(0.5), injector.WithSeed(seed))
		require.NoError(t, err)
		sp, err := stepper.New(bfs.New(), p, stepper.WithInjector(in))
		require.NoError(t, err)
		res, err := sp.Run(context.Background())
		require.NoError(t, err)
		if res.Outcome != stepper.Found {
			continue
		}

		checkErr := search.CheckPath(p.Grid, res.Path, grid.Axis2D)
		assert.Equal(t, checkErr != nil, res.Stale, "seed %d", seed)
		if !res.Stale {
			continue
		}
		stale++
		assert.ErrorIs(t, checkErr, search.ErrBrokenPath)
		crossed := slices.ContainsFunc(res.Path, func(c grid.Coord) bool {
			return slices.Contains(res.Injected, c)
		})
		assert.True(t, crossed, "seed %d: stale path avoids every injected cell", seed)
	}
	assert.Positive(t, stale)
}
