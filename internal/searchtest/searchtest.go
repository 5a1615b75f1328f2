// Package searchtest holds the behavior checks every search.Strategy must
// pass. Strategy packages call Run from their own tests.
package searchtest

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Factory builds a fresh strategy with the given options.
type Factory func(opts ...search.Option) search.Strategy

// Caps describes which guarantees a strategy gives.
type Caps struct {
	// ClosedSet: no cell is visited twice.
	ClosedSet bool
	// Shortest: the path has the minimum number of moves.
	Shortest bool
	// Complete: a path is found whenever one exists with the requested
	// directions.
	Complete bool
	// Deterministic: identical runs give identical visited order and path.
	Deterministic bool
}

// DefaultStepLimit bounds Drive so a broken strategy fails instead of hanging.
const DefaultStepLimit = 1 << 20

// Problem builds a 2D problem on a size×size grid with the given obstacles.
func Problem(t testing.TB, size int, start, goal grid.Coord, dirs grid.Directions, obstacles ...grid.Coord) search.Problem {
	t.Helper()
	g, err := grid.New(size, start.Dims(), grid.NewObstacleSet(obstacles...))
	require.NoError(t, err)
	return search.Problem{Start: start, Goal: goal, Grid: g, Directions: dirs}
}

// Drive initializes s with p and steps it until a terminal status.
func Drive(t testing.TB, s search.Strategy, p search.Problem) search.Status {
	t.Helper()
	require.NoError(t, s.Init(p))
	for i := 0; i < DefaultStepLimit; i++ {
		if st := s.Step(); st.Terminal() {
			return st
		}
	}
	t.Fatalf("%s: no terminal status after %d steps", s.Name(), DefaultStepLimit)
	return search.Exhausted
}

// Ring returns the cells surrounding c at Chebyshev distance 1 (2D).
func Ring(c grid.Coord) []grid.Coord {
	var out []grid.Coord
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				out = append(out, grid.XY(c.X+dx, c.Y+dy))
			}
		}
	}
	return out
}

// Run executes the shared checks against f.
func Run(t *testing.T, f Factory, caps Caps) {
	t.Run("FrontierSafety", func(t *testing.T) { frontierSafety(t, f) })
	t.Run("VisitedMonotonic", func(t *testing.T) { visitedMonotonic(t, f, caps) })
	t.Run("PathContiguity", func(t *testing.T) { pathContiguity(t, f) })
	if caps.Shortest {
		t.Run("OpenGridOptimal", func(t *testing.T) { openGridOptimal(t, f) })
	}
	t.Run("EnclosedGoal", func(t *testing.T) { enclosedGoal(t, f) })
	if caps.Deterministic {
		t.Run("Determinism", func(t *testing.T) { determinism(t, f) })
	}
	t.Run("StartIsGoal", func(t *testing.T) { startIsGoal(t, f) })
	t.Run("TerminalIsSticky", func(t *testing.T) { terminalIsSticky(t, f) })
	if caps.Complete {
		t.Run("Detour", func(t *testing.T) { detour(t, f) })
	}
	t.Run("InvalidRequest", func(t *testing.T) { invalidRequest(t, f) })
	t.Run("Reusable", func(t *testing.T) { reusable(t, f) })
}

// maze is a 10x10 grid with a wall at x=4 (gap at y=9) and a wall at x=7
// (gap at y=0).
func maze(t testing.TB, dirs grid.Directions) search.Problem {
	var obs []grid.Coord
	for y := 0; y < 9; y++ {
		obs = append(obs, grid.XY(4, y))
	}
	for y := 1; y < 10; y++ {
		obs = append(obs, grid.XY(7, y))
	}
	return Problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), dirs, obs...)
}

func frontierSafety(t *testing.T, f Factory) {
	for _, dirs := range []grid.Directions{grid.Axis2D, grid.Diagonal2D} {
		p := maze(t, dirs)
		var bad []grid.Coord
		s := f(search.WithOnEnqueue(func(c grid.Coord, _ float64) {
			if !p.Grid.InBounds(c) || p.Grid.IsObstacle(c) {
				bad = append(bad, c)
			}
		}))
		Drive(t, s, p)
		assert.Empty(t, bad, "%s enqueued out-of-bounds or blocked cells", s.Name())
	}
}

func visitedMonotonic(t *testing.T, f Factory, caps Caps) {
	p := maze(t, grid.Axis2D)
	s := f()
	require.NoError(t, s.Init(p))
	prev := 0
	for st := search.Continue; !st.Terminal(); {
		st = s.Step()
		n := len(s.State().Visited)
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
	if !caps.ClosedSet {
		return
	}
	seen := make(map[grid.Coord]bool)
	for _, c := range s.State().Visited {
		assert.False(t, seen[c], "%s visited %v twice", s.Name(), c)
		seen[c] = true
	}
}

func pathContiguity(t *testing.T, f Factory) {
	for _, dirs := range []grid.Directions{grid.Axis2D, grid.Diagonal2D} {
		p := maze(t, dirs)
		s := f()
		st := Drive(t, s, p)
		if st != search.Found {
			continue
		}
		path := s.State().Path(p.Start, p.Goal)
		require.NotEmpty(t, path)
		assert.Equal(t, p.Start, path[0])
		assert.Equal(t, p.Goal, path[len(path)-1])
		assert.NoError(t, search.CheckPath(p.Grid, path, s.State().Directions))
	}
}

func openGridOptimal(t *testing.T, f Factory) {
	p := Problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	path, st, err := search.Solve(f(), p)
	require.NoError(t, err)
	require.Equal(t, search.Found, st)
	assert.Len(t, path, 19)
}

func enclosedGoal(t *testing.T, f Factory) {
	goal := grid.XY(5, 5)
	for _, dirs := range []grid.Directions{grid.Axis2D, grid.Diagonal2D} {
		p := Problem(t, 10, grid.XY(0, 0), goal, dirs, Ring(goal)...)
		s := f()
		st := Drive(t, s, p)
		assert.Equal(t, search.Exhausted, st, s.Name())
		assert.Empty(t, s.State().Path(p.Start, p.Goal))
	}
}

func determinism(t *testing.T, f Factory) {
	p := maze(t, grid.Diagonal2D)
	a, b := f(), f()
	stA, stB := Drive(t, a, p), Drive(t, b, p)
	assert.Equal(t, stA, stB)
	assert.Equal(t, a.State().Visited, b.State().Visited)
	assert.Equal(t, a.State().Path(p.Start, p.Goal), b.State().Path(p.Start, p.Goal))
}

func startIsGoal(t *testing.T, f Factory) {
	c := grid.XY(3, 3)
	p := Problem(t, 6, c, c, grid.Axis2D)
	s := f()
	require.NoError(t, s.Init(p))
	assert.Equal(t, search.Found, s.Step())
	assert.Equal(t, []grid.Coord{c}, s.State().Visited)
	assert.Equal(t, []grid.Coord{c}, s.State().Path(c, c))
}

func terminalIsSticky(t *testing.T, f Factory) {
	p := Problem(t, 4, grid.XY(0, 0), grid.XY(3, 3), grid.Axis2D)
	s := f()
	st := Drive(t, s, p)
	n := len(s.State().Visited)
	for i := 0; i < 3; i++ {
		assert.Equal(t, st, s.Step())
	}
	assert.Len(t, s.State().Visited, n)
}

func detour(t *testing.T, f Factory) {
	p := maze(t, grid.Axis2D)
	path, st, err := search.Solve(f(), p)
	require.NoError(t, err)
	require.Equal(t, search.Found, st)
	assert.True(t, slices.Contains(path, grid.XY(4, 9)), "path must use the gap at (4,9)")
	assert.True(t, slices.Contains(path, grid.XY(7, 0)), "path must use the gap at (7,0)")
}

func invalidRequest(t *testing.T, f Factory) {
	p := Problem(t, 4, grid.XY(0, 0), grid.XY(3, 3), grid.Axis2D, grid.XY(3, 3))
	assert.ErrorIs(t, f().Init(p), search.ErrBlocked)
	assert.ErrorIs(t, f().Init(search.Problem{}), search.ErrInvalidRequest)
}

func reusable(t *testing.T, f Factory) {
	s := f()
	p1 := Problem(t, 5, grid.XY(0, 0), grid.XY(4, 0), grid.Axis2D)
	p2 := Problem(t, 5, grid.XY(0, 0), grid.XY(0, 4), grid.Axis2D)
	require.Equal(t, search.Found, Drive(t, s, p1))
	require.Equal(t, search.Found, Drive(t, s, p2))
	st := s.State()
	assert.Equal(t, grid.XY(0, 0), st.Visited[0], "Init must reset the visited sequence")
	path := st.Path(p2.Start, p2.Goal)
	require.NotEmpty(t, path)
	assert.Equal(t, p2.Goal, path[len(path)-1])
}
