package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"astar", "bellman-ford", "bfs", "dfs", "dijkstra",
		"dstar-lite", "dstar-lite-biased", "hybrid",
	}, algorithms.Names())
}

func TestNew(t *testing.T) {
	for _, name := range algorithms.Names() {
		s, err := algorithms.New(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}

	s, err := algorithms.New(" AStar ")
	require.NoError(t, err)
	assert.Equal(t, "astar", s.Name())

	_, err = algorithms.New("greedy")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

func TestReplanning(t *testing.T) {
	assert.True(t, algorithms.Replanning("dstar-lite"))
	assert.True(t, algorithms.Replanning("dstar-lite-biased"))
	assert.False(t, algorithms.Replanning("astar"))
	assert.False(t, algorithms.Replanning("nope"))
}

func TestDynamic(t *testing.T) {
	for _, name := range []string{"dstar-lite", "dstar-lite-biased", "hybrid", " Hybrid "} {
		assert.True(t, algorithms.Dynamic(name), name)
		assert.NoError(t, algorithms.CheckDynamic(name, 0.5), name)
	}
	for _, name := range []string{"bfs", "dfs", "dijkstra", "astar", "bellman-ford", "nope"} {
		assert.False(t, algorithms.Dynamic(name), name)
		assert.ErrorIs(t, algorithms.CheckDynamic(name, 0.5), algorithms.ErrStaticOnly, name)
		assert.NoError(t, algorithms.CheckDynamic(name, 0), name)
	}
}

func problem(t *testing.T, size int, start, goal grid.Coord, dirs grid.Directions, obs ...grid.Coord) search.Problem {
	t.Helper()
	g, err := grid.New(size, 2, grid.NewObstacleSet(obs...))
	require.NoError(t, err)
	return search.Problem{Start: start, Goal: goal, Grid: g, Directions: dirs}
}

// TestOptimalityCrossCheck: on an open 10×10 grid with axis moves, BFS,
// Dijkstra and A* agree on a 19-cell path from (0,0) to (9,9).
func TestOptimalityCrossCheck(t *testing.T) {
	p := problem(t, 10, grid.XY(0, 0), grid.XY(9, 9), grid.Axis2D)
	for _, name := range []string{"bfs", "dijkstra", "astar", "bellman-ford", "dstar-lite"} {
		s, err := algorithms.New(name)
		require.NoError(t, err)
		path, st, err := search.Solve(s, p)
		require.NoError(t, err, name)
		require.Equal(t, search.Found, st, name)
		assert.Len(t, path, 19, name)
		assert.NoError(t, search.CheckPath(p.Grid, path, grid.Axis2D), name)
	}
}

// TestEnclosedGoal: every strategy reports an empty path when the goal is
// walled in.
func TestEnclosedGoal(t *testing.T) {
	goal := grid.XY(4, 4)
	var ring []grid.Coord
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				ring = append(ring, grid.XY(4+dx, 4+dy))
			}
		}
	}
	p := problem(t, 8, grid.XY(0, 0), goal, grid.Diagonal2D, ring...)
	for _, name := range algorithms.Names() {
		s, err := algorithms.New(name)
		require.NoError(t, err)
		path, st, err := search.Solve(s, p)
		require.NoError(t, err, name)
		assert.Equal(t, search.Exhausted, st, name)
		assert.Empty(t, path, name)
	}
}

// TestDeterminism: two fresh runs give the same visited order and path.
func TestDeterminism(t *testing.T) {
	p := problem(t, 8, grid.XY(0, 7), grid.XY(7, 0), grid.Diagonal2D,
		grid.XY(3, 3), grid.XY(3, 4), grid.XY(4, 3), grid.XY(5, 1), grid.XY(1, 5))
	for _, name := range algorithms.Names() {
		a, _ := algorithms.New(name)
		b, _ := algorithms.New(name)
		pa, _, err := search.Solve(a, p)
		require.NoError(t, err)
		pb, _, err := search.Solve(b, p)
		require.NoError(t, err)
		assert.Equal(t, pa, pb, name)
		assert.Equal(t, a.State().Visited, b.State().Visited, name)
	}
}
