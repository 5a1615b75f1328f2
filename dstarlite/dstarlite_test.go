package dstarlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dstarlite"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/searchtest"
	"github.com/katalvlaran/gridpath/search"
)

func TestDStarLite_Conformance(t *testing.T) {
	factory := func(opts ...search.Option) search.Strategy { return dstarlite.New(opts...) }
	searchtest.Run(t, factory, searchtest.Caps{
		Shortest:      true,
		Complete:      true,
		Deterministic: true,
	})
}

func TestDStarLiteBiased_Conformance(t *testing.T) {
	factory := func(opts ...search.Option) search.Strategy { return dstarlite.NewGoalBiased(opts...) }
	searchtest.Run(t, factory, searchtest.Caps{
		Shortest:      true,
		Deterministic: true,
	})
}

func TestDStarLite_Names(t *testing.T) {
	assert.Equal(t, "dstar-lite", dstarlite.New().Name())
	assert.Equal(t, "dstar-lite-biased", dstarlite.NewGoalBiased().Name())
}

// TestDStarLite_IgnoresRequestDirections checks that the fixed variant
// always uses the axis moves of the grid's arity.
func TestDStarLite_IgnoresRequestDirections(t *testing.T) {
	p := searchtest.Problem(t, 4, grid.XY(0, 0), grid.XY(3, 3), grid.Diagonal2D)
	pl := dstarlite.New()
	require.Equal(t, search.Found, searchtest.Drive(t, pl, p))
	assert.Equal(t, grid.Axis2D, pl.State().Directions)
	assert.Len(t, pl.State().Path(p.Start, p.Goal), 7)
	assert.Nil(t, pl.State().Closed)

	g3, err := grid.New(3, 3, nil)
	require.NoError(t, err)
	p3 := search.Problem{Start: grid.XYZ(0, 0, 0), Goal: grid.XYZ(2, 2, 2), Grid: g3}
	pl3 := dstarlite.New()
	require.Equal(t, search.Found, searchtest.Drive(t, pl3, p3))
	assert.Equal(t, grid.Axis3D, pl3.State().Directions)
	assert.Len(t, pl3.State().Path(p3.Start, p3.Goal), 7)
}

func TestDStarLite_WallDetour(t *testing.T) {
	p := searchtest.Problem(t, 5, grid.XY(0, 0), grid.XY(4, 0), grid.Axis2D,
		grid.XY(2, 0), grid.XY(2, 1), grid.XY(2, 2), grid.XY(2, 3))
	pl := dstarlite.New()
	require.Equal(t, search.Found, searchtest.Drive(t, pl, p))
	path := pl.State().Path(p.Start, p.Goal)
	assert.Len(t, path, 13)
	assert.Contains(t, path, grid.XY(2, 4))
	assert.Equal(t, 12.0, pl.State().Rhs(p.Goal))
}

// TestDStarLiteBiased_Incomplete documents that the goal-biased variant
// cannot leave the goal-ward half-plane to get around a wall.
func TestDStarLiteBiased_Incomplete(t *testing.T) {
	p := searchtest.Problem(t, 5, grid.XY(0, 0), grid.XY(4, 0), grid.Axis2D,
		grid.XY(2, 0), grid.XY(2, 1), grid.XY(2, 2), grid.XY(2, 3))
	pl := dstarlite.NewGoalBiased()
	assert.Equal(t, search.Exhausted, searchtest.Drive(t, pl, p))
	assert.Equal(t, grid.Directions{grid.XY(1, 0)}, pl.State().Directions)
	assert.Equal(t, []grid.Coord{grid.XY(0, 0), grid.XY(1, 0)}, pl.State().Visited)
	assert.Empty(t, pl.State().Path(p.Start, p.Goal))
}

func TestDStarLiteBiased_Directions(t *testing.T) {
	p := searchtest.Problem(t, 5, grid.XY(4, 0), grid.XY(0, 4), grid.Axis2D)
	pl := dstarlite.NewGoalBiased()
	require.Equal(t, search.Found, searchtest.Drive(t, pl, p))
	assert.Equal(t, grid.Directions{grid.XY(-1, 0), grid.XY(0, 1)}, pl.State().Directions)
	assert.Len(t, pl.State().Path(p.Start, p.Goal), 9)
}

// TestDStarLite_ReplanAroundObstacle blocks a cell on the straight route
// after it has been expanded.
func TestDStarLite_ReplanAroundObstacle(t *testing.T) {
	p := searchtest.Problem(t, 5, grid.XY(0, 0), grid.XY(4, 0), grid.Axis2D)
	pl := dstarlite.New()
	require.NoError(t, pl.Init(p))
	for i := 0; i < 3; i++ {
		require.Equal(t, search.Continue, pl.Step())
	}
	require.Equal(t, []grid.Coord{grid.XY(0, 0), grid.XY(1, 0), grid.XY(2, 0)}, pl.State().Visited)

	p.Grid.Obstacles.Add(grid.XY(2, 0))
	pl.ObstacleAdded(grid.XY(2, 0))
	assert.Equal(t, search.Inf, pl.State().G(grid.XY(2, 0)))

	for st := search.Continue; !st.Terminal(); {
		st = pl.Step()
		require.NotEqual(t, search.Exhausted, st)
	}
	want := []grid.Coord{
		grid.XY(0, 0), grid.XY(1, 0), grid.XY(1, 1), grid.XY(2, 1),
		grid.XY(3, 1), grid.XY(3, 0), grid.XY(4, 0),
	}
	path := pl.State().Path(p.Start, p.Goal)
	assert.Equal(t, want, path)
	assert.NoError(t, search.CheckPath(p.Grid, path, grid.Axis2D))
}

// TestDStarLite_ReplanRevisits blocks two cells behind the expansion front;
// the cells that depended on them are reset and expanded again.
func TestDStarLite_ReplanRevisits(t *testing.T) {
	p := searchtest.Problem(t, 7, grid.XY(0, 0), grid.XY(6, 0), grid.Axis2D)
	pl := dstarlite.New()
	require.NoError(t, pl.Init(p))
	for i := 0; i < 5; i++ {
		pl.Step()
	}
	for _, c := range []grid.Coord{grid.XY(3, 0), grid.XY(3, 1)} {
		p.Grid.Obstacles.Add(c)
		pl.ObstacleAdded(c)
	}
	for st := search.Continue; !st.Terminal(); {
		st = pl.Step()
	}

	path := pl.State().Path(p.Start, p.Goal)
	require.NoError(t, search.CheckPath(p.Grid, path, grid.Axis2D))
	assert.Len(t, path, 11)

	seen := make(map[grid.Coord]int)
	for _, c := range pl.State().Visited {
		seen[c]++
	}
	assert.Less(t, len(seen), len(pl.State().Visited), "some cells were expanded twice")
	assert.Equal(t, 3, seen[grid.XY(4, 0)], "expanded, reset, then expanded via the detour")
}

func TestDStarLite_ObstacleAddedIgnored(t *testing.T) {
	assert.NotPanics(t, func() { dstarlite.New().ObstacleAdded(grid.XY(0, 0)) })

	p := searchtest.Problem(t, 3, grid.XY(0, 0), grid.XY(2, 0), grid.Axis2D)
	pl := dstarlite.New()
	require.NoError(t, pl.Init(p))
	pl.ObstacleAdded(grid.XY(0, 0)) // the start is never invalidated
	assert.Equal(t, 0.0, pl.State().Rhs(grid.XY(0, 0)))
	pl.ObstacleAdded(grid.XY(9, 9))
	assert.Equal(t, search.Continue, pl.Step())
}
