package wire_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/wire"
	"github.com/katalvlaran/gridpath/stepper"
)

func TestDecode_StartDefaults(t *testing.T) {
	typ, req, err := wire.Decode([]byte(`{"type":"start"}`))
	require.NoError(t, err)
	assert.Equal(t, wire.TypeStart, typ)
	assert.Equal(t, wire.DefaultAlgorithm, req.Algorithm)

	p, err := req.Problem()
	require.NoError(t, err)
	assert.Equal(t, 10, p.Grid.Size)
	assert.Equal(t, 2, p.Grid.Dims)
	assert.Equal(t, grid.XY(0, 0), p.Start)
	assert.Equal(t, grid.XY(9, 9), p.Goal)
	assert.Equal(t, grid.Axis2D, p.Directions)
}

func TestDecode_FullStart(t *testing.T) {
	msg := `{"type":"start","algorithm":"dijkstra","start":[0,1,2],"goal":[3,3,3],
		"size":4,"dims":3,"obstacles":[[1,1,1]],"directions":"mixed","speed":20,
		"dynamic":0.1,"seed":7,"strict":true}`
	_, req, err := wire.Decode([]byte(msg))
	require.NoError(t, err)
	assert.Equal(t, 20, req.Speed)
	assert.Equal(t, 0.1, req.Dynamic)
	assert.Equal(t, int64(7), req.Seed)
	assert.True(t, req.Strict)

	p, err := req.Problem()
	require.NoError(t, err)
	assert.Equal(t, grid.XYZ(0, 1, 2), p.Start)
	assert.Equal(t, grid.XYZ(3, 3, 3), p.Goal)
	assert.True(t, p.Grid.IsObstacle(grid.XYZ(1, 1, 1)))
	assert.Equal(t, grid.Mixed3D, p.Directions)
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := wire.Decode([]byte(`{"type":"dance"}`))
	assert.ErrorIs(t, err, wire.ErrBadMessage)
	_, _, err = wire.Decode([]byte(`not json`))
	assert.ErrorIs(t, err, wire.ErrBadMessage)
	_, _, err = wire.Decode([]byte(`{"type":"start","start":[1]}`))
	assert.ErrorIs(t, err, wire.ErrBadMessage)

	for _, msg := range []string{
		`{"type":"start","size":100000,"dims":3,"random":1}`,
		`{"type":"start","size":-3}`,
		`{"type":"start","random":-1}`,
	} {
		_, _, err = wire.Decode([]byte(msg))
		assert.ErrorIs(t, err, wire.ErrBadMessage, msg)
	}
	_, req, err := wire.Decode([]byte(`{"type":"start","size":64,"dims":3}`))
	require.NoError(t, err)
	assert.Equal(t, wire.MaxSize, req.Size)

	typ, req, err := wire.Decode([]byte(`{"type":"stop"}`))
	require.NoError(t, err)
	assert.Equal(t, wire.TypeStop, typ)
	assert.Nil(t, req)

	_, req, err = wire.Decode([]byte(`{"type":"start","dims":4}`))
	require.NoError(t, err)
	_, err = req.Problem()
	assert.ErrorIs(t, err, grid.ErrBadDims)
}

func TestParseDirections(t *testing.T) {
	ds, err := wire.ParseDirections(json.RawMessage(`[[1,0],[0,1]]`), 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Directions{grid.XY(1, 0), grid.XY(0, 1)}, ds)

	ds, err = wire.ParseDirections(json.RawMessage(`"diagonal"`), 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Diagonal2D, ds)

	ds, err = wire.ParseDirections(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, grid.Axis3D, ds)

	for _, bad := range []string{`[[2,0]]`, `[[1,0,0]]`, `"hex"`, `7`} {
		_, err = wire.ParseDirections(json.RawMessage(bad), 2)
		assert.ErrorIs(t, err, grid.ErrBadDirections, bad)
	}
}

func TestStepAndResult(t *testing.T) {
	b, err := json.Marshal(wire.Step(stepper.Update{Step: 2, Visited: nil}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"step","step":2,"visited":[]}`, string(b))

	res := stepper.Result{
		Strategy:     "bfs",
		Outcome:      stepper.Found,
		Path:         []grid.Coord{grid.XY(0, 0), grid.XY(1, 0)},
		VisitedCount: 2,
		Steps:        2,
		Elapsed:      1500 * time.Microsecond,
		Admissible:   true,
	}
	b, err = json.Marshal(wire.Result(res, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"result","algorithm":"bfs","outcome":"found",
		"path":[[0,0],[1,0]],"visitedCount":2,"steps":2,"elapsedMs":1.5,"admissible":true}`, string(b))
}
