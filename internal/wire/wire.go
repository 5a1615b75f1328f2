// Package wire defines the JSON messages exchanged with the visualization
// client over the websocket.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

// Message types.
const (
	TypeStart  = "start"
	TypeStop   = "stop"
	TypeStep   = "step"
	TypeResult = "result"
	TypeError  = "error"
)

// Defaults applied to a StartRequest with missing fields.
const (
	DefaultSize      = 10
	DefaultDims      = 2
	DefaultAlgorithm = "astar"

	// MaxSize bounds the grid side a client may request, keeping a 3D grid
	// at 64^3 cells.
	MaxSize = 64
)

// ErrBadMessage is returned for a client message that cannot be decoded.
var ErrBadMessage = errors.New("wire: bad message")

// Envelope carries the type of any message.
type Envelope struct {
	Type string `json:"type"`
}

// StartRequest asks the server to begin a run.
type StartRequest struct {
	Type       string          `json:"type"`
	Algorithm  string          `json:"algorithm"`
	Start      *grid.Coord     `json:"start,omitempty"`
	Goal       *grid.Coord     `json:"goal,omitempty"`
	Size       int             `json:"size,omitempty"`
	Dims       int             `json:"dims,omitempty"`
	Obstacles  []grid.Coord    `json:"obstacles,omitempty"`
	Random     int             `json:"random,omitempty"`
	Directions json.RawMessage `json:"directions,omitempty"`
	Speed      int             `json:"speed,omitempty"` // ms between steps
	Dynamic    float64         `json:"dynamic,omitempty"`
	Seed       int64           `json:"seed,omitempty"`
	Strict     bool            `json:"strict,omitempty"`
}

// StepMessage reports one step.
type StepMessage struct {
	Type     string       `json:"type"`
	Step     int          `json:"step"`
	Visited  []grid.Coord `json:"visited"`
	Injected []grid.Coord `json:"injected,omitempty"`
}

// ResultMessage reports the end of a run.
type ResultMessage struct {
	Type         string       `json:"type"`
	Algorithm    string       `json:"algorithm"`
	Outcome      string       `json:"outcome"`
	Path         []grid.Coord `json:"path"`
	VisitedCount int          `json:"visitedCount"`
	Steps        int          `json:"steps"`
	ElapsedMs    float64      `json:"elapsedMs"`
	Injected     []grid.Coord `json:"injected,omitempty"`
	Admissible   bool         `json:"admissible"`
	Stale        bool         `json:"stale,omitempty"`
	Obstacles    []grid.Coord `json:"obstacles,omitempty"`
}

// ErrorMessage reports a rejected request.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Decode reads the message type and, for a start message, the request.
func Decode(b []byte) (string, *StartRequest, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}
	switch env.Type {
	case TypeStop:
		return env.Type, nil, nil
	case TypeStart:
		var req StartRequest
		if err := json.Unmarshal(b, &req); err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBadMessage, err)
		}
		req.applyDefaults()
		if req.Size < 1 || req.Size > MaxSize {
			return "", nil, fmt.Errorf("%w: size %d outside [1,%d]", ErrBadMessage, req.Size, MaxSize)
		}
		if req.Random < 0 {
			return "", nil, fmt.Errorf("%w: random %d is negative", ErrBadMessage, req.Random)
		}
		return env.Type, &req, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown type %q", ErrBadMessage, env.Type)
	}
}

func (r *StartRequest) applyDefaults() {
	if r.Algorithm == "" {
		r.Algorithm = DefaultAlgorithm
	}
	if r.Size == 0 {
		r.Size = DefaultSize
	}
	if r.Dims == 0 {
		r.Dims = DefaultDims
	}
}

// Problem builds the grid and search problem described by r.
// Start defaults to the origin and goal to the far corner.
func (r *StartRequest) Problem() (search.Problem, error) {
	g, err := grid.New(r.Size, r.Dims, grid.NewObstacleSet(r.Obstacles...))
	if err != nil {
		return search.Problem{}, err
	}
	dirs, err := ParseDirections(r.Directions, r.Dims)
	if err != nil {
		return search.Problem{}, err
	}
	p := search.Problem{Grid: g, Directions: dirs, Start: corner(0, r.Dims), Goal: corner(r.Size-1, r.Dims)}
	if r.Start != nil {
		p.Start = *r.Start
	}
	if r.Goal != nil {
		p.Goal = *r.Goal
	}
	return p, nil
}

// ParseDirections accepts a preset name ("axis", "diagonal", "mixed") or an
// explicit list of deltas such as [[1,0],[0,1]]. Empty means axis.
func ParseDirections(raw json.RawMessage, dims int) (grid.Directions, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return grid.ParseDirections("", dims)
	}
	if strings.HasPrefix(s, "[") {
		var ds grid.Directions
		if err := json.Unmarshal(raw, &ds); err != nil {
			return nil, fmt.Errorf("%w: %w", grid.ErrBadDirections, err)
		}
		if err := ds.Validate(dims); err != nil {
			return nil, err
		}
		return ds, nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return nil, fmt.Errorf("%w: %w", grid.ErrBadDirections, err)
	}
	return grid.ParseDirections(name, dims)
}

func corner(v, dims int) grid.Coord {
	if dims == 3 {
		return grid.XYZ(v, v, v)
	}
	return grid.XY(v, v)
}

// Step converts a stepper update.
func Step(u stepper.Update) StepMessage {
	return StepMessage{Type: TypeStep, Step: u.Step, Visited: nonNil(u.Visited), Injected: u.Injected}
}

// Result converts a finished run. obstacles is the final obstacle set.
func Result(res stepper.Result, obstacles []grid.Coord) ResultMessage {
	return ResultMessage{
		Type:         TypeResult,
		Algorithm:    res.Strategy,
		Outcome:      res.Outcome.String(),
		Path:         nonNil(res.Path),
		VisitedCount: res.VisitedCount,
		Steps:        res.Steps,
		ElapsedMs:    float64(res.Elapsed.Microseconds()) / 1000,
		Injected:     res.Injected,
		Admissible:   res.Admissible,
		Stale:        res.Stale,
		Obstacles:    obstacles,
	}
}

// Error converts err.
func Error(err error) ErrorMessage {
	return ErrorMessage{Type: TypeError, Error: err.Error()}
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil(cs []grid.Coord) []grid.Coord {
	if cs == nil {
		return []grid.Coord{}
	}
	return cs
}
