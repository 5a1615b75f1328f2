package injector

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Injector inserts random obstacles into a grid.
type Injector struct {
	opts Options
	rng  *rand.Rand
}

// New builds an Injector. An invalid option yields ErrOptionViolation.
func New(opts ...Option) (*Injector, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	in := &Injector{opts: o}
	if o.Rand != nil {
		in.rng = o.Rand
	} else {
		in.rng = rngFromSeed(o.Seed)
	}
	return in, nil
}

// Probability returns the per-call insertion probability.
func (in *Injector) Probability() float64 { return in.opts.Probability }

// Derive returns an Injector with the same probability and an independent
// stream identified by stream, for parallel runs that must not share state.
// The parent seed is drawn from in's own source, so in advances by one draw
// and two calls with the same stream id still yield different children.
func (in *Injector) Derive(stream uint64) *Injector {
	return &Injector{opts: in.opts, rng: rngFromSeed(deriveSeed(in.rng.Int63(), stream))}
}

// MaybeInject flips a biased coin and, on success, adds an obstacle at a
// random cell other than start, goal and existing obstacles. The draw is
// retried at most 16 times; on a crowded grid it may insert nothing.
// It reports the inserted cell, if any.
func (in *Injector) MaybeInject(g *grid.Grid, start, goal grid.Coord) (grid.Coord, bool) {
	if in.opts.Probability == 0 || in.rng.Float64() >= in.opts.Probability {
		return grid.Coord{}, false
	}
	for i := 0; i < maxDraws; i++ {
		c := in.randomCell(g)
		if c == start || c == goal || g.IsObstacle(c) {
			continue
		}
		g.Obstacles.Add(c)
		return c, true
	}
	return grid.Coord{}, false
}

// Scatter adds up to n obstacles on distinct free cells not listed in
// exclude, and returns them in insertion order. Fewer are added when the grid
// runs out of free cells.
//
// Complexity: O(size^dims) time and memory.
func (in *Injector) Scatter(g *grid.Grid, n int, exclude ...grid.Coord) []grid.Coord {
	if n <= 0 {
		return nil
	}
	var free []grid.Coord
	for c := range g.Cells() {
		if !g.IsObstacle(c) && !slices.Contains(exclude, c) {
			free = append(free, c)
		}
	}
	n = min(n, len(free))
	// partial Fisher–Yates: the first n slots end up a uniform sample
	for i := 0; i < n; i++ {
		j := i + in.rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
		g.Obstacles.Add(free[i])
	}
	return free[:n:n]
}

func (in *Injector) randomCell(g *grid.Grid) grid.Coord {
	x, y := in.rng.Intn(g.Size), in.rng.Intn(g.Size)
	if g.Dims == 3 {
		return grid.XYZ(x, y, in.rng.Intn(g.Size))
	}
	return grid.XY(x, y)
}
