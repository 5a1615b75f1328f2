package dstarlite

import (
	"slices"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Registry names of the two variants.
const (
	Name       = "dstar-lite"
	NameBiased = "dstar-lite-biased"
)

// Planner is a D*-Lite search.Strategy and search.Replanner.
type Planner struct {
	name   string
	biased bool
	opts   search.Options
	err    error

	p      search.Problem
	st     *search.State
	h      search.Heuristic
	pq     *frontier.PriorityQueue[entry]
	queued map[grid.Coord]uint64 // generation of the live entry per cell
	gen    uint64
	status search.Status
}

// entry is one queue slot. It is stale unless gen matches queued[cell].
type entry struct {
	cell grid.Coord
	gen  uint64
}

// New returns the axis-direction planner.
func New(opts ...search.Option) *Planner {
	o, err := search.Apply(opts...)
	return &Planner{name: Name, opts: o, err: err, status: search.Exhausted}
}

// NewGoalBiased returns the planner restricted to goal-ward axis moves.
// It trades completeness for fewer expansions; see the package doc.
func NewGoalBiased(opts ...search.Option) *Planner {
	pl := New(opts...)
	pl.name = NameBiased
	pl.biased = true
	return pl
}

// Name implements search.Strategy.
func (pl *Planner) Name() string { return pl.name }

// State implements search.Strategy.
func (pl *Planner) State() *search.State { return pl.st }

// Init validates start and goal and seeds the queue with the start.
// The request's direction set is replaced by the variant's own.
func (pl *Planner) Init(p search.Problem) error {
	if pl.err != nil {
		return pl.err
	}
	if p.Grid == nil {
		return search.Validate(p)
	}
	axis := grid.AxisDirections(p.Grid.Dims)
	p.Directions = axis
	if err := search.Validate(p); err != nil {
		return err
	}
	if pl.biased {
		p.Directions = grid.GoalBiased(p.Start, p.Goal)
	}

	pl.p = p
	pl.st = search.NewState(p.Directions, 0)
	pl.st.Closed = nil
	pl.st.Aux = make(map[grid.Coord]float64)
	pl.h, pl.st.Admissible = pl.opts.Resolve(p.Directions)
	pl.pq = frontier.NewPriorityQueue[entry](0)
	pl.queued = make(map[grid.Coord]uint64)
	pl.gen = 0
	pl.status = search.Continue

	pl.st.Aux[p.Start] = 0
	pl.enqueue(p.Start)
	return nil
}

// key returns [min(g, rhs) + h, min(g, rhs)].
func (pl *Planner) key(c grid.Coord) (float64, float64) {
	m := min(pl.st.G(c), pl.st.Rhs(c))
	return m + pl.h(c, pl.p.Goal), m
}

func (pl *Planner) enqueue(c grid.Coord) {
	k1, k2 := pl.key(c)
	pl.gen++
	pl.queued[c] = pl.gen
	pl.opts.OnEnqueue(c, k1)
	pl.pq.PushKey(entry{cell: c, gen: pl.gen}, k1, k2)
}

// setG stores g, dropping the entry when it returns to +∞.
func (pl *Planner) setG(c grid.Coord, g float64) {
	if g == search.Inf {
		delete(pl.st.Cost, c)
		return
	}
	pl.st.Cost[c] = g
}

// updateVertex recomputes rhs(u) and its predecessor, then queues u if it is
// inconsistent.
func (pl *Planner) updateVertex(u grid.Coord) {
	if u != pl.p.Start {
		best, pred, found := search.Inf, grid.Coord{}, false
		for _, d := range pl.st.Directions {
			v := u.Sub(d)
			if !pl.p.Grid.Open(v) {
				continue
			}
			if g := pl.st.G(v) + 1; g < best {
				best, pred, found = g, v, true
			}
		}
		if found {
			pl.st.Aux[u] = best
			pl.st.Pred[u] = pred
		} else {
			delete(pl.st.Aux, u)
			delete(pl.st.Pred, u)
		}
	}

	delete(pl.queued, u)
	if pl.st.G(u) != pl.st.Rhs(u) {
		pl.enqueue(u)
	}
}

// successors yields the open cells one move away from u.
func (pl *Planner) successors(u grid.Coord) []grid.Coord {
	return slices.Collect(pl.p.Grid.Neighbors(u, pl.st.Directions, nil))
}

// Step pops the lowest-key inconsistent cell and makes it consistent.
func (pl *Planner) Step() search.Status {
	if pl.status.Terminal() {
		return pl.status
	}

	for !pl.pq.Empty() {
		e, _ := pl.pq.PopMin()
		u := e.cell
		pl.opts.OnDequeue(u)
		if gen, ok := pl.queued[u]; !ok || gen != e.gen {
			continue // stale
		}
		delete(pl.queued, u)
		pl.st.Visited = append(pl.st.Visited, u)

		rhs := pl.st.Rhs(u)
		if pl.st.G(u) > rhs {
			pl.setG(u, rhs)
			if u == pl.p.Goal {
				pl.status = search.Found
				return pl.status
			}
			for _, v := range pl.successors(u) {
				pl.updateVertex(v)
			}
		} else {
			pl.setG(u, search.Inf)
			pl.updateVertex(u)
			for _, v := range pl.successors(u) {
				pl.updateVertex(v)
			}
		}
		return search.Continue
	}

	pl.status = search.Exhausted
	return pl.status
}

// ObstacleAdded implements search.Replanner. The caller has already added c
// to the grid's obstacle set.
func (pl *Planner) ObstacleAdded(c grid.Coord) {
	if pl.st == nil || pl.status.Terminal() || !pl.p.Grid.InBounds(c) || c == pl.p.Start {
		return
	}
	delete(pl.st.Cost, c)
	delete(pl.st.Aux, c)
	delete(pl.st.Pred, c)
	delete(pl.queued, c)
	for _, v := range pl.successors(c) {
		pl.updateVertex(v)
	}
}
