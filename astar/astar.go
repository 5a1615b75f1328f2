package astar

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "astar"

// Bias is added to the queue priority of a cell, on top of g+h.
// It never changes g.
type Bias func(c grid.Coord) float64

// BiasFactory builds the Bias for one run.
type BiasFactory func(p search.Problem) Bias

// Searcher is an A* search.Strategy.
type Searcher struct {
	name   string
	opts   search.Options
	err    error
	bias   BiasFactory
	p      search.Problem
	st     *search.State
	h      search.Heuristic
	b      Bias
	pq     *frontier.PriorityQueue[grid.Coord]
	status search.Status
}

// New returns an A* searcher. An invalid option is reported by Init.
func New(opts ...search.Option) *Searcher {
	o, err := search.Apply(opts...)
	return &Searcher{name: Name, opts: o, err: err, status: search.Exhausted}
}

// NewWithBias returns an A* searcher registered under name whose queue
// priority is g + h + bias(c). A biased search reports Admissible == false,
// since the bias may overestimate the remaining cost.
func NewWithBias(name string, bias BiasFactory, opts ...search.Option) *Searcher {
	s := New(opts...)
	s.name = name
	s.bias = bias
	return s
}

// Name implements search.Strategy.
func (s *Searcher) Name() string { return s.name }

// State implements search.Strategy.
func (s *Searcher) State() *search.State { return s.st }

// Init validates p, resolves the heuristic and seeds the queue with the start.
func (s *Searcher) Init(p search.Problem) error {
	if s.err != nil {
		return s.err
	}
	if err := search.Validate(p); err != nil {
		return err
	}
	s.p = p
	s.st = search.NewState(p.Directions.Clone(), 0)
	s.h, s.st.Admissible = s.opts.Resolve(s.st.Directions)
	s.b = nil
	if s.bias != nil {
		s.b = s.bias(p)
		s.st.Admissible = false
	}
	s.pq = frontier.NewPriorityQueue[grid.Coord](0)
	s.status = search.Continue

	s.st.Cost[p.Start] = 0
	s.push(p.Start, 0)
	return nil
}

// priority returns f(c) for a cell reached at cost g.
func (s *Searcher) priority(c grid.Coord, g float64) float64 {
	f := g + s.h(c, s.p.Goal)
	if s.b != nil {
		f += s.b(c)
	}
	return f
}

func (s *Searcher) push(c grid.Coord, g float64) {
	f := s.priority(c, g)
	s.opts.OnEnqueue(c, f)
	s.pq.Push(c, f)
}

// Step pops the lowest-f unclosed cell, tests it against the goal and relaxes
// its neighbors.
func (s *Searcher) Step() search.Status {
	if s.status.Terminal() {
		return s.status
	}

	for !s.pq.Empty() {
		u, _ := s.pq.PopMin()
		s.opts.OnDequeue(u)
		if s.st.Closed[u] || s.p.Grid.IsObstacle(u) {
			continue
		}

		s.st.Closed[u] = true
		s.st.Visited = append(s.st.Visited, u)
		if u == s.p.Goal {
			s.status = search.Found
			return s.status
		}

		g := s.st.Cost[u] + 1
		for v := range s.p.Grid.Neighbors(u, s.st.Directions, s.st.IsClosed) {
			if g >= s.st.G(v) {
				continue
			}
			s.st.Cost[v] = g
			s.st.Pred[v] = u
			s.push(v, g)
		}
		return search.Continue
	}

	s.status = search.Exhausted
	return s.status
}
