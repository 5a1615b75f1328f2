package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "bellman-ford"

// ErrBadWeight is returned by Init for a NaN or infinite edge weight.
var ErrBadWeight = errors.New("bellmanford: edge weight must be finite")

// Edge is a directed weighted move used in edge mode.
type Edge struct {
	From, To grid.Coord
	Weight   float64
}

// Searcher is a Bellman-Ford search.Strategy.
type Searcher struct {
	opts  search.Options
	err   error
	edges []Edge
	adj   map[grid.Coord][]Edge

	p      search.Problem
	st     *search.State
	order  []grid.Coord // cells with finite cost, in discovery order
	swept  map[grid.Coord]bool
	idx    int  // next position in order for this pass
	pass   int  // 1-based current pass
	limit  int  // V-1
	dirty  bool // current pass improved some cost
	negCyc bool
	status search.Status
}

// New returns a Bellman-Ford searcher over grid moves.
func New(opts ...search.Option) *Searcher {
	o, err := search.Apply(opts...)
	return &Searcher{opts: o, err: err, status: search.Exhausted}
}

// WithEdges returns a Bellman-Ford searcher that relaxes the given edges
// instead of the grid's neighbor moves.
func WithEdges(edges []Edge, opts ...search.Option) *Searcher {
	s := New(opts...)
	s.edges = append([]Edge(nil), edges...)
	return s
}

// Name implements search.Strategy.
func (s *Searcher) Name() string { return Name }

// State implements search.Strategy.
func (s *Searcher) State() *search.State { return s.st }

// NegativeCycle reports whether the last run stopped on a negative cycle.
func (s *Searcher) NegativeCycle() bool { return s.negCyc }

// Passes returns the number of passes started in the current run.
func (s *Searcher) Passes() int { return s.pass }

// Init validates p and sets every cost to +∞ except the start.
func (s *Searcher) Init(p search.Problem) error {
	if s.err != nil {
		return s.err
	}
	if err := search.Validate(p); err != nil {
		return err
	}
	s.adj = nil
	if s.edges != nil {
		s.adj = make(map[grid.Coord][]Edge, len(s.edges))
		for i, e := range s.edges {
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return fmt.Errorf("%w: edge %d %v→%v", ErrBadWeight, i, e.From, e.To)
			}
			s.adj[e.From] = append(s.adj[e.From], e)
		}
	}

	s.p = p
	s.st = search.NewState(p.Directions.Clone(), 0)
	s.st.Closed = nil
	s.swept = make(map[grid.Coord]bool)
	s.order = s.order[:0]
	s.idx, s.pass, s.dirty, s.negCyc = 0, 1, false, false
	s.limit = p.Grid.CellCount() - 1
	s.status = search.Continue

	s.st.Cost[p.Start] = 0
	s.discover(p.Start, 0)
	return nil
}

// discover appends c to the sweep order the first time it gets a finite cost.
func (s *Searcher) discover(c grid.Coord, cost float64) {
	s.opts.OnEnqueue(c, cost)
	s.order = append(s.order, c)
}

// Step relaxes the moves out of the next cell of the current pass.
func (s *Searcher) Step() search.Status {
	if s.status.Terminal() {
		return s.status
	}
	if s.p.Start == s.p.Goal {
		s.visit(s.p.Start)
		s.status = search.Found
		return s.status
	}

	u := s.order[s.idx]
	s.idx++
	s.opts.OnDequeue(u)
	if !s.p.Grid.IsObstacle(u) {
		s.visit(u)
		s.relaxFrom(u)
	}

	if s.idx < len(s.order) {
		return search.Continue
	}
	return s.endPass()
}

func (s *Searcher) visit(u grid.Coord) {
	if !s.swept[u] {
		s.swept[u] = true
		s.st.Visited = append(s.st.Visited, u)
	}
}

// relaxFrom applies every move out of u.
func (s *Searcher) relaxFrom(u grid.Coord) {
	gu := s.st.G(u)
	relax := func(v grid.Coord, w float64) {
		nd := gu + w
		if nd >= s.st.G(v) {
			return
		}
		_, seen := s.st.Cost[v]
		s.st.Cost[v] = nd
		s.st.Pred[v] = u
		if !seen {
			s.discover(v, nd)
		}
		s.dirty = true
	}

	if s.adj == nil {
		for v := range s.p.Grid.Neighbors(u, s.st.Directions, nil) {
			relax(v, 1)
		}
		return
	}
	for _, e := range s.adj[u] {
		if s.p.Grid.Open(e.To) {
			relax(e.To, e.Weight)
		}
	}
}

// endPass closes the current pass and either starts the next or finishes.
func (s *Searcher) endPass() search.Status {
	if s.dirty && s.pass < s.limit {
		s.pass++
		s.idx = 0
		s.dirty = false
		return search.Continue
	}
	if s.dirty && s.adj != nil && s.detectNegativeCycle() {
		s.negCyc = true
		s.status = search.Exhausted
		return s.status
	}
	if math.IsInf(s.st.G(s.p.Goal), 1) {
		s.status = search.Exhausted
	} else {
		s.status = search.Found
	}
	return s.status
}

// detectNegativeCycle runs the V-th pass without recording predecessors.
func (s *Searcher) detectNegativeCycle() bool {
	for _, u := range s.order {
		gu := s.st.G(u)
		for _, e := range s.adj[u] {
			if s.p.Grid.Open(e.To) && gu+e.Weight < s.st.G(e.To) {
				return true
			}
		}
	}
	return false
}
