package dijkstra

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "dijkstra"

// Searcher holds the mutable state for a single Dijkstra execution.
type Searcher struct {
	opts   search.Options                     // hooks; the heuristic is unused
	err    error                              // option violation recorded by New
	p      search.Problem                     // current request
	st     *search.State                      // g-scores, predecessors, closed set
	pq     *frontier.PriorityQueue[grid.Coord] // min-heap keyed by g
	status search.Status
}

// New returns a Dijkstra searcher. An invalid option is reported by Init.
func New(opts ...search.Option) *Searcher {
	o, err := search.Apply(opts...)
	return &Searcher{opts: o, err: err, status: search.Exhausted}
}

// Name implements search.Strategy.
func (s *Searcher) Name() string { return Name }

// State implements search.Strategy.
func (s *Searcher) State() *search.State { return s.st }

// Init sets g(start)=0, every other g to +∞ (implicit), and pushes the start.
func (s *Searcher) Init(p search.Problem) error {
	// 1) Options and request must be valid.
	if s.err != nil {
		return s.err
	}
	if err := search.Validate(p); err != nil {
		return err
	}

	// 2) Fresh state; distance to the source is zero.
	s.p = p
	s.st = search.NewState(p.Directions.Clone(), 0)
	s.pq = frontier.NewPriorityQueue[grid.Coord](0)
	s.status = search.Continue
	s.st.Cost[p.Start] = 0

	// 3) Seed the heap with the source.
	s.opts.OnEnqueue(p.Start, 0)
	s.pq.Push(p.Start, 0)
	return nil
}

// Step extracts the closest unclosed cell and relaxes its neighbors.
//
// Termination:
//
//   - The goal is extracted: Found.
//   - The heap holds only stale entries or nothing: Exhausted.
func (s *Searcher) Step() search.Status {
	if s.status.Terminal() {
		return s.status
	}

	for !s.pq.Empty() {
		// 1) Pop the smallest-distance item from the heap.
		u, _ := s.pq.PopMin()
		s.opts.OnDequeue(u)

		// 2) Skip stale entries and cells that turned into obstacles.
		if s.st.Closed[u] || s.p.Grid.IsObstacle(u) {
			continue
		}

		// 3) Close u. Its distance is now final.
		s.st.Closed[u] = true
		s.st.Visited = append(s.st.Visited, u)
		if u == s.p.Goal {
			s.status = search.Found
			return s.status
		}

		// 4) Relax all open neighbors.
		s.relax(u)
		return search.Continue
	}

	s.status = search.Exhausted
	return s.status
}

// relax pushes every unclosed neighbor v whose distance improves through u.
func (s *Searcher) relax(u grid.Coord) {
	newDist := s.st.Cost[u] + 1
	for v := range s.p.Grid.Neighbors(u, s.st.Directions, s.st.IsClosed) {
		// Not strictly better: keep the earlier predecessor.
		if newDist >= s.st.G(v) {
			continue
		}
		s.st.Cost[v] = newDist
		s.st.Pred[v] = u

		// Lazy decrease-key: the old entry stays and is skipped when popped.
		s.opts.OnEnqueue(v, newDist)
		s.pq.Push(v, newDist)
	}
}
