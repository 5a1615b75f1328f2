package bfs

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "bfs"

// queueItem pairs a cell with its depth from the start.
type queueItem struct {
	cell  grid.Coord
	depth int
}

// Searcher is a breadth-first search.Strategy.
type Searcher struct {
	opts   search.Options
	err    error
	p      search.Problem
	st     *search.State
	queue  frontier.Container[queueItem]
	status search.Status
}

// New returns a BFS searcher. An invalid option is reported by Init.
func New(opts ...search.Option) *Searcher {
	o, err := search.Apply(opts...)
	return &Searcher{opts: o, err: err, status: search.Exhausted}
}

// Name implements search.Strategy.
func (s *Searcher) Name() string { return Name }

// State implements search.Strategy.
func (s *Searcher) State() *search.State { return s.st }

// Init validates p and resets all per-run state.
func (s *Searcher) Init(p search.Problem) error {
	if s.err != nil {
		return s.err
	}
	if err := search.Validate(p); err != nil {
		return err
	}
	s.p = p
	s.st = search.NewState(p.Directions.Clone(), 0)
	s.queue = frontier.NewQueue[queueItem]()
	s.status = search.Continue
	s.enqueue(p.Start, 0)
	return nil
}

// enqueue marks c discovered at depth d and appends it to the queue.
// The caller has already recorded c's predecessor.
func (s *Searcher) enqueue(c grid.Coord, d int) {
	s.st.Cost[c] = float64(d)
	s.opts.OnEnqueue(c, float64(d))
	s.queue.Push(queueItem{cell: c, depth: d})
}

// discovered reports whether c was ever enqueued.
func (s *Searcher) discovered(c grid.Coord) bool {
	_, ok := s.st.Cost[c]
	return ok
}

// Step dequeues one cell, tests it against the goal and enqueues its
// undiscovered neighbors. Queued cells that became obstacles since they were
// enqueued are dropped without counting as a step.
func (s *Searcher) Step() search.Status {
	if s.status.Terminal() {
		return s.status
	}

	var item queueItem
	for {
		if s.queue.Empty() {
			s.status = search.Exhausted
			return s.status
		}
		item = s.queue.Pop()
		s.opts.OnDequeue(item.cell)
		if !s.p.Grid.IsObstacle(item.cell) {
			break
		}
	}
	s.st.Closed[item.cell] = true
	s.st.Visited = append(s.st.Visited, item.cell)

	if item.cell == s.p.Goal {
		s.status = search.Found
		return s.status
	}

	for nbr := range s.p.Grid.Neighbors(item.cell, s.st.Directions, s.discovered) {
		s.st.Pred[nbr] = item.cell
		s.enqueue(nbr, item.depth+1)
	}
	return search.Continue
}
