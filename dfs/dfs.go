package dfs

import (
	"slices"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "dfs"

// stackItem is one push: the cell and the depth it was discovered at.
type stackItem struct {
	cell  grid.Coord
	depth int
}

// Searcher is a depth-first search.Strategy.
type Searcher struct {
	opts   search.Options
	err    error
	p      search.Problem
	st     *search.State
	stack  frontier.Container[stackItem]
	buf    []grid.Coord
	status search.Status
}

// New returns a DFS searcher. An invalid option is reported by Init.
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
	s.stack = frontier.NewStack[stackItem]()
	s.status = search.Continue
	s.push(p.Start, 0)
	return nil
}

func (s *Searcher) push(c grid.Coord, d int) {
	s.st.Cost[c] = float64(d)
	s.opts.OnEnqueue(c, float64(d))
	s.stack.Push(stackItem{cell: c, depth: d})
}

// Step pops the top open, unclosed cell, closes it and pushes its unclosed
// neighbors.
func (s *Searcher) Step() search.Status {
	if s.status.Terminal() {
		return s.status
	}

	var item stackItem
	for {
		if s.stack.Empty() {
			s.status = search.Exhausted
			return s.status
		}
		item = s.stack.Pop()
		s.opts.OnDequeue(item.cell)
		if !s.st.Closed[item.cell] && !s.p.Grid.IsObstacle(item.cell) {
			break
		}
	}

	s.st.Closed[item.cell] = true
	s.st.Visited = append(s.st.Visited, item.cell)
	if item.cell == s.p.Goal {
		s.status = search.Found
		return s.status
	}

	s.buf = slices.AppendSeq(s.buf[:0], s.p.Grid.Neighbors(item.cell, s.st.Directions, s.st.IsClosed))
	for i := len(s.buf) - 1; i >= 0; i-- {
		nbr := s.buf[i]
		s.st.Pred[nbr] = item.cell
		s.push(nbr, item.depth+1)
	}
	return search.Continue
}
