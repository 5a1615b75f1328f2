package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrBrokenPath is returned by CheckPath for a path that is not a valid walk.
var ErrBrokenPath = errors.New("search: path is not a valid walk")

// Reconstruct walks pred backwards from goal to start and returns the path in
// start→goal order.
//
//   - start == goal: [start], even though start has no predecessor.
//   - goal has no predecessor: empty path. Not an error.
//   - the chain loops or ends somewhere other than start: empty path.
//
// Complexity: O(L) time and memory for a path of L cells.
func Reconstruct(pred map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	if start == goal {
		return []grid.Coord{start}
	}
	if _, ok := pred[goal]; !ok {
		return nil
	}

	st := frontier.NewStack[grid.Coord]()
	cur := goal
	for steps := 0; cur != start; steps++ {
		if steps > len(pred) {
			return nil // cycle
		}
		st.Push(cur)
		prev, ok := pred[cur]
		if !ok {
			return nil
		}
		cur = prev
	}
	st.Push(start)

	path := make([]grid.Coord, 0, st.Len())
	for !st.Empty() {
		path = append(path, st.Pop())
	}
	return path
}

// CheckPath verifies that path is a walk on g: every cell open, and every
// consecutive pair one move of dirs apart. An empty path is valid.
func CheckPath(g *grid.Grid, path []grid.Coord, dirs grid.Directions) error {
	for i, c := range path {
		if !g.Open(c) {
			return fmt.Errorf("%w: cell %d %v is not open", ErrBrokenPath, i, c)
		}
		if i == 0 {
			continue
		}
		if d := c.Sub(path[i-1]); !dirs.Contains(d) {
			return fmt.Errorf("%w: move %v→%v (%v) not in direction set", ErrBrokenPath, path[i-1], c, d)
		}
	}
	return nil
}

// Solve initializes s with p, steps it to a terminal status and returns the
// reconstructed path. It is the synchronous counterpart of the stepper, with
// no cancellation or dynamic obstacles.
func Solve(s Strategy, p Problem) ([]grid.Coord, Status, error) {
	if err := s.Init(p); err != nil {
		return nil, Exhausted, err
	}
	st := s.Step()
	for !st.Terminal() {
		st = s.Step()
	}
	if st != Found {
		return nil, st, nil
	}
	return s.State().Path(p.Start, p.Goal), st, nil
}
