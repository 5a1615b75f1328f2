package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Validate checks p before a run. Every failure wraps ErrInvalidRequest and
// the specific cause, so both match with errors.Is.
func Validate(p Problem) error {
	if p.Grid == nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNilGrid)
	}
	if err := checkCell(p.Grid, "start", p.Start); err != nil {
		return err
	}
	if err := checkCell(p.Grid, "goal", p.Goal); err != nil {
		return err
	}
	if err := p.Directions.Validate(p.Grid.Dims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func checkCell(g *grid.Grid, role string, c grid.Coord) error {
	switch {
	case c.Dims() != g.Dims:
		return fmt.Errorf("%w: %w: %s %v has %d components, grid has %d",
			ErrInvalidRequest, ErrDimsMismatch, role, c, c.Dims(), g.Dims)
	case !g.InBounds(c):
		return fmt.Errorf("%w: %w: %s %v outside [0,%d)", ErrInvalidRequest, ErrOutOfBounds, role, c, g.Size)
	case g.IsObstacle(c):
		return fmt.Errorf("%w: %w: %s %v", ErrInvalidRequest, ErrBlocked, role, c)
	}
	return nil
}
