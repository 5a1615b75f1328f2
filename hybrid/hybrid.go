package hybrid

import (
	"math"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of this strategy.
const Name = "hybrid"

// DefaultRadius is the distance below which an obstacle repels.
const DefaultRadius = 2.0

// New returns a hybrid searcher with DefaultRadius.
func New(opts ...search.Option) *astar.Searcher {
	return NewWithRadius(DefaultRadius, opts...)
}

// NewWithRadius returns a hybrid searcher whose obstacles repel within radius.
// A radius <= 0 disables repulsion.
func NewWithRadius(radius float64, opts ...search.Option) *astar.Searcher {
	return astar.NewWithBias(Name, func(p search.Problem) astar.Bias {
		return Field(p.Grid, p.Goal, radius)
	}, opts...)
}

// Field returns the potential-field bias toward goal on g. Obstacles are read
// when the bias is evaluated, so cells queued after an obstacle appears see it.
func Field(g *grid.Grid, goal grid.Coord, radius float64) astar.Bias {
	reach := int(math.Ceil(radius))
	depth := 0
	if g.Dims == 3 {
		depth = reach
	}
	return func(n grid.Coord) float64 {
		ax, ay, az := float64(goal.X-n.X), float64(goal.Y-n.Y), float64(goal.Z-n.Z)
		var rx, ry, rz float64
		for dz := -depth; dz <= depth; dz++ {
			for dy := -reach; dy <= reach; dy++ {
				for dx := -reach; dx <= reach; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					o := n.Add(offset(g.Dims, dx, dy, dz))
					if !g.IsObstacle(o) {
						continue
					}
					d2 := float64(dx*dx + dy*dy + dz*dz)
					if d2 >= radius*radius {
						continue
					}
					// (n-o)/d² with n-o = -(dx,dy,dz)
					rx -= float64(dx) / d2
					ry -= float64(dy) / d2
					rz -= float64(dz) / d2
				}
			}
		}
		fx, fy, fz := ax-rx, ay-ry, az-rz
		return math.Sqrt(fx*fx + fy*fy + fz*fz)
	}
}

func offset(dims, dx, dy, dz int) grid.Coord {
	if dims == 3 {
		return grid.XYZ(dx, dy, dz)
	}
	return grid.XY(dx, dy)
}
