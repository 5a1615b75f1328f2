package algorithms

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bellmanford"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/dstarlite"
	"github.com/katalvlaran/gridpath/hybrid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm is returned by New for a name that is not registered.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrStaticOnly is returned by CheckDynamic for a strategy that cannot
	// run with obstacles appearing mid-run.
	ErrStaticOnly = errors.New("algorithms: strategy does not support dynamic obstacles")
)

// Constructor builds a fresh strategy.
type Constructor func(opts ...search.Option) search.Strategy

var registry = map[string]Constructor{
	bfs.Name:             func(o ...search.Option) search.Strategy { return bfs.New(o...) },
	dfs.Name:             func(o ...search.Option) search.Strategy { return dfs.New(o...) },
	dijkstra.Name:        func(o ...search.Option) search.Strategy { return dijkstra.New(o...) },
	astar.Name:           func(o ...search.Option) search.Strategy { return astar.New(o...) },
	bellmanford.Name:     func(o ...search.Option) search.Strategy { return bellmanford.New(o...) },
	dstarlite.Name:       func(o ...search.Option) search.Strategy { return dstarlite.New(o...) },
	dstarlite.NameBiased: func(o ...search.Option) search.Strategy { return dstarlite.NewGoalBiased(o...) },
	hybrid.Name:          func(o ...search.Option) search.Strategy { return hybrid.New(o...) },
}

// New builds the strategy registered under name (case-insensitive).
func New(name string, opts ...search.Option) (search.Strategy, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return ctor(opts...), nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Replanning reports whether the named strategy repairs its state when
// obstacles appear mid-run (implements search.Replanner).
func Replanning(name string) bool {
	s, err := New(name)
	if err != nil {
		return false
	}
	_, ok := s.(search.Replanner)
	return ok
}

// Dynamic reports whether the named strategy may run with obstacles injected
// mid-run: the replanning D*-Lite variants and the hybrid search.
func Dynamic(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == hybrid.Name || Replanning(n)
}

// CheckDynamic returns ErrStaticOnly when probability is positive and the
// named strategy is not Dynamic.
func CheckDynamic(name string, probability float64) error {
	if probability > 0 && !Dynamic(name) {
		return fmt.Errorf("%w: %q (use one of %s)", ErrStaticOnly, name, strings.Join(dynamicNames(), ", "))
	}
	return nil
}

func dynamicNames() []string {
	var out []string
	for _, n := range Names() {
		if Dynamic(n) {
			out = append(out, n)
		}
	}
	return out
}
