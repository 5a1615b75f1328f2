// Command gridpath runs one grid search and prints the explored map and a
// summary.
//
// Usage:
//
//	gridpath -algo astar -size 10 -start 0,0 -goal 9,9 -random 10 -dirs diagonal
//
// Map legend (2D, one layer per z in 3D): S start, G goal, * path,
// o visited, + injected obstacle, # obstacle, . free.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/injector"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	algo      string
	size      int
	dims      int
	start     string
	goal      string
	obstacles string
	random    int
	seed      int64
	dirs      string
	delay     time.Duration
	dynamic   float64
	strict    bool
	timeout   time.Duration
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.algo, "algo", "astar", "strategy: "+strings.Join(algorithms.Names(), ", "))
	fs.IntVar(&c.size, "size", 10, "grid side length")
	fs.IntVar(&c.dims, "dims", 2, "grid dimensions (2 or 3)")
	fs.StringVar(&c.start, "start", "", "start cell, e.g. 0,0 (default origin)")
	fs.StringVar(&c.goal, "goal", "", "goal cell (default far corner)")
	fs.StringVar(&c.obstacles, "obstacles", "", "obstacle cells separated by ';', e.g. 1,1;2,3")
	fs.IntVar(&c.random, "random", 0, "number of random obstacles to scatter")
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 = fixed default)")
	fs.StringVar(&c.dirs, "dirs", "axis", "direction set: axis, diagonal, mixed")
	fs.DurationVar(&c.delay, "delay", 0, "pause between steps")
	fs.Float64Var(&c.dynamic, "dynamic", 0, "per-step probability of a new obstacle (dstar-lite, dstar-lite-biased, hybrid)")
	fs.BoolVar(&c.strict, "strict", false, "use the admissible heuristic with diagonal moves")
	fs.DurationVar(&c.timeout, "timeout", 0, "cancel the run after this long (0 = none)")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, nil
}

// parseCoord reads "x,y" or "x,y,z".
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	comps := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		comps = append(comps, v)
	}
	return grid.Of(comps)
}

func parseCoordOr(s string, v, dims int) (grid.Coord, error) {
	if s == "" {
		if dims == 3 {
			return grid.XYZ(v, v, v), nil
		}
		return grid.XY(v, v), nil
	}
	return parseCoord(s)
}

func buildProblem(c config, in *injector.Injector) (search.Problem, error) {
	obs := grid.NewObstacleSet()
	for _, s := range strings.Split(c.obstacles, ";") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		cell, err := parseCoord(s)
		if err != nil {
			return search.Problem{}, err
		}
		obs.Add(cell)
	}
	g, err := grid.New(c.size, c.dims, obs)
	if err != nil {
		return search.Problem{}, err
	}
	dirs, err := grid.ParseDirections(c.dirs, c.dims)
	if err != nil {
		return search.Problem{}, err
	}
	start, err := parseCoordOr(c.start, 0, c.dims)
	if err != nil {
		return search.Problem{}, err
	}
	goal, err := parseCoordOr(c.goal, c.size-1, c.dims)
	if err != nil {
		return search.Problem{}, err
	}
	in.Scatter(g, c.random, start, goal)
	return search.Problem{Start: start, Goal: goal, Grid: g, Directions: dirs}, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	in, err := injector.New(injector.WithSeed(c.seed), injector.WithProbability(c.dynamic))
	if err != nil {
		logger.Error("bad -dynamic", slog.Float64("dynamic", c.dynamic), slog.String("error", err.Error()))
		return 2
	}
	p, err := buildProblem(c, in)
	if err != nil {
		logger.Error("bad grid", slog.String("error", err.Error()))
		return 2
	}

	var searchOpts []search.Option
	if c.strict {
		searchOpts = append(searchOpts, search.WithStrictHeuristic())
	}
	strategy, err := algorithms.New(c.algo, searchOpts...)
	if err != nil {
		logger.Error("bad -algo", slog.String("error", err.Error()))
		return 2
	}
	if err := algorithms.CheckDynamic(c.algo, c.dynamic); err != nil {
		logger.Error("bad -dynamic", slog.String("error", err.Error()))
		return 2
	}

	opts := []stepper.Option{stepper.WithDelay(c.delay), stepper.WithLogger(logger)}
	if c.dynamic > 0 {
		opts = append(opts, stepper.WithInjector(in))
	}
	sp, err := stepper.New(strategy, p, opts...)
	if err != nil {
		logger.Error("invalid request", slog.String("error", err.Error()))
		return 2
	}

	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	res, err := sp.Run(ctx)
	if err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		return 1
	}

	fmt.Fprint(stdout, render(p, res))
	fmt.Fprintf(stdout, "algorithm: %s\noutcome:   %s\npath:      %d cells\nvisited:   %d\nsteps:     %d\nelapsed:   %s\n",
		res.Strategy, res.Outcome, len(res.Path), res.VisitedCount, res.Steps, res.Elapsed.Round(time.Microsecond))
	if len(res.Injected) > 0 {
		fmt.Fprintf(stdout, "injected:  %d\n", len(res.Injected))
	}
	if !res.Admissible {
		fmt.Fprintln(stdout, "note:      heuristic may overestimate; path may not be shortest")
	}
	if res.Stale {
		fmt.Fprintln(stdout, "note:      path crosses an obstacle added after it was expanded")
	}
	if res.Outcome != stepper.Found {
		return 1
	}
	return 0
}

// render draws the final map. Later marks win: visited, injected, path,
// start and goal.
func render(p search.Problem, res stepper.Result) string {
	marks := make(map[grid.Coord]rune, len(res.Visited))
	for _, c := range res.Visited {
		marks[c] = 'o'
	}
	for _, c := range res.Injected {
		marks[c] = '+'
	}
	for _, c := range res.Path {
		marks[c] = '*'
	}
	marks[p.Start] = 'S'
	marks[p.Goal] = 'G'
	return p.Grid.Render(marks)
}
