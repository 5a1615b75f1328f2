package stepper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_runs_total",
		Help: "Finished search runs by strategy and outcome",
	}, []string{"strategy", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_run_duration_seconds",
		Help:    "Wall time of finished search runs",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})

	visitedCells = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_visited_cells",
		Help:    "Cells removed from the frontier per run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"strategy"})

	injectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_injected_obstacles_total",
		Help: "Obstacles inserted during runs",
	}, []string{"strategy"})
)

func observe(res Result) {
	runsTotal.WithLabelValues(res.Strategy, res.Outcome.String()).Inc()
	runDuration.WithLabelValues(res.Strategy).Observe(res.Elapsed.Seconds())
	visitedCells.WithLabelValues(res.Strategy).Observe(float64(res.VisitedCount))
	if n := len(res.Injected); n > 0 {
		injectedTotal.WithLabelValues(res.Strategy).Add(float64(n))
	}
}

var (
	runTracer  trace.Tracer
	tracerOnce sync.Once
)

// tracer returns the package tracer, created on first use so that a
// provider installed by main is picked up.
func tracer() trace.Tracer {
	tracerOnce.Do(func() {
		runTracer = otel.Tracer("github.com/katalvlaran/gridpath/stepper")
	})
	return runTracer
}
