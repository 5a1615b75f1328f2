// Package stepper drives a search.Strategy one expansion at a time.
//
// A Stepper owns one run: it initializes the strategy, advances it with
// Next or Run, publishes the cells each step visited through an OnStep hook,
// optionally lets an injector.Injector drop obstacles between steps (and
// tells replanning strategies about them), and assembles a Result once the
// run ends.
//
// Outcomes are values, not errors:
//
//   - Found:     the goal was reached; Result.Path is start..goal.
//   - NotFound:  the frontier emptied; Result.Path is empty.
//   - Cancelled: Cancel was called or the context ended; Result keeps the
//     partial Visited list.
//
// Run sleeps WithDelay between steps. The sleep is the only place a run
// waits, and Cancel or context cancellation interrupts it.
//
// Concurrency: the strategy, its state and the grid's obstacle set are
// touched only by the goroutine calling Next or Run. Cancel is safe from
// any goroutine.
//
// Observability: every finished run increments Prometheus counters and
// histograms (see metrics.go), is wrapped in an OpenTelemetry span named
// "stepper.Run", and is logged at Debug level through log/slog.
package stepper
