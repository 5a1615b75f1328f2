// Package injector inserts obstacles into a grid at random.
//
// Two uses:
//
//   - MaybeInject: called by the stepper between steps. With probability p
//     it drops one obstacle on a random free cell that is neither start nor
//     goal, simulating a changing environment.
//   - Scatter: seeds n random obstacles before a run.
//
// Randomness is explicit. An Injector owns one *rand.Rand built from a
// seed (seed 0 selects a fixed default), so a run with the same seed and the
// same strategy reproduces the same obstacles. No time-based sources are
// used anywhere.
//
// Concurrency: an Injector is not safe for concurrent use. Give each run
// its own.
package injector
