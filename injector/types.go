package injector

import (
	"errors"
	"math/rand"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("injector: invalid option supplied")
)

// DefaultProbability is the per-step insertion probability.
const DefaultProbability = 0.05

// maxDraws bounds the rejection sampling in MaybeInject.
const maxDraws = 16

// Options configures an Injector.
type Options struct {
	Probability float64
	Seed        int64
	Rand        *rand.Rand

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns probability 0.05 and the default seed.
func DefaultOptions() Options {
	return Options{Probability: DefaultProbability}
}

// WithProbability sets the chance, in [0,1], that MaybeInject inserts an
// obstacle.
func WithProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || p != p {
			o.err = ErrOptionViolation
			return
		}
		o.Probability = p
	}
}

// WithSeed selects the random stream. Seed 0 means the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the random source directly; it overrides WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Rand = r
	}
}
