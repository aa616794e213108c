// SPDX-License-Identifier: MIT
// Package: resample/split
//
// options.go: functional options for the randomized generators.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order;
//     later options override earlier ones.
//   • Option constructors panic on meaningless inputs (WithRand(nil)).
//     Generators themselves never panic.
//   • No hidden globals: the RNG always flows through config.

package split

import "math/rand"

// DefaultSeed seeds the private generator when neither WithSeed nor
// WithRand is supplied.
const DefaultSeed int64 = 0

// Option customizes a generator call by mutating its config.
type Option func(*config)

// config holds the resolved knobs of one generator call.
type config struct {
	rng     *rand.Rand // never nil after newConfig
	shuffle bool       // KFold only
}

// newConfig applies opts over the defaults and resolves the RNG.
func newConfig(opts ...Option) config {
	cfg := config{shuffle: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed gives the call a private *rand.Rand seeded with seed.
// Use it to lock outcomes in tests and recipes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the call draw from r, advancing the caller's stream.
// A *rand.Rand is not safe for concurrent use; do not share r between
// goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("split: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithShuffle controls whether KFold permutes the indices before cutting
// folds. With shuffle disabled the folds are contiguous runs of [0,n) and
// no randomness is consumed. Other generators ignore it.
func WithShuffle(shuffle bool) Option {
	return func(c *config) {
		c.shuffle = shuffle
	}
}
