// SPDX-License-Identifier: MIT
// Package: AdaptableDFA/generator
//
// options.go: functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// Default length range for Candidate.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 10
)

// Option customizes a Generator before first use.
type Option func(*config)

// config aggregates all knobs of a Generator.
type config struct {
	rng       *rand.Rand
	minLength int
	maxLength int
}

// newConfig resolves deterministic defaults and applies options in order.
// Without WithSeed/WithRand the RNG is seeded from the wall clock.
func newConfig(opts ...Option) config {
	cfg := config{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLengthRange bounds the lengths Candidate draws, inclusive.
// Panics if min < 0 or max < min.
func WithLengthRange(min, max int) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("generator: WithLengthRange(%d,%d)", min, max))
	}
	return func(c *config) {
		c.minLength, c.maxLength = min, max
	}
}
