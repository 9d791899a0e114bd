// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// options.go — functional options for constructing a generator space.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     thunks themselves never panic at runtime.
//   - Determinism is explicit: seed via WithSeed or inject via WithRand.
//   - No hidden globals; everything flows through the resolved config.

package gen

import (
	"math/rand"

	"github.com/katalvlaran/randgen/dataset"
)

// Option customizes a generator space by mutating its config before the
// Gen is built. Applying N options costs O(N) time.
type Option func(*config)

// config aggregates the knobs shared by every factory on a Gen.
type config struct {
	// RNG consumed by all sampling; nil until resolved in New.
	rng *rand.Rand
	// Lookup tables for Country/FirstName/LastName.
	data dataset.Datasets
	// Tracks whether WithDatasets was applied (zero Datasets is legal).
	dataSet bool
}

// WithSeed creates a deterministic *rand.Rand from seed.
// Use in tests and fixtures to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDatasets injects the lookup tables read by Country, FirstName and
// LastName. The value is stored as given; an empty table simply makes
// the corresponding generator yield nil.
// Complexity: O(1).
func WithDatasets(ds dataset.Datasets) Option {
	return func(c *config) {
		c.data = ds
		c.dataSet = true
	}
}
