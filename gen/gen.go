// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// gen.go — the Gen generator space: resolved configuration + RNG.
//
// Design:
//   - Gen is the single source of randomness and datasets for every
//     factory; there is no package-level mutable state.
//   - Defaults: time-seeded RNG (non-deterministic unless WithSeed or
//     WithRand is applied), dataset.Default() tables.

package gen

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/randgen/dataset"
)

// Gen is a generator space: it owns the random source and the lookup
// tables its factories draw from. Build one with New; a Gen and its
// thunks are not safe for concurrent use.
type Gen struct {
	cfg config
}

// New builds a generator space, applying options in order
// (later overrides earlier).
// Complexity: O(len(opts)) plus default-dataset copy when none is given.
func New(opts ...Option) *Gen {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve defaults the options left unset.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !cfg.dataSet {
		cfg.data = dataset.Default()
	}

	return &Gen{cfg: cfg}
}

// Rand exposes the space's random source, letting collaborators (the
// series package, custom generators) draw from the same stream the
// built-in factories use.
func (g *Gen) Rand() *rand.Rand {
	return g.cfg.rng
}

// intBetween draws a uniform integer in [min, max] inclusive by
// sampling a uniform real in [min, max+1) and flooring. max is a
// reachable endpoint; min > max is tolerated and yields a nonsensical
// but non-crashing draw (permissive by contract).
func (g *Gen) intBetween(min, max int64) int64 {
	span := float64(max-min) + 1
	return int64(math.Floor(float64(min) + g.cfg.rng.Float64()*span))
}
