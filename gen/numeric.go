// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// numeric.go — the numeric leaf generators Number and Float.
//
// Contract:
//   - Number samples [min, max] INCLUSIVE: a uniform real in [min,max+1)
//     floored, so max is a reachable endpoint rather than max+1.
//   - Float samples [min, max) and TRUNCATES (never rounds) to the
//     requested precision by scale/floor/rescale.
//   - No range validation by design: min > max degrades silently into a
//     negative-width draw instead of an error or panic.

package gen

import "math"

// DefaultPrecision is the fractional-digit count Float callers usually
// want; pass it when no domain-specific precision applies.
const DefaultPrecision = 2

// Number returns a thunk producing a uniformly distributed integer in
// the inclusive range [min, max].
// Complexity: O(1) per invocation.
func (g *Gen) Number(min, max int) Thunk {
	return func() Value {
		return int(g.intBetween(int64(min), int64(max)))
	}
}

// Float returns a thunk producing a uniformly distributed real in
// [min, max), truncated to precision fractional digits. Truncation is
// floor-based: 1.239 at precision 2 becomes 1.23, never 1.24.
// Complexity: O(1) per invocation.
func (g *Gen) Float(min, max float64, precision int) Thunk {
	// The scale is fixed for the thunk's lifetime.
	scale := math.Pow(10, float64(precision))
	return func() Value {
		v := min + g.cfg.rng.Float64()*(max-min)
		return math.Floor(v*scale) / scale
	}
}
