// SPDX-License-Identifier: MIT
// Package: randgen/series
//
// params.go — shared parameter coercion and sampling helpers.
//
// Contract:
//   - Arguments arrive as gen.Value (possibly generators); callers have
//     already resolved them. Coercion is permissive: non-numeric input
//     degrades to 0, never an error or panic.

package series

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/randgen/gen"
)

// toFloat coerces a resolved argument into float64. Unrecognized types
// degrade silently to 0 per the permissive error policy.
func toFloat(v gen.Value) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case uint:
		return float64(t)
	default:
		return 0
	}
}

// uniform draws a continuous uniform real in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween draws a uniform integer in [lo, hi] inclusive using the
// same floor-over-[lo,hi+1) sampling the gen package uses for Number,
// here over float bounds.
func intBetween(rng *rand.Rand, lo, hi float64) float64 {
	return math.Floor(lo + rng.Float64()*(hi-lo+1))
}
