// SPDX-License-Identifier: MIT
// Package: randgen/series
//
// wave.go — sine synthesizer emitting one point per invocation.
//
// Model (step index i starts at 0 and increments per call):
//   - amplitude = size/2
//   - frequency = τ·repeat/count          (τ = 2π)
//   - phase     = shift + π/2
//   - yᵢ        = amplitude·sin(frequency·i − phase) + amplitude + offset
//
// Contract:
//   - All five arguments are resolved via gen.Resolve ONCE at
//     construction.
//   - offset is drawn once per series, uniformly over the inclusive
//     integer range [-noise/2, noise/2] — a fixed vertical jitter, not
//     per-point noise. With noise=0 the series is fully deterministic.

package series

import (
	"math"

	"github.com/katalvlaran/randgen/gen"
)

// Precompute 2π to avoid repeated multiplications in the loop.
const tau = 2.0 * math.Pi

// Wave returns a thunk emitting the next sine-series value per
// invocation. count is the number of samples per repeat·period, size
// the peak-to-peak span, shift a phase offset in radians, noise the
// span of the per-series vertical jitter.
// Complexity: O(1) per invocation.
func Wave(g *gen.Gen, count, size, repeat, shift, noise gen.Value) gen.Thunk {
	// Resolve all configuration once; generators fix one drawn value.
	n := toFloat(gen.Resolve(count))
	span := toFloat(gen.Resolve(size))
	rep := toFloat(gen.Resolve(repeat))
	sh := toFloat(gen.Resolve(shift))
	jitter := toFloat(gen.Resolve(noise))

	amplitude := span / 2
	frequency := tau * rep / n
	phase := sh + math.Pi/2

	// One vertical offset for the whole series (zero when noise=0).
	half := jitter / 2
	offset := intBetween(g.Rand(), -half, half)

	i := 0
	return func() gen.Value {
		v := amplitude*math.Sin(frequency*float64(i)-phase) + amplitude + offset
		i++

		return v
	}
}

// WaveDefault is Wave with repeat=1, shift=0 and noise=0.
func WaveDefault(g *gen.Gen, count, size gen.Value) gen.Thunk {
	return Wave(g, count, size, 1, 0, 0)
}
