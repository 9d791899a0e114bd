// SPDX-License-Identifier: MIT
// Package: randgen/series
//
// mountains.go — bounded 1-D terrain random walk.
//
// Model (per invocation):
//   - height += slope
//   - slope  += U(-stepChange, stepChange)
//   - clamp slope to [-slopeMax, slopeMax]
//   - if height leaves [0, maxHeight]: clamp to the boundary and invert
//     the slope sign (bounce)
//   - return height
//
// Contract:
//   - maxHeight and stepChange are resolved via gen.Resolve ONCE at
//     construction; pass a generator to fix a drawn value per series.
//   - Every returned value lies in [0, maxHeight].
//   - State (height, slope) is private to the closure.

package series

import "github.com/katalvlaran/randgen/gen"

const (
	// DefaultMaxHeight is the terrain ceiling used by MountainsDefault.
	DefaultMaxHeight = 50
	// DefaultStepChange is the slope-change span used by MountainsDefault.
	DefaultStepChange = 10

	// slopeMax bounds the walk's slope to [-slopeMax, slopeMax].
	slopeMax = 5.0
)

// Mountains returns a thunk emitting the next terrain height per
// invocation. Initial state: height uniform in [0, maxHeight), slope
// uniform in [-slopeMax, slopeMax).
// Complexity: O(1) per invocation.
func Mountains(g *gen.Gen, maxHeight, stepChange gen.Value) gen.Thunk {
	// Resolve configuration once; a generator argument fixes one drawn
	// value for the whole series.
	limit := toFloat(gen.Resolve(maxHeight))
	step := toFloat(gen.Resolve(stepChange))

	rng := g.Rand()
	height := uniform(rng, 0, limit)
	slope := uniform(rng, -slopeMax, slopeMax)

	return func() gen.Value {
		height += slope
		slope += uniform(rng, -step, step)

		// Keep the slope inside its fixed band.
		if slope > slopeMax {
			slope = slopeMax
		}
		if slope < -slopeMax {
			slope = -slopeMax
		}

		// Bounce off the terrain boundaries.
		if height > limit {
			height = limit
			slope = -slope
		}
		if height < 0 {
			height = 0
			slope = -slope
		}

		return height
	}
}

// MountainsDefault is Mountains with maxHeight=50 and stepChange=10.
func MountainsDefault(g *gen.Gen) gen.Thunk {
	return Mountains(g, DefaultMaxHeight, DefaultStepChange)
}
