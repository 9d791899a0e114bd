package series_test

import (
	"testing"

	"github.com/katalvlaran/randgen/gen"
	"github.com/katalvlaran/randgen/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkSamples = 1000

// TestMountains_StaysInBounds walks the terrain many steps and verifies
// every height lies in [0, maxHeight].
func TestMountains_StaysInBounds(t *testing.T) {
	g := gen.New(gen.WithSeed(40))
	terrain := series.Mountains(g, 50, 10)

	for i := 0; i < walkSamples; i++ {
		h, ok := terrain().(float64)
		require.True(t, ok, "Mountains must yield float64")
		require.GreaterOrEqual(t, h, 0.0, "height below floor at step %d", i)
		require.LessOrEqual(t, h, 50.0, "height above ceiling at step %d", i)
	}
}

// TestMountains_Defaults verifies MountainsDefault honors the 0..50
// envelope.
func TestMountains_Defaults(t *testing.T) {
	g := gen.New(gen.WithSeed(41))
	terrain := series.MountainsDefault(g)

	for i := 0; i < walkSamples; i++ {
		h := terrain().(float64)
		require.GreaterOrEqual(t, h, 0.0)
		require.LessOrEqual(t, h, float64(series.DefaultMaxHeight))
	}
}

// TestMountains_GeneratorArguments verifies bounds may themselves be
// generators, resolved once at construction.
func TestMountains_GeneratorArguments(t *testing.T) {
	g := gen.New(gen.WithSeed(42))
	terrain := series.Mountains(g, g.Number(30, 30), g.Number(5, 5))

	for i := 0; i < walkSamples; i++ {
		h := terrain().(float64)
		require.GreaterOrEqual(t, h, 0.0)
		require.LessOrEqual(t, h, 30.0)
	}
}

// TestMountains_Progresses verifies consecutive calls actually move the
// walk (state is held and advanced by the closure).
func TestMountains_Progresses(t *testing.T) {
	g := gen.New(gen.WithSeed(43))
	terrain := series.Mountains(g, 50, 10)

	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		seen[terrain().(float64)] = true
	}
	assert.Greater(t, len(seen), 1, "a random walk must visit more than one height")
}
