package gen_test

import (
	"testing"

	"github.com/katalvlaran/randgen/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArray_SingleGeneratorAppliesToAllSlots pins the canonical case:
// array(3, number(1,1)) yields [1,1,1].
func TestArray_SingleGeneratorAppliesToAllSlots(t *testing.T) {
	g := gen.New(gen.WithSeed(20))
	arr := g.Array(3, g.Number(1, 1))

	assert.Equal(t, []gen.Value{1, 1, 1}, gen.Resolve(arr))
}

// TestArray_PerIndexItems verifies the slot priority: items[i] when
// present, literal index as the fallback.
func TestArray_PerIndexItems(t *testing.T) {
	g := gen.New(gen.WithSeed(21))
	arr := g.Array(4, "x", g.Number(7, 7))

	assert.Equal(t, []gen.Value{"x", 7, 2, 3}, gen.Resolve(arr))
}

// TestArray_NoItems verifies index literals fill an item-less array.
func TestArray_NoItems(t *testing.T) {
	g := gen.New(gen.WithSeed(22))

	assert.Equal(t, []gen.Value{0, 1, 2}, gen.Resolve(g.Array(3)))
	assert.Equal(t, []gen.Value{}, gen.Resolve(g.Array(0)))
}

// TestArray_FreshRandomnessPerInvocation verifies nested generators are
// re-resolved on every outer call, not frozen at construction.
func TestArray_FreshRandomnessPerInvocation(t *testing.T) {
	g := gen.New(gen.WithSeed(23))
	arr := g.Array(8, g.Number(0, 1000))

	first := gen.Resolve(arr)
	second := gen.Resolve(arr)
	assert.NotEqual(t, first, second, "two invocations must draw fresh content")
}

// TestObject_ResolvesFields pins object({a: constant(5), b: 7}).
func TestObject_ResolvesFields(t *testing.T) {
	g := gen.New(gen.WithSeed(24))
	obj := g.Object(map[string]gen.Value{
		"a": gen.Constant(5),
		"b": 7,
	})

	assert.Equal(t, map[string]gen.Value{"a": 5, "b": 7}, gen.Resolve(obj))
}

// TestObject_NestedGenerators verifies each field resolves through the
// full thunk protocol independently.
func TestObject_NestedGenerators(t *testing.T) {
	g := gen.New(gen.WithSeed(25))
	obj := g.Object(map[string]gen.Value{
		"n":    g.Number(3, 3),
		"list": g.Array(2, g.Number(1, 1)),
	})

	got, ok := gen.Resolve(obj).(map[string]gen.Value)
	require.True(t, ok, "Object must yield a map")
	assert.Equal(t, 3, got["n"])
	assert.Equal(t, []gen.Value{1, 1}, got["list"])
}

// TestJoin_Concatenates verifies string assembly with no separator.
func TestJoin_Concatenates(t *testing.T) {
	g := gen.New(gen.WithSeed(26))

	j := g.Join("a", 1, gen.Constant("x"), g.Number(2, 2))
	assert.Equal(t, "a1x2", gen.Resolve(j))

	assert.Equal(t, "", gen.Resolve(g.Join()), "no parts must join to the empty string")
}

// TestTransform_AppliesCallback verifies input is fully resolved before
// the callback runs.
func TestTransform_AppliesCallback(t *testing.T) {
	g := gen.New(gen.WithSeed(27))
	double := g.Transform(g.Number(5, 5), func(v gen.Value) gen.Value {
		return v.(int) * 2
	})

	assert.Equal(t, 10, gen.Resolve(double))
}

// TestTransform_ResultNotResolved verifies the callback's result is
// returned verbatim even when it is itself a thunk.
func TestTransform_ResultNotResolved(t *testing.T) {
	g := gen.New(gen.WithSeed(28))

	calls := 0
	inner := gen.Thunk(func() gen.Value {
		calls++
		return "deep"
	})
	tr := g.Transform(1, func(gen.Value) gen.Value { return inner })

	got := gen.Resolve(tr)
	assert.Equal(t, 0, calls, "callback result must not be unwrapped")
	_, ok := got.(gen.Thunk)
	assert.True(t, ok, "resolved value must still be the thunk")
}

// TestTransform_NilCallbackPanics confirms the factory-level validation
// panic (runtime thunks themselves never panic).
func TestTransform_NilCallbackPanics(t *testing.T) {
	g := gen.New(gen.WithSeed(29))

	assert.Panics(t, func() { g.Transform(1, nil) })
}
