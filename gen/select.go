// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// select.go — selection & sequencing generators: Item, Sequence, the
// dataset specializations (Country/FirstName/LastName) and UUID.
//
// Contract:
//   - Item draws one element uniformly per invocation with the same
//     inclusive-floor sampling Number uses.
//   - Sequence resolves its data ONCE at construction (the argument may
//     itself be a generator), then cycles round-robin from index 0.
//   - Empty sources yield nil instead of panicking — silent degradation,
//     never a crash.
//   - UUID draws from the space's RNG, so a seeded Gen emits a
//     reproducible identifier stream.

package gen

import (
	"reflect"

	"github.com/google/uuid"
)

// Item returns a thunk that picks one of values uniformly at random per
// invocation. Spread a slice at the call site (Item(xs...)) — the
// variadic signature replaces runtime array flattening. An empty value
// set yields nil.
// Complexity: O(1) per invocation; O(len(values)) construction copy.
func (g *Gen) Item(values ...Value) Thunk {
	// Copy so later mutation of a caller-owned backing array cannot
	// shift draws mid-series.
	vals := append([]Value(nil), values...)
	return func() Value {
		if len(vals) == 0 {
			return nil
		}

		return vals[g.intBetween(0, int64(len(vals)-1))]
	}
}

// Sequence resolves data once (it may be a generator resolving to a
// slice) and returns a thunk yielding its elements in round-robin
// order, starting at index 0 and advancing by exactly one per
// invocation. A non-slice or empty source yields nil on every call.
// Complexity: O(1) per invocation after an O(len) construction copy.
func (g *Gen) Sequence(data Value) Thunk {
	items := toSlice(Resolve(data))
	next := 0
	return func() Value {
		if len(items) == 0 {
			return nil
		}

		v := items[next%len(items)]
		next++

		return v
	}
}

// Country returns a thunk picking one entry of the injected country
// table — exactly Item over the dataset.
func (g *Gen) Country() Thunk {
	return g.Item(stringValues(g.cfg.data.Countries)...)
}

// FirstName returns a thunk picking one entry of the injected
// first-name table.
func (g *Gen) FirstName() Thunk {
	return g.Item(stringValues(g.cfg.data.FirstNames)...)
}

// LastName returns a thunk picking one entry of the injected last-name
// table.
func (g *Gen) LastName() Thunk {
	return g.Item(stringValues(g.cfg.data.LastNames)...)
}

// UUID returns a thunk producing a random RFC 4122 version-4 UUID
// string. Randomness comes from the space's RNG (not crypto/rand), so a
// seeded Gen reproduces the same identifiers — exactly what fixtures
// want.
// Complexity: O(1) per invocation.
func (g *Gen) UUID() Thunk {
	return func() Value {
		id, err := uuid.NewRandomFromReader(g.cfg.rng)
		if err != nil {
			// math/rand sources never fail a Read; keep the silent
			// degradation contract regardless.
			return ""
		}

		return id.String()
	}
}

// toSlice normalizes a resolved value into []Value. Typed slices are
// accepted through reflection; anything else (including nil) yields nil.
func toSlice(v Value) []Value {
	switch s := v.(type) {
	case nil:
		return nil
	case []Value:
		return s
	case []string:
		return stringValues(s)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]Value, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// stringValues widens a string table into []Value for Item.
func stringValues(ss []string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
