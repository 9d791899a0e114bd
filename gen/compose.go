// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// compose.go — structural combinators: Array, Object, Join, Transform.
//
// Contract:
//   - Combinators capture their inputs at construction and RE-RESOLVE
//     them on every invocation, so nested generators produce fresh
//     randomness per outer call.
//   - Transform's callback result is returned verbatim — never
//     re-resolved — so a callback may legitimately return a function.

package gen

import (
	"fmt"
	"strings"
)

// Array returns a thunk that, per invocation, builds a slice of length
// elements. Slot i resolves with this priority:
//   - a single items argument applies to every slot;
//   - otherwise items[i] when present;
//   - otherwise the index i itself as a literal fallback.
//
// Each slot is resolved independently per invocation.
// Complexity: O(length) per invocation.
func (g *Gen) Array(length int, items ...Value) Thunk {
	fixed := append([]Value(nil), items...)
	return func() Value {
		if length < 0 {
			return []Value(nil)
		}

		out := make([]Value, length)
		for i := range out {
			switch {
			case len(fixed) == 1:
				out[i] = Resolve(fixed[0])
			case i < len(fixed):
				out[i] = Resolve(fixed[i])
			default:
				out[i] = i
			}
		}

		return out
	}
}

// Object returns a thunk that, per invocation, resolves each field
// independently into a fresh map with the same keys.
// Complexity: O(len(fields)) per invocation plus nested resolution.
func (g *Gen) Object(fields map[string]Value) Thunk {
	return func() Value {
		out := make(map[string]Value, len(fields))
		for k, v := range fields {
			out[k] = Resolve(v)
		}

		return out
	}
}

// Join returns a thunk that, per invocation, resolves every part and
// concatenates the string forms with no separator. Spread a slice at
// the call site (Join(parts...)).
// Complexity: O(total rendered length) per invocation.
func (g *Gen) Join(parts ...Value) Thunk {
	fixed := append([]Value(nil), parts...)
	return func() Value {
		var sb strings.Builder
		for _, p := range fixed {
			sb.WriteString(render(Resolve(p)))
		}

		return sb.String()
	}
}

// Transform returns a thunk that fully resolves input, applies fn, and
// returns fn's result verbatim. The result carries the constant marker
// so Resolve never unwraps it further — a callback may legitimately
// return a function as a final value. Panics at construction on a nil
// fn (programmer error, same policy as option constructors).
// Complexity: O(resolution of input) per invocation.
func (g *Gen) Transform(input Value, fn func(Value) Value) ConstThunk {
	if fn == nil {
		panic("gen: Transform(nil callback)")
	}
	return func() Value {
		return fn(Resolve(input))
	}
}

// render produces Join's string form of a resolved value. Strings pass
// through untouched to avoid fmt quoting surprises.
func render(v Value) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
