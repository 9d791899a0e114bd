// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// value.go — the thunk protocol: Value, Thunk, ConstThunk, Resolve.
//
// Design contract (strict):
//   - Thunk and ConstThunk are the only callable kinds Resolve knows.
//     A bare func() stored as a Value is treated as plain data — Go has
//     no duck-typed "is callable" probe, so deferred computation must be
//     expressed through these named types.
//   - Resolve terminates for every chain built by this package: each
//     factory bottoms out in a plain value or is short-circuited by the
//     constant marker.

package gen

// Value is any value flowing through the generator algebra. Plain
// values pass through Resolve unchanged; Thunk and ConstThunk values
// are resolved per the contract below.
type Value = any

// Thunk is a zero-argument deferred producer. Its result may itself be
// a Thunk; chains of arbitrary depth are legal.
type Thunk func() Value

// ConstThunk is a constant-marked thunk: Resolve invokes it exactly
// once and returns the result verbatim, even when that result is itself
// a Thunk. Built exclusively by Constant.
type ConstThunk func() Value

// Resolve walks a thunk chain down to a concrete value.
//
// Contract:
//   - ConstThunk: invoke once, return the result without further
//     resolution.
//   - Thunk: invoke and continue resolving the result.
//   - anything else: returned unchanged (zero invocations).
//
// A chain that never bottoms out is a caller contract violation and
// loops forever; well-formed factories never construct one.
// Complexity: O(depth) invocations, O(1) space.
func Resolve(v Value) Value {
	for {
		switch t := v.(type) {
		case ConstThunk:
			// Constant marker: one invocation, result is final.
			return t()
		case Thunk:
			v = t()
		default:
			return v
		}
	}
}

// Constant returns a constant-marked thunk that always yields v
// verbatim. Use it to pass a literal function (or any value that would
// otherwise be mistaken for deferred computation) through the algebra
// untouched.
// Complexity: O(1) per invocation.
func Constant(v Value) ConstThunk {
	return func() Value {
		return v
	}
}
