// Package gen implements a lazy generator algebra: every generator is a
// thunk (a zero-argument deferred producer), thunks nest to arbitrary
// depth, and Resolve walks a chain down to a concrete value.
//
// 🚀 How it works
//
//	Factories capture their configuration by closure and return a Thunk.
//	Invoking the thunk — directly or through Resolve — produces one value.
//	Combinators (Array, Object, Join, Transform) re-resolve their inputs
//	on every invocation, so nested generators yield fresh randomness per
//	outer call.
//
// ✨ The resolution contract:
//   - Plain values pass through Resolve unchanged (zero invocations).
//   - A Thunk is invoked repeatedly until the result stops being a thunk.
//   - A ConstThunk (built by Constant) is invoked exactly once and its
//     result returned verbatim — the escape hatch for producing a value
//     that is itself a function without it being mistaken for another
//     layer of deferred computation.
//
// ⚙️ Usage:
//
//	g := gen.New(gen.WithSeed(7))
//	row := g.Object(map[string]gen.Value{
//	  "id":      g.UUID(),
//	  "country": g.Country(),
//	  "score":   g.Float(0, 100, 2),
//	  "tags":    g.Array(3, g.Item("red", "green", "blue")),
//	})
//	fmt.Println(gen.Resolve(row))
//
// Error policy: generators degrade silently instead of failing loudly —
// min>max yields a nonsensical but non-crashing draw, an empty Item or
// Sequence source yields nil, a malformed date string collapses to the
// Unix epoch. Validation panics are confined to option constructors and
// to factories handed a nil callback; invoking a thunk never panics.
//
// Concurrency: a Gen and the thunks it builds share one *rand.Rand and
// are not safe for concurrent use; build one Gen per goroutine.
package gen
