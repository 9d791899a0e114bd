// Package randgen is your in-memory playground for composing lazy,
// reproducible synthetic data — numbers, strings, dates, arrays, objects
// and procedural numeric series — for tests, demos and mock fixtures.
//
// 🚀 What is randgen?
//
//	A small, composable library built around one idea: every generator is
//	a thunk — a zero-argument deferred producer — and thunks nest:
//		• Leaf generators: Number, Float, Item, Sequence, Date, UUID
//		• Structural combinators: Array, Object, Join, Transform, Constant
//		• Procedural series: Mountains (bounded random walk), Wave (noisy sine)
//		• Dataset specializations: Country, FirstName, LastName
//
// ✨ Why choose randgen?
//
//   - Lazy by construction – values are produced on invocation, so nested
//     generators yield fresh randomness on every outer call
//   - Deterministic when you want it – seed the RNG per generator space,
//     no hidden global state
//   - Injected datasets – the name/country tables are plain data you own
//   - Pure Go – no cgo, tiny dependency surface
//
// Everything is organized under three subpackages:
//
//	gen/     — the thunk protocol (Value/Thunk/ConstThunk/Resolve) and the
//	           full generator algebra
//	series/  — stateful procedural generators producing one numeric point
//	           per invocation (Mountains, Wave)
//	dataset/ — swappable lookup tables (countries, first/last names) with
//	           an optional YAML loader
//
// Quick taste:
//
//	g := gen.New(gen.WithSeed(42))
//	user := g.Object(map[string]gen.Value{
//	  "name":    g.Join(g.FirstName(), gen.Constant(" "), g.LastName()),
//	  "age":     g.Number(18, 65),
//	  "balance": g.Float(0, 1000, 2),
//	})
//	fmt.Println(gen.Resolve(user)) // fresh value per call
//
// Dive into gen/doc.go for the resolution contract and series/doc.go for
// the terrain and wave synthesizers.
//
//	go get github.com/katalvlaran/randgen
package randgen
