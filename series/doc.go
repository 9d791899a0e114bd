// Package series provides stateful procedural generators that emit one
// numeric point per invocation — call the thunk once per x-axis tick.
//
// 🚀 What is series?
//
//	Two synthesizers built on the gen thunk protocol:
//	  • Mountains — a bounded 1-D terrain random walk with slope
//	    clamping and boundary bounce
//	  • Wave — a sine synthesizer with amplitude/frequency/phase derived
//	    from its arguments and a fixed per-series vertical jitter
//
// ✨ Key points:
//   - Configuration arguments are resolved ONCE via gen.Resolve at
//     construction, so they may themselves be generators: a single drawn
//     value then parameterizes the whole series.
//   - Walk/step state lives exclusively in the thunk's closure; the only
//     way to observe it is repeated invocation.
//   - Randomness comes from the Gen's stream, so a seeded space yields a
//     reproducible series.
//
// ⚙️ Usage:
//
//	g := gen.New(gen.WithSeed(3))
//	terrain := series.Mountains(g, 50, 10)
//	for x := 0; x < 100; x++ {
//	  y := terrain() // next height in [0, 50]
//	  _ = y
//	}
package series
