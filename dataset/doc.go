// Package dataset holds the lookup tables that specialize the generic
// selection generators into Country, FirstName and LastName.
//
// 🚀 What is dataset?
//
//	Plain data, nothing more: a Datasets value bundles three string
//	tables. The generator algebra reads them at invocation time and never
//	mutates them. Callers own their copy — replace a table wholesale, or
//	edit it in place, and the next draw sees the change.
//
// ✨ Key points:
//   - Default() returns a fresh, independently mutable copy of the
//     built-in tables (no shared global state).
//   - Load / LoadFile deserialize caller-supplied tables from YAML;
//     omitted fields fall back to the defaults.
//   - Validation is minimal on purpose: an empty table is legal data and
//     simply makes the corresponding generator yield nil.
//
// ⚙️ Usage:
//
//	ds, err := dataset.LoadFile("testdata/people.yaml")
//	if err != nil { ... }
//	g := gen.New(gen.WithDatasets(ds))
//	name := g.FirstName()
package dataset
