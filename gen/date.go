// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// date.go — the Date generator: Number over parsed timestamps.
//
// Contract:
//   - Bounds accept time.Time values or date strings; strings are
//     parsed once at construction (parsing a fixed bound is pure).
//   - Each invocation draws a uniform millisecond timestamp in the
//     inclusive bound range and wraps it as time.Time.
//   - Malformed strings collapse silently to the Unix epoch — a known
//     sharp edge kept from the permissive error policy, not corrected.

package gen

import "time"

// dateLayouts are tried in order when a bound arrives as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date returns a thunk producing a time.Time between min and max
// (inclusive-ish per Number semantics). Bounds resolve through the
// thunk protocol first, so they may themselves be generators; the
// resolved value must be a time.Time or a date string.
// Complexity: O(1) per invocation.
func (g *Gen) Date(min, max Value) Thunk {
	lo := timestampMillis(Resolve(min))
	hi := timestampMillis(Resolve(max))
	return func() Value {
		return time.UnixMilli(g.intBetween(lo, hi)).UTC()
	}
}

// timestampMillis coerces a bound into milliseconds since the Unix
// epoch. A time.Time is used as its own timestamp; strings are parsed
// against dateLayouts; numeric values pass through as milliseconds.
// Anything unparseable degrades to 0 (the epoch), never an error.
func timestampMillis(v Value) int64 {
	switch t := v.(type) {
	case time.Time:
		return t.UnixMilli()
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UnixMilli()
			}
		}

		return 0
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}
