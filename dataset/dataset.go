// SPDX-License-Identifier: MIT
// Package: randgen/dataset
//
// dataset.go — the Datasets bundle and built-in default tables.
//
// Contract:
//   - Datasets is plain data passed by value; nothing here synchronizes
//     access. Swapping a table takes effect on the next generator draw.
//   - Default() copies the built-in tables so callers can mutate their
//     copy without affecting other generator spaces.

package dataset

// Datasets bundles the string tables consumed by the selection
// generators. YAML tags serve Load/LoadFile; omitted fields fall back
// to the built-in defaults there.
type Datasets struct {
	Countries  []string `yaml:"countries"`
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
}

// Default returns a fresh copy of the built-in tables.
// Each call allocates new slices; mutating one copy never leaks into
// another.
// Complexity: O(total table size) time and space.
func Default() Datasets {
	return Datasets{
		Countries:  append([]string(nil), defaultCountries...),
		FirstNames: append([]string(nil), defaultFirstNames...),
		LastNames:  append([]string(nil), defaultLastNames...),
	}
}

// defaultCountries is the built-in country table.
var defaultCountries = []string{
	"Argentina", "Australia", "Austria", "Belgium", "Brazil",
	"Canada", "Chile", "China", "Croatia", "Czechia",
	"Denmark", "Egypt", "Estonia", "Finland", "France",
	"Germany", "Greece", "Hungary", "Iceland", "India",
	"Ireland", "Italy", "Japan", "Kenya", "Latvia",
	"Mexico", "Netherlands", "New Zealand", "Norway", "Poland",
	"Portugal", "Spain", "Sweden", "Switzerland", "Ukraine",
	"United Kingdom", "United States", "Uruguay", "Vietnam",
}

// defaultFirstNames is the built-in first-name table.
var defaultFirstNames = []string{
	"Alice", "Anna", "Boris", "Clara", "Daniel",
	"Elena", "Felix", "Greta", "Hugo", "Irene",
	"Jonas", "Katya", "Leo", "Marta", "Nils",
	"Olga", "Pavel", "Quinn", "Rosa", "Stefan",
	"Tamara", "Ulrich", "Vera", "Walter", "Yuri", "Zoe",
}

// defaultLastNames is the built-in last-name table.
var defaultLastNames = []string{
	"Adler", "Bauer", "Castro", "Dubois", "Eriksen",
	"Fischer", "Garcia", "Hansen", "Ivanov", "Jensen",
	"Keller", "Larsen", "Moreau", "Novak", "Olsen",
	"Petrov", "Quintero", "Rossi", "Schmidt", "Tanaka",
	"Ueda", "Vasquez", "Weber", "Yamamoto", "Zimmermann",
}
