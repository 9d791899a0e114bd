// SPDX-License-Identifier: MIT
// Package: randgen/dataset
//
// yaml.go — YAML deserialization of caller-supplied tables.
//
// Contract:
//   - Load accepts a YAML document with optional keys countries,
//     first_names, last_names; any omitted key falls back to the
//     built-in default table.
//   - Empty/blank input returns ErrNoData; malformed YAML is wrapped
//     with %w so callers can still reach the yaml error.

package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoData indicates an empty or blank YAML document.
// Usage: if errors.Is(err, ErrNoData) { /* supply a non-empty file */ }.
var ErrNoData = errors.New("dataset: empty document")

// Load parses a YAML document into a Datasets value.
// Omitted fields fall back to the corresponding default table so a
// partial override stays usable.
// Complexity: O(len(b)) time.
func Load(b []byte) (Datasets, error) {
	// Blank input is a caller mistake worth naming, not a zero Datasets.
	if strings.TrimSpace(string(b)) == "" {
		return Datasets{}, ErrNoData
	}

	var ds Datasets
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return Datasets{}, fmt.Errorf("dataset: parse: %w", err)
	}

	// Fill gaps from the defaults; a present-but-empty list is kept as-is
	// only when the key was provided as an empty sequence — yaml gives us
	// nil for both, so nil means "use default" here.
	def := Default()
	if ds.Countries == nil {
		ds.Countries = def.Countries
	}
	if ds.FirstNames == nil {
		ds.FirstNames = def.FirstNames
	}
	if ds.LastNames == nil {
		ds.LastNames = def.LastNames
	}

	return ds, nil
}

// LoadFile reads path and delegates to Load.
// Complexity: O(file size) time.
func LoadFile(path string) (Datasets, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Datasets{}, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Load(b)
}
