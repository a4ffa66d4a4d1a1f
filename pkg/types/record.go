// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the scholarly tools:
// the open result record handed back to the host, the per-tool valve
// configurations, and the error kinds every boundary function reports.
package types

// Record is one normalized result item: a mapping from documented field
// names to whatever the upstream API returned for them. The upstream
// schema is not contractually fixed, so values stay dynamic. Fields the
// response did not carry are absent from the map, never null-padded.
type Record map[string]any

// Has reports whether the record carries the named field.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the named field as a string, or "" when the field is
// absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}
