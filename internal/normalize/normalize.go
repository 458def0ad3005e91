// Package normalize turns partially-populated external records into fully
// defaulted canonical values. Every domain keeps a per-field default table;
// the helpers here are the single place the fallback rules live.
package normalize

import "strings"

// Or returns *p when the field was present and non-null, def otherwise.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Slice guarantees a usable sequence: anything that did not decode into an
// actual array becomes the empty slice, never nil.
func Slice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// SplitEmails splits a comma-separated address list, trimming each entry.
func SplitEmails(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// JoinEmails serializes an address list back to the comma-joined payload form.
func JoinEmails(v []string) string {
	return strings.Join(v, ",")
}
