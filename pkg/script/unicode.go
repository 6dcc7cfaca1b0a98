package script

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decompose returns the canonical decomposition (NFD) of s.
func Decompose(s string) string {
	return norm.NFD.String(s)
}

// Recompose returns the canonical composition (NFC) of s.
func Recompose(s string) string {
	return norm.NFC.String(s)
}

// removeRunes decomposes s, drops every rune in set, and recomposes.
// A transform chain carries buffers, so one is built per call.
func removeRunes(s string, set runes.Set) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(set), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// span returns a range table covering lo..hi inclusive.
func span(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}}}
}
