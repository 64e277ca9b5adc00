// Package textnorm normalises listing text before keyword matching.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize composes s to NFC, folds full-width forms, lowercases and trims it.
func Normalize(s string) string {
	return strings.TrimSpace(Fold(s))
}

// Fold is Normalize without the trim. Keyword tables contain padded entries
// such as "fan " whose surrounding spaces are significant.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = width.Fold.String(s)
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// Equal reports whether a and b are the same after normalisation.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
