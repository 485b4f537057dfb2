// Package fold lowercases and strips diacritics from header keywords so
// that CÓDIGO, Código and codigo all compare equal.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns s lowercased with combining marks removed. Input that fails
// to transform (invalid UTF-8) is returned lowercased as-is.
func Fold(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contains reports whether the folded form of s contains the folded form
// of substr.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
