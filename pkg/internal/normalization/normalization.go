// Package normalization provides text normalization utilities for meditation
// name matching.
package normalization

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/quietform/meditation-match/pkg/filename"
)

var (
	// nonAlnumPattern matches runs of characters that are neither letters
	// nor digits.
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)

	// multipleSpacePattern matches multiple consecutive spaces.
	multipleSpacePattern = regexp.MustCompile(`\s+`)

	// stopWords are words that carry no distinguishing signal between
	// catalog names: articles, the word meditation itself and its
	// shorthand, generic audio terms, and the author tokens that user
	// exports often prepend.
	stopWords = map[string]bool{
		"a":          true,
		"an":         true,
		"the":        true,
		"meditation": true,
		"med":        true,
		"audio":      true,
		"track":      true,
		"guided":     true,
		"dr":         true,
		"joe":        true,
		"dispenza":   true,
	}
)

// NormalizeName normalizes a filename or catalog display name for
// comparison:
//   - lower-cases
//   - strips a known audio file extension
//   - removes accents from non-ASCII characters
//   - replaces non-alphanumeric runs with single spaces
//   - collapses whitespace and trims
//
// Degenerate input (empty or punctuation-only) normalizes to the empty
// string rather than failing.
func NormalizeName(name string) string {
	name = strings.ToLower(filename.StripAudioExtension(name))
	if hasNonASCII(name) {
		name = removeAccents(name)
	}
	name = nonAlnumPattern.ReplaceAllString(name, " ")
	name = multipleSpacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// RemoveStopWords drops stop words from an already-normalized string,
// preserving the order of the remaining words.
func RemoveStopWords(s string) string {
	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// SignificantWords returns the set of comparison-worthy words in an
// already-normalized string: stop words and words of two characters or
// fewer are excluded.
func SignificantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		if len(w) <= 2 || stopWords[w] {
			continue
		}
		words[w] = true
	}
	return words
}

// hasNonASCII checks if the string contains non-ASCII characters.
func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}

// removeAccents removes diacritical marks from Unicode characters.
func removeAccents(s string) string {
	decomposed := norm.NFD.String(s)

	var result strings.Builder
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
