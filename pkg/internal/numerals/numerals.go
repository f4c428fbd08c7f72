// Package numerals canonicalizes the ordinal tokens that distinguish entries
// within a meditation series, so that "2", "02", "ii", "two" and "part 2" are
// all recognized as the same position.
package numerals

import (
	"regexp"
	"strconv"
	"strings"
)

// romanNumerals maps the roman numerals accepted in filenames to their values.
// Series rarely run past ten entries, so the table stops at "x".
var romanNumerals = map[string]int{
	"i":    1,
	"ii":   2,
	"iii":  3,
	"iv":   4,
	"v":    5,
	"vi":   6,
	"vii":  7,
	"viii": 8,
	"ix":   9,
	"x":    10,
}

// numberWords maps spelled-out numbers to their values.
var numberWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// numberEquivalents maps every accepted textual variant of 1..10 to its
// canonical digit string. Built once at package init.
var numberEquivalents = buildNumberEquivalents()

func buildNumberEquivalents() map[string]string {
	romanByValue := make(map[int]string, len(romanNumerals))
	for tok, v := range romanNumerals {
		if cur, ok := romanByValue[v]; !ok || len(tok) < len(cur) {
			romanByValue[v] = tok
		}
	}
	wordByValue := make(map[int]string, len(numberWords))
	for tok, v := range numberWords {
		wordByValue[v] = tok
	}

	equivalents := make(map[string]string)
	for n := 1; n <= 10; n++ {
		canonical := strconv.Itoa(n)
		variants := []string{
			canonical,
			"0" + canonical,
			romanByValue[n],
			wordByValue[n],
			"part " + canonical,
			"session " + canonical,
			"chapter " + canonical,
		}
		for _, v := range variants {
			equivalents[v] = canonical
		}
	}
	return equivalents
}

var (
	// tokenSplitPattern separates tokens on whitespace and hyphens so that
	// "BEC-II" splits into "BEC" and "II".
	tokenSplitPattern = regexp.MustCompile(`[\s\-]+`)

	// ordinalPrefixPattern matches an ordinal marker glued to its number,
	// like "part2" or "session_3".
	ordinalPrefixPattern = regexp.MustCompile(`^(?:part|session|chapter)[._]?(.+)$`)

	// ordinalPhrasePattern matches whole "part/session/chapter N" phrases.
	ordinalPhrasePattern = regexp.MustCompile(
		`(?i)\b(?:part|session|chapter)[\s._-]*` +
			`(?:\d+|viii|vii|vi|iv|ix|iii|ii|i|v|x|one|two|three|four|five|six|seven|eight|nine|ten)\b`)

	// romanTokenPattern matches standalone roman numeral tokens i..x,
	// longest alternatives first.
	romanTokenPattern = regexp.MustCompile(`(?i)\b(?:viii|vii|vi|iv|ix|iii|ii|i|v|x)\b`)

	// numberWordPattern matches standalone spelled-out numbers one..ten.
	numberWordPattern = regexp.MustCompile(
		`(?i)\b(?:one|two|three|four|five|six|seven|eight|nine|ten)\b`)

	digitRunPattern   = regexp.MustCompile(`\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractNumbers returns the canonical number strings found in text, in
// first-seen order with duplicates removed. Digit runs keep their value but
// lose leading zeros, roman numerals and number words are converted through
// the lookup tables, and ordinal phrases like "part 2" or "session_ii"
// contribute their embedded number.
func ExtractNumbers(text string) []string {
	var numbers []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}

	for _, tok := range tokenSplitPattern.Split(strings.ToLower(text), -1) {
		tok = strings.Trim(tok, ".,;:!?()[]{}\"'")
		if tok == "" {
			continue
		}
		if n, ok := canonicalNumber(tok); ok {
			add(n)
			continue
		}
		if m := ordinalPrefixPattern.FindStringSubmatch(tok); m != nil {
			if n, ok := canonicalNumber(m[1]); ok {
				add(n)
			}
		}
	}
	return numbers
}

// canonicalNumber converts a single lower-cased token to its canonical digit
// string. Returns false for tokens that are not numbers in any accepted form.
func canonicalNumber(tok string) (string, bool) {
	if isAllDigits(tok) {
		trimmed := strings.TrimLeft(tok, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		return trimmed, true
	}
	if v, ok := RomanToArabic(tok); ok {
		return strconv.Itoa(v), true
	}
	if v, ok := numberWords[tok]; ok {
		return strconv.Itoa(v), true
	}
	return "", false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RomanToArabic converts a roman numeral token i..x (case-insensitive) to its
// value. The second return value is false for anything outside that set,
// including tokens longer than four characters.
func RomanToArabic(tok string) (int, bool) {
	if len(tok) > 4 {
		return 0, false
	}
	v, ok := romanNumerals[strings.ToLower(tok)]
	return v, ok
}

// NumbersMatch reports whether two raw number tokens denote the same ordinal.
// Tokens match when they are literally equal (case-insensitive) or when both
// belong to the same equivalence class of the fixed 1..10 variant table.
// Zero-padding never changes numeric identity: "2" matches "02".
func NumbersMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	ca, aOK := equivalentOf(a)
	cb, bOK := equivalentOf(b)
	return aOK && bOK && ca == cb
}

func equivalentOf(tok string) (string, bool) {
	if c, ok := numberEquivalents[tok]; ok {
		return c, true
	}
	// Digit runs outside 1..10 still have a canonical form after
	// zero-padding removal.
	if isAllDigits(tok) {
		c, _ := canonicalNumber(tok)
		return c, true
	}
	return "", false
}

// RemoveNumbers strips ordinal phrases, digit runs, roman numeral tokens and
// number words from text, collapsing the remaining whitespace. It is used to
// compare the series-name portion of two strings once numbers are factored
// out.
func RemoveNumbers(text string) string {
	text = ordinalPhrasePattern.ReplaceAllString(text, " ")
	text = romanTokenPattern.ReplaceAllString(text, " ")
	text = numberWordPattern.ReplaceAllString(text, " ")
	text = digitRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
