package numerals

import (
	"regexp"
	"strings"
)

// seriesAbbreviations maps shorthand series codes seen in user filenames to
// the full series name used in the catalog. Keys are lower-case and matched
// as whole words only, so text without a known abbreviation passes through
// unchanged.
var seriesAbbreviations = map[string]string{
	"bec":   "blessing of the energy centers",
	"botec": "blessing of the energy centers",
	"tmm":   "tuning into new potentials",
	"tinp":  "tuning into new potentials",
	"sgb":   "space generates breath",
}

// seriesAliases lists alternate renderings of a full series name, used when
// comparing the series portion of two strings. British spellings and common
// word-order swaps show up in user exports.
var seriesAliases = map[string][]string{
	"blessing of the energy centers": {
		"blessing of the energy centres",
		"energy centers blessing",
	},
	"tuning into new potentials": {
		"tuning in to new potentials",
	},
}

// abbreviationPattern matches any known abbreviation as a whole word.
var abbreviationPattern = buildAbbreviationPattern()

func buildAbbreviationPattern() *regexp.Regexp {
	keys := make([]string, 0, len(seriesAbbreviations))
	for k := range seriesAbbreviations {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	// Longest first so "botec" is not consumed as "bec" plus residue.
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if len(keys[j]) > len(keys[i]) {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(keys, "|") + `)\b`)
}

// ExpandSeriesAbbreviations replaces whole-word series abbreviations with
// their full catalog name, case-insensitively. Text containing no known
// abbreviation is returned unchanged, and expanding twice is the same as
// expanding once: no expansion contains an abbreviation as a whole word.
func ExpandSeriesAbbreviations(text string) string {
	return abbreviationPattern.ReplaceAllStringFunc(text, func(m string) string {
		if full, ok := seriesAbbreviations[strings.ToLower(m)]; ok {
			return full
		}
		return m
	})
}

// SeriesVariants returns text plus every rendering produced by substituting
// known series aliases, for alias-tolerant series-name comparison.
func SeriesVariants(text string) []string {
	variants := []string{text}
	lower := strings.ToLower(text)
	for canonical, aliases := range seriesAliases {
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				variants = append(variants, strings.ReplaceAll(lower, alias, canonical))
			}
			if strings.Contains(lower, canonical) {
				variants = append(variants, strings.ReplaceAll(lower, canonical, alias))
			}
		}
	}
	return variants
}
