package matching

import (
	"strings"

	"github.com/quietform/meditation-match/pkg/internal/normalization"
	"github.com/quietform/meditation-match/pkg/internal/numerals"
)

const (
	// seriesNameThreshold is the minimum number-stripped similarity for a
	// confirmed number match to count as the same series.
	seriesNameThreshold = 0.7

	// updateCoreThreshold is the minimum indicator-stripped similarity for
	// two names to be considered the same meditation in possibly different
	// takes.
	updateCoreThreshold = 0.8

	// keywordBaseThreshold is the minimum keyword-stripped similarity
	// required alongside full keyword agreement.
	keywordBaseThreshold = 0.7
)

// updateIndicators are the tokens that mark an alternate "updated" recording
// of a meditation. Year tokens cover the re-record window of the catalog.
var updateIndicators = []string{
	"updated", "revised", "v2", "latest", "final",
	"2021", "2022", "2023", "2024", "2025",
}

// criticalKeywords are whole-word keywords that denote materially different
// audio variants. Each group lists the accepted surface forms of one
// variant; multi-word forms require every part to be present.
var criticalKeywords = [][]string{
	{"breathwork", "breath"},
	{"walking", "walk"},
	{"music only", "music"},
	{"updated", "update"},
	{"morning"},
	{"evening"},
	{"short"},
	{"long"},
}

// NameSimilarity scores how likely a user-supplied filename refers to a
// catalog entry, in [0,1]. sourceFileName is the original export filename of
// the catalog entry when known, or empty. Inputs are normalized internally;
// degenerate input scores 0 rather than failing.
//
// Four independent strategies are scored and the maximum wins: a confirmed
// series-number match, update-indicator consistency, critical-keyword
// agreement, and traditional fuzzy similarity. No single heuristic has to
// handle every naming convention users produce.
func NameSimilarity(userFileName, catalogName, sourceFileName string) float64 {
	user := normalization.NormalizeName(userFileName)
	cat := normalization.NormalizeName(catalogName)
	if user == "" || cat == "" {
		return 0
	}
	var source string
	if sourceFileName != "" {
		source = normalization.NormalizeName(sourceFileName)
	}

	if user == cat || (source != "" && user == source) {
		return 1
	}

	user = numerals.ExpandSeriesAbbreviations(user)
	cat = numerals.ExpandSeriesAbbreviations(cat)
	if source != "" {
		source = numerals.ExpandSeriesAbbreviations(source)
	}

	score := seriesScore(user, cat)
	if s := updateScore(user, cat); s > score {
		score = s
	}
	if s := keywordScore(user, cat); s > score {
		score = s
	}
	if s := traditionalScore(user, cat, source); s > score {
		score = s
	}
	return clamp01(score)
}

// seriesScore confirms that both names carry the same ordinal and that the
// series-name portions agree once numbers are stripped. A confirmed match
// scores at least 0.9, approaching 1.0 as the series names converge.
func seriesScore(user, cat string) float64 {
	userNums := numerals.ExtractNumbers(user)
	catNums := numerals.ExtractNumbers(cat)
	if !anyNumberMatch(userNums, catNums) {
		return 0
	}

	userSeries := numerals.RemoveNumbers(user)
	catSeries := numerals.RemoveNumbers(cat)
	sim := 0.0
	for _, a := range numerals.SeriesVariants(userSeries) {
		for _, b := range numerals.SeriesVariants(catSeries) {
			if s := EditSimilarity(a, b); s > sim {
				sim = s
			}
		}
	}
	if sim <= seriesNameThreshold {
		return 0
	}
	return 0.9 + 0.1*sim
}

func anyNumberMatch(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if numerals.NumbersMatch(x, y) {
				return true
			}
		}
	}
	return false
}

// updateScore checks that the two names agree on whether they refer to the
// updated take of a meditation. The cores must be near-identical with the
// indicators stripped; the multiplier then rewards consistent intent and
// penalizes a user asking for an updated take that this entry is not.
func updateScore(user, cat string) float64 {
	userUpdated := hasAnyWord(user, updateIndicators)
	catUpdated := hasAnyWord(cat, updateIndicators)

	core := EditSimilarity(
		removeWords(user, updateIndicators),
		removeWords(cat, updateIndicators),
	)
	if core <= updateCoreThreshold {
		return 0
	}

	switch {
	case userUpdated && catUpdated:
		return core
	case userUpdated && !catUpdated:
		return core * 0.3
	case !userUpdated && catUpdated:
		return core * 0.7
	default:
		return core * 0.9
	}
}

// keywordScore enforces agreement on variant-distinguishing keywords. Every
// keyword group present in the user filename must also appear in the catalog
// name: a near-perfect text match on the wrong variant is suppressed to 0.3,
// while full agreement on a strong base match scores 0.95. Filenames with no
// critical keyword make this strategy abstain.
func keywordScore(user, cat string) float64 {
	userWords := wordSet(user)
	catWords := wordSet(cat)

	var present [][]string
	for _, group := range criticalKeywords {
		if groupPresent(userWords, group) {
			present = append(present, group)
		}
	}
	if len(present) == 0 {
		return 0
	}

	for _, group := range present {
		if !groupPresent(catWords, group) {
			return 0.3
		}
	}

	base := EditSimilarity(
		removeGroups(user, present),
		removeGroups(cat, present),
	)
	if base > keywordBaseThreshold {
		return 0.95
	}
	return 0
}

// traditionalScore is the fallback fuzzy comparison: stop words are stripped
// and the best of word-overlap, edit and containment similarity is taken
// against the catalog name and, when known, the entry's source filename.
func traditionalScore(user, cat, source string) float64 {
	u := normalization.RemoveStopWords(user)
	best := 0.0
	for _, cand := range []string{cat, source} {
		if cand == "" {
			continue
		}
		c := normalization.RemoveStopWords(cand)
		for _, s := range []float64{
			WordOverlapSimilarity(u, c),
			EditSimilarity(u, c),
			ContainmentSimilarity(u, c),
		} {
			if s > best {
				best = s
			}
		}
	}
	return best
}

func wordSet(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		words[w] = true
	}
	return words
}

// formPresent reports whether every word of a keyword form appears in the
// word set.
func formPresent(words map[string]bool, form string) bool {
	for _, part := range strings.Fields(form) {
		if !words[part] {
			return false
		}
	}
	return true
}

func groupPresent(words map[string]bool, group []string) bool {
	for _, form := range group {
		if formPresent(words, form) {
			return true
		}
	}
	return false
}

// hasAnyWord reports whether any of the given single-word tokens appears in
// the normalized string.
func hasAnyWord(s string, tokens []string) bool {
	words := wordSet(s)
	for _, tok := range tokens {
		if words[tok] {
			return true
		}
	}
	return false
}

// removeWords drops exact word matches from a normalized string.
func removeWords(s string, tokens []string) string {
	drop := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		drop[tok] = true
	}
	kept := make([]string, 0)
	for _, w := range strings.Fields(s) {
		if !drop[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// removeGroups drops every surface-form word of the given keyword groups.
func removeGroups(s string, groups [][]string) string {
	var parts []string
	for _, group := range groups {
		for _, form := range group {
			parts = append(parts, strings.Fields(form)...)
		}
	}
	return removeWords(s, parts)
}
