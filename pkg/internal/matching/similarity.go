// Package matching provides the string similarity primitives and the name
// similarity scorer used to match user filenames against catalog names.
package matching

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/hbollon/go-edlib"

	"github.com/quietform/meditation-match/pkg/internal/normalization"
)

// jaroWinkler is a reusable Jaro-Winkler metric instance.
var jaroWinkler = metrics.NewJaroWinkler()

// EditSimilarity converts Levenshtein edit distance into a similarity in
// [0,1]: 1 - distance/max(len). Identical non-empty strings score 1, and an
// empty string on either side scores 0.
func EditSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	sim := 1 - float64(edlib.LevenshteinDistance(a, b))/float64(longest)
	return clamp01(sim)
}

// ContainmentSimilarity scores literal substring containment: when the
// shorter string appears inside the longer one the score is the length
// ratio shorter/longer, otherwise 0.
func ContainmentSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := a, b
	if len([]rune(shorter)) > len([]rune(longer)) {
		shorter, longer = longer, shorter
	}
	if !strings.Contains(longer, shorter) {
		return 0
	}
	return clamp01(float64(len([]rune(shorter))) / float64(len([]rune(longer))))
}

// WordOverlapSimilarity is the Jaccard index over the significant word sets
// of two normalized strings. Stop words and words of two characters or fewer
// are ignored; an empty set on either side scores 0.
func WordOverlapSimilarity(a, b string) float64 {
	wa := normalization.SignificantWords(a)
	wb := normalization.SignificantWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	intersection := 0
	for w := range wa {
		if wb[w] {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	return clamp01(float64(intersection) / float64(union))
}

// JaroWinklerSimilarity calculates the Jaro-Winkler similarity between two
// strings, case-insensitively. It is not part of the scoring pipeline
// itself; the client uses it to break ties between equally scored catalog
// entries and to bucket confidence for logging.
func JaroWinklerSimilarity(a, b string) float64 {
	return strutil.Similarity(strings.ToLower(a), strings.ToLower(b), jaroWinkler)
}

// ConfidenceLevel buckets a similarity score into a human-readable
// confidence label.
func ConfidenceLevel(score float64) string {
	switch {
	case score >= 1:
		return "exact"
	case score >= 0.9:
		return "high"
	case score >= 0.7:
		return "medium"
	case score >= 0.5:
		return "low"
	default:
		return "none"
	}
}

// clamp01 collapses NaN and out-of-range values into [0,1] so a broken
// heuristic degrades to "no match" instead of corrupting downstream
// thresholding.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
