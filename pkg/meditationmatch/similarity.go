package meditationmatch

import (
	"github.com/quietform/meditation-match/pkg/internal/matching"
)

// NameSimilarity scores how likely a user-supplied filename refers to a
// catalog display name, in [0,1]. The score is the maximum over four
// independent strategies: series number agreement, update-indicator
// consistency, critical-keyword agreement, and traditional fuzzy
// similarity. Degenerate input scores 0; the result is never NaN or
// negative.
func NameSimilarity(userFileName, catalogName string) float64 {
	return matching.NameSimilarity(userFileName, catalogName, "")
}

// NameSimilarityWithSource is NameSimilarity with the catalog entry's
// original export filename as an additional comparison target.
func NameSimilarityWithSource(userFileName, catalogName, sourceFileName string) float64 {
	return matching.NameSimilarity(userFileName, catalogName, sourceFileName)
}

// ConfidenceLevel buckets a similarity score into a human-readable label:
// "exact", "high", "medium", "low" or "none".
func ConfidenceLevel(score float64) string {
	return matching.ConfidenceLevel(score)
}
