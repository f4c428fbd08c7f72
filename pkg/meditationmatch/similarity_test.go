package meditationmatch

import "testing"

func TestNameSimilarity(t *testing.T) {
	if score := NameSimilarity("BEC 3.mp3", "Blessing of the Energy Centers III"); score < 0.9 {
		t.Errorf("same series and number scored %f, expected at least 0.9", score)
	}
	if score := NameSimilarity("", "Blessing of the Energy Centers III"); score != 0 {
		t.Errorf("empty input scored %f, expected 0", score)
	}
}

func TestNameSimilarityWithSource(t *testing.T) {
	with := NameSimilarityWithSource("bec02 export.m4a", "Blessing of the Energy Centers 02", "BEC02 Export.m4a")
	without := NameSimilarity("bec02 export.m4a", "Blessing of the Energy Centers 02")
	if with <= without {
		t.Errorf("source filename did not improve the score: %f vs %f", with, without)
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1, "exact"},
		{0.92, "high"},
		{0.75, "medium"},
		{0.55, "low"},
		{0.2, "none"},
	}

	for _, tt := range tests {
		if result := ConfidenceLevel(tt.score); result != tt.expected {
			t.Errorf("ConfidenceLevel(%f) = %q, expected %q", tt.score, result, tt.expected)
		}
	}
}
