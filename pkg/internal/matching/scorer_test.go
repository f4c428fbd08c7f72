package matching

import "testing"

func TestNameSimilarityExact(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		catalog string
		source  string
	}{
		{"identical", "Blessing of the Energy Centers 02", "Blessing of the Energy Centers 02", ""},
		{"extension and case", "blessing of the energy centers 02.mp3", "Blessing Of The Energy Centers 02", ""},
		{"punctuation", "Blessing_of_the_Energy_Centers_02", "Blessing of the Energy Centers 02", ""},
		{"source filename", "bec02 export.m4a", "Blessing of the Energy Centers 02", "BEC02 Export.m4a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if score := NameSimilarity(tt.user, tt.catalog, tt.source); !almostEqual(score, 1) {
				t.Errorf("NameSimilarity(%q, %q, %q) = %f, expected 1",
					tt.user, tt.catalog, tt.source, score)
			}
		})
	}
}

func TestNameSimilarityDegenerateInput(t *testing.T) {
	tests := []struct {
		user, catalog string
	}{
		{"", "Blessing of the Energy Centers 02"},
		{"blessing.mp3", ""},
		{"!!!", "Blessing of the Energy Centers 02"},
		{"", ""},
	}

	for _, tt := range tests {
		if score := NameSimilarity(tt.user, tt.catalog, ""); score != 0 {
			t.Errorf("NameSimilarity(%q, %q, \"\") = %f, expected 0", tt.user, tt.catalog, score)
		}
	}
}

func TestNameSimilarityAbbreviatedSeries(t *testing.T) {
	score := NameSimilarity("BEC 3.mp3", "Blessing of the Energy Centers III", "")
	if !almostEqual(score, 1) {
		t.Errorf("same series, same number scored %f, expected 1", score)
	}

	wrongNumber := NameSimilarity("BEC 2.mp3", "Blessing of the Energy Centers III", "")
	if wrongNumber >= score {
		t.Errorf("wrong series number scored %f, expected less than %f", wrongNumber, score)
	}
}

func TestSeriesScore(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		catalog  string
		expected float64
	}{
		{
			"same number roman and digit",
			"blessing of the energy centers 3",
			"blessing of the energy centers iii",
			1.0,
		},
		{
			"number mismatch",
			"blessing of the energy centers 2",
			"blessing of the energy centers iii",
			0,
		},
		{
			"number match but different series",
			"blessing of the energy centers 2",
			"space generates breath 2",
			0,
		},
		{
			"no numbers on either side",
			"walking practice",
			"walking practice",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := seriesScore(tt.user, tt.catalog); !almostEqual(result, tt.expected) {
				t.Errorf("seriesScore(%q, %q) = %f, expected %f",
					tt.user, tt.catalog, result, tt.expected)
			}
		})
	}
}

func TestSeriesScoreNearIdenticalSeriesName(t *testing.T) {
	result := seriesScore(
		"blessing of the energy centres 2",
		"blessing of the energy centers 02",
	)
	if result < 0.9 || result > 1 {
		t.Errorf("alias spelling with matching number scored %f, expected within [0.9, 1]", result)
	}
}

func TestUpdateScore(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		catalog  string
		expected float64
	}{
		{"both updated", "presence practice 2023", "presence practice revised", 1.0},
		{"user wants update catalog is not", "presence practice revised", "presence practice", 0.3},
		{"catalog updated user did not ask", "presence practice", "presence practice revised", 0.7},
		{"neither updated", "presence practice", "presence practice", 0.9},
		{"cores disagree", "presence practice", "guided body scan", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := updateScore(tt.user, tt.catalog); !almostEqual(result, tt.expected) {
				t.Errorf("updateScore(%q, %q) = %f, expected %f",
					tt.user, tt.catalog, result, tt.expected)
			}
		})
	}
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		catalog  string
		expected float64
	}{
		{"agreement on strong base", "morning gratitude flow", "morning gratitude flows", 0.95},
		{"user keyword missing from catalog", "morning bliss", "evening bliss", 0.3},
		{"multi-word form agreement", "gratitude flows music only", "gratitude flows music", 0.95},
		{"no critical keywords", "gratitude flow", "gratitude flows", 0},
		{"agreement but weak base", "morning flow", "morning river", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := keywordScore(tt.user, tt.catalog); !almostEqual(result, tt.expected) {
				t.Errorf("keywordScore(%q, %q) = %f, expected %f",
					tt.user, tt.catalog, result, tt.expected)
			}
		})
	}
}

func TestNameSimilarityKeywordMismatchSuppression(t *testing.T) {
	score := NameSimilarity("Morning.mp3", "Evening Bliss Flow Deep Calm", "")
	if !almostEqual(score, 0.3) {
		t.Errorf("wrong-variant match scored %f, expected 0.3", score)
	}
}

func TestNameSimilaritySourceFileName(t *testing.T) {
	withSource := NameSimilarity(
		"stillness flow 2020 copy.mp3",
		"Stillness Flow",
		"stillness flow 2020.mp3",
	)
	withoutSource := NameSimilarity("stillness flow 2020 copy.mp3", "Stillness Flow", "")
	if withSource <= withoutSource {
		t.Errorf("source filename did not improve the score: %f vs %f",
			withSource, withoutSource)
	}
}

func TestNameSimilarityClamped(t *testing.T) {
	score := NameSimilarity("BEC 3", "Blessing of the Energy Centers 3", "")
	if score < 0 || score > 1 {
		t.Errorf("score %f outside [0, 1]", score)
	}
}
