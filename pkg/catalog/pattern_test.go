package catalog

import (
	"errors"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		matches bool
	}{
		{"plain body", "/bec/", "bec 01.mp3", true},
		{"case sensitive by default", "/bec/", "BEC 01.mp3", false},
		{"i flag", "/bec/i", "BEC 01.mp3", true},
		{"g flag ignored", "/bec/gi", "BEC 01.mp3", true},
		{"u flag ignored", "/bec/u", "bec 01.mp3", true},
		{"anchors", "/^bec.*mp3$/i", "BEC 01.mp3", true},
		{"anchors no match", "/^bec.*mp3$/i", "intro BEC 01.mp3", false},
		{"escaped slash in body", `/a\/b/`, "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern(%q) returned error: %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.input); got != tt.matches {
				t.Errorf("pattern %q on %q = %v, expected %v",
					tt.pattern, tt.input, got, tt.matches)
			}
		})
	}
}

func TestParsePatternInvalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"no leading slash", "bec/i"},
		{"no closing slash", "/bec"},
		{"unsupported flag", "/bec/x"},
		{"bad body", "/(/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePattern(tt.pattern)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("ParsePattern(%q) = %v, expected ErrInvalidPattern", tt.pattern, err)
			}
		})
	}
}

func TestPatternErrorUnwrap(t *testing.T) {
	err := &PatternError{EntryID: "bec-01", Pattern: "/(/", Err: errors.New("compile failed")}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Error("expected PatternError to unwrap to ErrInvalidPattern")
	}
}
