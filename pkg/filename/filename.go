// Package filename provides filename utilities for user-picked audio files.
package filename

import (
	"regexp"
	"strings"
)

// audioExtensions are the file extensions the matching pipeline recognizes
// as audio exports.
var audioExtensions = []string{".mp3", ".m4a", ".wav", ".mp4"}

var (
	// extensionPattern matches a trailing file extension.
	extensionPattern = regexp.MustCompile(`\.([a-zA-Z0-9]+)$`)

	// separatorPattern matches underscores and dots used as word separators.
	separatorPattern = regexp.MustCompile(`[._]+`)
)

// Extension returns the file extension without the dot, lower-cased, or an
// empty string if the filename has none.
func Extension(name string) string {
	match := extensionPattern.FindStringSubmatch(name)
	if len(match) > 1 {
		return strings.ToLower(match[1])
	}
	return ""
}

// IsAudioFile reports whether the filename carries a known audio extension.
func IsAudioFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// StripAudioExtension removes a single trailing known audio extension,
// case-insensitively. Unknown extensions are kept: "notes.txt" is returned
// unchanged.
func StripAudioExtension(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// StorageRelativePath derives the storage-relative path persisted in the
// file-location map from a platform file URI. It keeps the last two slash
// separated segments, which is the layout of the app's document storage
// (".../Documents/foo.m4a" becomes "Documents/foo.m4a"). An empty URI yields
// an empty path.
func StorageRelativePath(uri string) string {
	uri = strings.TrimPrefix(uri, "file://")
	if uri == "" {
		return ""
	}
	segments := strings.Split(uri, "/")
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	if len(kept) > 2 {
		kept = kept[len(kept)-2:]
	}
	return strings.Join(kept, "/")
}

// CleanDisplayName turns a raw filename into a readable name for logs and
// manual reassignment UIs: the audio extension is dropped and separator
// characters collapse into single spaces.
func CleanDisplayName(name string) string {
	name = StripAudioExtension(name)
	name = separatorPattern.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(name), " ")
}
