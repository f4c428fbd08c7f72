// Package meditationmatch matches user-picked audio files against a
// meditation catalog, combining deterministic size and filename-pattern
// matching with fuzzy name-similarity scoring.
package meditationmatch

import (
	"github.com/quietform/meditation-match/pkg/catalog"
)

// PickedFile is a file the user selected from the device. It is ephemeral:
// produced by a file picker, consumed once per matching pass, never retained
// by the core. Name and Size are pointers because the picker cannot always
// supply them.
type PickedFile struct {
	// Name is the original filename
	Name *string `json:"name,omitempty"`
	// Size is the byte size
	Size *int64 `json:"size,omitempty"`
	// MIMEType is informational only
	MIMEType string `json:"type,omitempty"`
	// URI is the platform file locator
	URI string `json:"uri,omitempty"`
}

// NewPickedFile builds a PickedFile with both name and size known.
func NewPickedFile(name string, size int64, mimeType, uri string) PickedFile {
	return PickedFile{
		Name:     &name,
		Size:     &size,
		MIMEType: mimeType,
		URI:      uri,
	}
}

// UnknownFileData is the subset of a picked file retained when no catalog
// entry matches, used downstream for manual reassignment.
type UnknownFileData struct {
	Name     *string `json:"name,omitempty"`
	Size     *int64  `json:"size,omitempty"`
	MIMEType string  `json:"type,omitempty"`
	URI      string  `json:"uri,omitempty"`
}

// unknownFrom builds the retained record for an unmatched file.
func unknownFrom(f PickedFile) UnknownFileData {
	return UnknownFileData{
		Name:     f.Name,
		Size:     f.Size,
		MIMEType: f.MIMEType,
		URI:      f.URI,
	}
}

// FileLocationMap maps catalog entry ids to persisted storage-relative
// paths.
type FileLocationMap = catalog.FileLocationMap

// Match types reported in MatchResult.
const (
	// MatchTypeExact is a post-normalization exact name match.
	MatchTypeExact = "exact"
	// MatchTypeName is a fuzzy name-similarity match.
	MatchTypeName = "name"
)

// MatchResult is one accepted name-similarity match.
type MatchResult struct {
	// EntryID is the matched catalog entry id
	EntryID string `json:"entry_id"`
	// Confidence is the similarity score in [0,1]
	Confidence float64 `json:"confidence"`
	// MatchType is how the match was made
	MatchType string `json:"match_type"`
}

// Result is the outcome of one matching pass over a batch of picked files.
type Result struct {
	// FileLocationMap is the merged entry-id to relative-path mapping
	FileLocationMap FileLocationMap `json:"file_location_map"`
	// UnknownFiles lists unmatched files in input order
	UnknownFiles []UnknownFileData `json:"unknown_files"`
}
