// Package catalog defines the meditation catalog model and its collaborators:
// providers that resolve a catalog snapshot, the deterministic size and
// filename matcher, and the persisted file-location store.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// MatchingData carries the per-entry hints that enable deterministic
// matching without audio analysis. All fields are optional.
type MatchingData struct {
	// KnownFileSizes are exact byte sizes known to correspond to this
	// entry. Multiple encodes of the same audio yield different sizes.
	KnownFileSizes []int64 `json:"known_file_sizes,omitempty"`
	// KnownStringSizes are size-prefix strings: the first five decimal
	// digits of a byte size. Used when exact size has drifted under
	// re-encoding.
	KnownStringSizes []string `json:"known_string_sizes,omitempty"`
	// FileNamePatterns are serialized "/body/flags" regular expressions
	// matching acceptable filenames for this entry.
	FileNamePatterns []string `json:"file_name_patterns,omitempty"`
}

// Entry is one item in the meditation catalog.
type Entry struct {
	// ID is the stable opaque identifier, unique within the catalog.
	ID string `json:"id"`
	// Name is the human-readable display name used for fuzzy matching.
	Name string `json:"name"`
	// GroupName is the display group. Not used by matching.
	GroupName string `json:"group_name,omitempty"`
	// SourceFileName is the original export filename of the entry's
	// audio, when known. Improves fuzzy name matching.
	SourceFileName string `json:"source_file_name,omitempty"`
	// MatchingData holds deterministic matching hints. Entries without it
	// are reachable only through fuzzy name matching.
	MatchingData *MatchingData `json:"matching_data,omitempty"`
}

// Catalog is the authoritative set of known meditation entries, keyed by
// entry id. A nil Catalog means "no catalog available".
type Catalog map[string]Entry

// SortedIDs returns the entry ids in lexicographic order. Matching iterates
// in this order so results are deterministic.
func (c Catalog) SortedIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks structural invariants: no blank ids, and entry ids that
// agree with their map keys.
func (c Catalog) Validate() error {
	for key, entry := range c {
		if key == "" {
			return fmt.Errorf("%w: blank entry id", ErrInvalidDocument)
		}
		if entry.ID != "" && entry.ID != key {
			return fmt.Errorf("%w: entry %q has mismatched id %q",
				ErrInvalidDocument, key, entry.ID)
		}
	}
	return nil
}

// ParseDocument decodes a JSON catalog document, a plain object of entry id
// to entry. Entries without an embedded id inherit their map key.
func ParseDocument(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for key, entry := range c {
		if entry.ID == "" {
			entry.ID = key
			c[key] = entry
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// marshalDocument encodes a catalog as an indented JSON document, the
// inverse of ParseDocument.
func marshalDocument(c Catalog) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
