package catalog

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Match kinds, in the priority order the matcher tries them. Exact size is
// least likely to produce a false positive; filename patterns are the most
// permissive and therefore checked last.
const (
	MatchKindSize       = "size"
	MatchKindSizePrefix = "size_prefix"
	MatchKindPattern    = "pattern"
)

// Match is a deterministic matcher hit.
type Match struct {
	// EntryID is the matched catalog entry id
	EntryID string `json:"entry_id"`
	// Kind records which strategy produced the hit
	Kind string `json:"kind"`
}

// sizePrefixLength is the number of leading decimal digits compared in
// approximate size matching.
const sizePrefixLength = 5

// SizePrefix returns the size-prefix fingerprint of a byte size: the first
// five characters of its decimal string. Sizes with fewer than five digits
// yield a shorter prefix and compare at their own length.
func SizePrefix(size int64) string {
	s := strconv.FormatInt(size, 10)
	if len(s) > sizePrefixLength {
		s = s[:sizePrefixLength]
	}
	return s
}

// entryPattern is one compiled filename pattern with its owning entry.
type entryPattern struct {
	entryID string
	re      *regexp.Regexp
}

// Matcher performs deterministic size and filename matching over a catalog
// snapshot. Indexes are built once at construction; malformed filename
// patterns are logged and skipped so one bad pattern never aborts matching
// for the rest of the catalog. A Matcher is immutable after construction and
// safe for concurrent use.
type Matcher struct {
	sizes    map[int64][]string
	prefixes map[string][]string
	patterns []entryPattern
}

// NewMatcher builds the deterministic match indexes for a catalog snapshot.
// Entries without matching data are invisible to the Matcher.
func NewMatcher(c Catalog) *Matcher {
	m := &Matcher{
		sizes:    make(map[int64][]string),
		prefixes: make(map[string][]string),
	}

	for _, id := range c.SortedIDs() {
		data := c[id].MatchingData
		if data == nil {
			continue
		}
		for _, size := range data.KnownFileSizes {
			m.sizes[size] = append(m.sizes[size], id)
		}
		for _, prefix := range data.KnownStringSizes {
			m.prefixes[prefix] = append(m.prefixes[prefix], id)
		}
		for _, raw := range data.FileNamePatterns {
			re, err := ParsePattern(raw)
			if err != nil {
				log.Warn().
					Err(&PatternError{EntryID: id, Pattern: raw, Err: err}).
					Msg("skipping malformed filename pattern")
				continue
			}
			m.patterns = append(m.patterns, entryPattern{entryID: id, re: re})
		}
	}

	for _, ids := range m.sizes {
		sort.Strings(ids)
	}
	for _, ids := range m.prefixes {
		sort.Strings(ids)
	}
	return m
}

// MatchFile finds at most one catalog entry for a picked file, trying exact
// size, then size prefix, then filename patterns, stopping at the first hit.
// A nil size skips the size strategies and a nil or empty name skips the
// pattern strategy; neither is treated as a failure. When several entries
// claim the same size or prefix, the lexicographically smallest entry id
// wins, keeping results deterministic.
func (m *Matcher) MatchFile(name *string, size *int64) (Match, bool) {
	if m == nil {
		return Match{}, false
	}

	if size != nil {
		if ids := m.sizes[*size]; len(ids) > 0 {
			return Match{EntryID: ids[0], Kind: MatchKindSize}, true
		}
		if ids := m.prefixes[SizePrefix(*size)]; len(ids) > 0 {
			return Match{EntryID: ids[0], Kind: MatchKindSizePrefix}, true
		}
	}

	if name != nil && *name != "" {
		for _, p := range m.patterns {
			if p.re.MatchString(*name) {
				return Match{EntryID: p.entryID, Kind: MatchKindPattern}, true
			}
		}
	}

	return Match{}, false
}

// PatternCount returns the number of successfully compiled filename
// patterns.
func (m *Matcher) PatternCount() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}
