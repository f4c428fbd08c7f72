package meditationmatch

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/quietform/meditation-match/pkg/catalog"
	"github.com/quietform/meditation-match/pkg/internal/matching"
)

// Client drives matching of picked files against a catalog snapshot. The
// snapshot is resolved once (LoadCatalog) or injected by the caller
// (SetCatalog); matching itself is synchronous and pure. A Client does no
// locking: concurrent imports against the same persisted map must be
// serialized by the caller.
type Client struct {
	config  Config
	catalog catalog.Catalog
	matcher *catalog.Matcher
}

// NewClient creates a new matching client with the given options. The
// client starts without a catalog; until one is loaded every file matches
// nothing.
func NewClient(opts ...Option) (*Client, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{config: config}, nil
}

// LoadCatalog resolves a catalog snapshot through the configured provider
// chain, in order, keeping the first snapshot offered. Provider failures are
// logged and skipped; if no provider resolves a snapshot the client is left
// without a catalog and ErrNoCatalog is returned. That state is normal, not
// fatal: matching still runs and classifies every file as unknown.
func (c *Client) LoadCatalog(ctx context.Context) error {
	for _, p := range c.config.Providers {
		snapshot, err := p.Fetch(ctx)
		if err != nil {
			log.Warn().
				Str("provider", p.Name()).
				Err(err).
				Msg("catalog provider failed")
			continue
		}
		if snapshot == nil {
			continue
		}
		c.SetCatalog(snapshot)
		return nil
	}
	return ErrNoCatalog
}

// SetCatalog installs a caller-owned catalog snapshot and rebuilds the
// deterministic match indexes. A nil snapshot clears the catalog.
func (c *Client) SetCatalog(snapshot catalog.Catalog) {
	c.catalog = snapshot
	if snapshot == nil {
		c.matcher = nil
		return
	}
	c.matcher = catalog.NewMatcher(snapshot)
}

// Catalog returns the current catalog snapshot, or nil.
func (c *Client) Catalog() catalog.Catalog {
	return c.catalog
}

// Entry returns a catalog entry by id.
func (c *Client) Entry(id string) (catalog.Entry, error) {
	entry, ok := c.catalog[id]
	if !ok {
		return catalog.Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

// MatchFiles runs the deterministic size and filename-pattern matcher over a
// batch of picked files. The returned map is a copy of existing merged with
// the new assignments, last write wins per input order; the caller's map is
// never mutated. Unmatched files appear in UnknownFiles in input order. With
// no catalog loaded, every file is unknown.
func (c *Client) MatchFiles(files []PickedFile, existing FileLocationMap) Result {
	result := Result{
		FileLocationMap: existing.Clone(),
		UnknownFiles:    []UnknownFileData{},
	}

	for _, f := range files {
		if c.catalog == nil {
			result.UnknownFiles = append(result.UnknownFiles, unknownFrom(f))
			continue
		}
		if m, ok := c.matcher.MatchFile(f.Name, f.Size); ok && c.record(&result, m.EntryID, f) {
			continue
		}
		result.UnknownFiles = append(result.UnknownFiles, unknownFrom(f))
	}
	return result
}

// MatchFilesByName runs the name-first flow: each file is matched by fuzzy
// name similarity against every catalog entry, gated by the configured
// threshold. Merge semantics are the same as MatchFiles.
func (c *Client) MatchFilesByName(files []PickedFile, existing FileLocationMap) Result {
	result := Result{
		FileLocationMap: existing.Clone(),
		UnknownFiles:    []UnknownFileData{},
	}

	for _, f := range files {
		if c.catalog == nil || f.Name == nil {
			result.UnknownFiles = append(result.UnknownFiles, unknownFrom(f))
			continue
		}
		if m, ok := c.IdentifyByName(*f.Name); ok && c.record(&result, m.EntryID, f) {
			continue
		}
		result.UnknownFiles = append(result.UnknownFiles, unknownFrom(f))
	}
	return result
}

// record merges an accepted match into the result map. A match whose URI
// cannot be relativized is not a usable assignment; it is logged and the
// file falls back to the unknown list.
func (c *Client) record(result *Result, entryID string, f PickedFile) bool {
	rel := c.config.Relativize(f.URI)
	if rel == "" {
		log.Warn().
			Str("entry", entryID).
			Str("uri", f.URI).
			Msg("matched file has no storage-relative path, keeping it unknown")
		return false
	}
	result.FileLocationMap[entryID] = rel
	return true
}

// IdentifyByName finds the best catalog entry for a filename by similarity
// score. Entries are visited in sorted-id order and ties are broken by
// Jaro-Winkler similarity, so the result is deterministic. The second return
// value is false when no entry reaches the configured threshold.
func (c *Client) IdentifyByName(name string) (MatchResult, bool) {
	if len(c.catalog) == 0 || name == "" {
		return MatchResult{}, false
	}

	var best MatchResult
	bestTie := -1.0

	for _, id := range c.catalog.SortedIDs() {
		entry := c.catalog[id]
		score := matching.NameSimilarity(name, entry.Name, entry.SourceFileName)
		if score > 0.7 {
			log.Debug().
				Str("file", name).
				Str("entry", id).
				Float64("score", score).
				Str("confidence", matching.ConfidenceLevel(score)).
				Msg("name match candidate")
		}
		if score < best.Confidence {
			continue
		}
		tie := matching.JaroWinklerSimilarity(name, entry.Name)
		if score > best.Confidence || tie > bestTie {
			best = MatchResult{EntryID: id, Confidence: score, MatchType: MatchTypeName}
			bestTie = tie
		}
	}

	if best.EntryID == "" || best.Confidence < c.config.NameMatchThreshold {
		return MatchResult{}, false
	}
	if best.Confidence >= 1 {
		best.MatchType = MatchTypeExact
	}
	return best, true
}

// ImportFiles is the full import session round trip: load the persisted
// file-location map, match the batch deterministically, and save the merged
// map. Requires a configured location store.
func (c *Client) ImportFiles(ctx context.Context, files []PickedFile) (Result, error) {
	if c.config.Store == nil {
		return Result{}, ErrNoLocationStore
	}

	existing, err := c.config.Store.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	result := c.MatchFiles(files, existing)

	if err := c.config.Store.Save(ctx, result.FileLocationMap); err != nil {
		return result, err
	}
	return result, nil
}
