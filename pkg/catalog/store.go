package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileLocationMap maps catalog entry ids to persisted storage-relative file
// paths. At most one path per id: new assignments overwrite old ones. This
// is the accumulating, long-lived state mutated across import sessions.
type FileLocationMap map[string]string

// Clone returns a shallow copy. Cloning a nil map yields an empty map, so
// callers never special-case first-run state.
func (m FileLocationMap) Clone() FileLocationMap {
	clone := make(FileLocationMap, len(m))
	for id, path := range m {
		clone[id] = path
	}
	return clone
}

// LocationStore persists the file-location map between import sessions. The
// format is a plain JSON object of catalog-id keys and path values.
type LocationStore interface {
	// Load reads the persisted map. A store with no saved state returns an
	// empty map, not an error.
	Load(ctx context.Context) (FileLocationMap, error)

	// Save writes the map, replacing any previous state.
	Save(ctx context.Context, locations FileLocationMap) error
}

// FileLocationStore persists the map as a JSON file on disk.
type FileLocationStore struct {
	mu   sync.Mutex
	path string
}

// NewFileLocationStore creates a store backed by the given file path.
func NewFileLocationStore(path string) *FileLocationStore {
	return &FileLocationStore{path: path}
}

// Load reads the persisted map. A missing file yields an empty map.
func (s *FileLocationStore) Load(_ context.Context) (FileLocationMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return FileLocationMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load file locations: %w", err)
	}

	var m FileLocationMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("load file locations: %w", err)
	}
	if m == nil {
		m = FileLocationMap{}
	}
	return m, nil
}

// Save writes the map as indented JSON.
func (s *FileLocationStore) Save(_ context.Context, locations FileLocationMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(locations, "", "  ")
	if err != nil {
		return fmt.Errorf("save file locations: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save file locations: %w", err)
	}
	return nil
}

// MemoryLocationStore keeps the map in memory. Useful for tests and for
// callers that handle persistence themselves.
type MemoryLocationStore struct {
	mu        sync.Mutex
	locations FileLocationMap
}

// NewMemoryLocationStore creates an empty in-memory store.
func NewMemoryLocationStore() *MemoryLocationStore {
	return &MemoryLocationStore{locations: FileLocationMap{}}
}

// Load returns a copy of the current map.
func (s *MemoryLocationStore) Load(_ context.Context) (FileLocationMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locations.Clone(), nil
}

// Save replaces the current map with a copy of the given one.
func (s *MemoryLocationStore) Save(_ context.Context, locations FileLocationMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = locations.Clone()
	return nil
}
