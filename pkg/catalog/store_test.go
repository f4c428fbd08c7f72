package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileLocationMapClone(t *testing.T) {
	original := FileLocationMap{"a": "Documents/a.mp3"}
	clone := original.Clone()
	clone["b"] = "Documents/b.mp3"

	if _, ok := original["b"]; ok {
		t.Error("mutating the clone changed the original")
	}

	var nilMap FileLocationMap
	clone = nilMap.Clone()
	if clone == nil {
		t.Fatal("cloning a nil map should yield an empty map")
	}
	clone["a"] = "x"
}

func TestFileLocationStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "locations.json")
	store := NewFileLocationStore(path)

	// A store with no saved state loads empty.
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %v", loaded)
	}

	locations := FileLocationMap{
		"bec-01":     "Documents/bec01.m4a",
		"walking-01": "Documents/walking.mp3",
	}
	if err := store.Save(ctx, locations); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, locations) {
		t.Errorf("Load returned %v, expected %v", loaded, locations)
	}
}

func TestFileLocationStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileLocationStore(path)
	if _, err := store.Load(ctx); err == nil {
		t.Error("expected error loading corrupt file")
	}
}

func TestMemoryLocationStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLocationStore()

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %v", loaded)
	}

	locations := FileLocationMap{"a": "Documents/a.mp3"}
	if err := store.Save(ctx, locations); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// The store keeps its own copy.
	locations["b"] = "Documents/b.mp3"
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, FileLocationMap{"a": "Documents/a.mp3"}) {
		t.Errorf("Load returned %v, expected the saved snapshot", loaded)
	}
}
