package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/quietform/meditation-match/pkg/cache"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(_ map[string]any) (Provider, error) {
		return NewStaticProvider(Catalog{}), nil
	})

	if !r.Has("test") {
		t.Error("expected registered provider to be found")
	}
	if r.Has("missing") {
		t.Error("expected unregistered provider to be absent")
	}

	p, err := r.Create("test", nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.Name() != "static" {
		t.Errorf("unexpected provider name %q", p.Name())
	}

	if _, err := r.Create("missing", nil); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}

	if names := r.List(); len(names) != 1 || names[0] != "test" {
		t.Errorf("List() = %v, expected [test]", names)
	}
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	for _, name := range []string{"static", "file", "http"} {
		if !DefaultRegistry.Has(name) {
			t.Errorf("expected built-in provider %q to be registered", name)
		}
	}
}

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	c := Catalog{"a": {ID: "a", Name: "A"}}
	p := NewStaticProvider(c)

	fetched, err := p.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !reflect.DeepEqual(fetched, c) {
		t.Errorf("Fetch returned %v, expected %v", fetched, c)
	}
}

func TestFileProvider(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")
	p := NewFileProvider(path)

	// A missing file falls through to the next provider in the chain.
	c, err := p.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch on missing file returned error: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil catalog for missing file, got %v", c)
	}

	snapshot := Catalog{"a": {ID: "a", Name: "A"}}
	if err := p.Write(snapshot); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	c, err = p.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !reflect.DeepEqual(c, snapshot) {
		t.Errorf("Fetch returned %v, expected %v", c, snapshot)
	}
}

func TestFileProviderCorruptDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(path)
	_, err := p.Fetch(ctx)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if provErr.Provider != "file" || provErr.Op != "parse" {
		t.Errorf("unexpected error context %+v", provErr)
	}
}

func TestHTTPProvider(t *testing.T) {
	ctx := context.Background()
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fetches++
		_, _ = w.Write([]byte(`{"a": {"name": "A"}}`))
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL,
		WithSnapshotCache(cache.NewMemoryCache(), time.Minute))

	c, err := p.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if c["a"].Name != "A" || c["a"].ID != "a" {
		t.Errorf("unexpected catalog %v", c)
	}

	// Second fetch is served from the snapshot cache.
	if _, err := p.Fetch(ctx); err != nil {
		t.Fatalf("cached Fetch returned error: %v", err)
	}
	if fetches != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", fetches)
	}
}

func TestHTTPProviderErrorStatus(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewHTTPProvider(server.URL)
	if _, err := p.Fetch(ctx); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestHTTPProviderContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	p := NewHTTPProvider(server.URL)
	if _, err := p.Fetch(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}
