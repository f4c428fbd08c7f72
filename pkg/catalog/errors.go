package catalog

import (
	"errors"
	"fmt"
)

// Common sentinel errors for catalog collaborators.
var (
	// ErrInvalidDocument indicates a catalog document that failed to parse
	// or validate.
	ErrInvalidDocument = errors.New("invalid catalog document")

	// ErrInvalidPattern indicates a filename pattern that failed to parse.
	ErrInvalidPattern = errors.New("invalid filename pattern")

	// ErrProviderNotFound indicates a requested provider is not registered.
	ErrProviderNotFound = errors.New("catalog provider not found")

	// ErrProviderUnavailable indicates a provider could not resolve a
	// catalog snapshot.
	ErrProviderUnavailable = errors.New("catalog provider unavailable")
)

// ProviderError wraps an error with provider context.
type ProviderError struct {
	// Provider is the name of the provider that caused the error
	Provider string
	// Op is the operation that failed
	Op string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// PatternError describes a filename pattern that could not be parsed. It is
// logged and skipped at catalog load, never fatal.
type PatternError struct {
	// EntryID is the catalog entry carrying the pattern
	EntryID string
	// Pattern is the serialized pattern string
	Pattern string
	// Err is the underlying parse error
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("entry %q: pattern %q: %v", e.EntryID, e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *PatternError) Unwrap() error {
	return ErrInvalidPattern
}
