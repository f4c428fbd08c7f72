package meditationmatch

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the library.
var (
	// ErrNoCatalog indicates that no provider could resolve a catalog
	// snapshot.
	ErrNoCatalog = errors.New("no catalog available")

	// ErrEntryNotFound indicates that a requested catalog entry does not
	// exist.
	ErrEntryNotFound = errors.New("catalog entry not found")

	// ErrNoLocationStore indicates that an operation requiring persistence
	// was called on a client configured without a location store.
	ErrNoLocationStore = errors.New("no location store configured")

	// ErrInvalidConfig indicates that the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	// Field is the configuration field with the error
	Field string
	// Details provides additional context
	Details string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Details)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
