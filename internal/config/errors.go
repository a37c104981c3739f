package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrNotLoaded indicates an accessor was used before a successful load.
	ErrNotLoaded = errors.New("configuration not loaded")

	// ErrNoLayerPath indicates a save was requested for a layer that has
	// no file path configured.
	ErrNoLayerPath = errors.New("no layer path configured")
)

// IOError represents a failed read or write of a layer file or directory.
type IOError struct {
	// Op describes the failed operation (e.g., "write", "create directory").
	Op string
	// Path is the file or directory involved.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// TypeError is returned when a typed getter finds a value of the wrong type.
type TypeError struct {
	// Key is the setting key.
	Key string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Key, e.Expected, e.Actual)
}
