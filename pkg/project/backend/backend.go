// Package backend defines the pluggable blob storage interface used for
// project documents, plus the factory registry the concrete backends hook
// into from their init functions.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrNotFound is returned when a document does not exist at the given path.
var ErrNotFound = errors.New("not found")

// Backend is a flat blob store addressed by slash-separated paths.
type Backend interface {
	// Type returns the backend's registered name.
	Type() string

	// Read opens the document at path. Returns ErrNotFound if absent.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Write stores the document at path, replacing any existing content.
	Write(ctx context.Context, path string, data io.Reader) error

	// Delete removes the document at path. Deleting a missing document is
	// not an error.
	Delete(ctx context.Context, path string) error

	// List returns the paths of all documents under the prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Exists reports whether a document is present at path.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config selects and configures a backend.
type Config struct {
	Type     string            `json:"type" yaml:"type"`
	Settings map[string]string `json:"settings" yaml:"settings"`
}

// Factory builds a backend from its settings map.
type Factory func(config map[string]string) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a backend factory available under the given name. Called
// from backend package init functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Create builds the backend named by the config.
func Create(config Config) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[config.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown backend type %q (registered: %v)", config.Type, Registered())
	}
	return factory(config.Settings)
}

// Registered lists the registered backend names, sorted.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
