package importer

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Adapter imports one kind of contact export (vCard, CSV) and writes it as a
// directory: data.gob + manifest.yaml.
type Adapter interface {
	// ID returns the unique identifier of this adapter (e.g. "vcard").
	ID() string
	// Description returns a human-readable description.
	Description() string
	// Import fetches src.SourceURL, parses it, and writes data.gob +
	// manifest.yaml into a subdirectory of outputDir named after
	// src.DirectoryID.
	Import(ctx context.Context, src Source, outputDir string) error
}

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// Register adds an adapter to the global registry.
func Register(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	adapters[a.ID()] = a
}

// Get returns a registered adapter by ID, or an error if not found.
func Get(id string) (Adapter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[id]
	if !ok {
		return nil, fmt.Errorf("unknown import adapter: %q", id)
	}
	return a, nil
}

// All returns all registered adapters sorted by ID.
func All() []Adapter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Adapter, 0, len(adapters))
	for _, a := range adapters {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// Run imports src with the adapter it names.
func Run(ctx context.Context, src Source, outputDir string) error {
	a, err := Get(src.Adapter)
	if err != nil {
		return err
	}
	if src.DirectoryID == "" {
		return fmt.Errorf("source %s: missing directory id", src.ID)
	}
	if err := a.Import(ctx, src, outputDir); err != nil {
		return fmt.Errorf("import %s: %w", src.ID, err)
	}
	return nil
}
