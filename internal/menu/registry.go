package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/amterp/hilite/internal/config"
	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
)

// Registry is the menu backend the projector writes to. Create returns a
// MenuConflictError when an entry with the same id already exists.
type Registry interface {
	Create(entry model.MenuEntry) error
	RemoveAll() error
	Entries() []model.MenuEntry
}

// FileRegistry keeps the menu tree in memory and mirrors it to menu.json
// after every change, where the browser chrome layer picks it up.
type FileRegistry struct {
	paths *config.Paths

	mu      sync.Mutex
	order   []string
	entries map[string]model.MenuEntry
}

// NewFileRegistry creates a menu registry persisting to the given paths.
func NewFileRegistry(paths *config.Paths) *FileRegistry {
	return &FileRegistry{
		paths:   paths,
		entries: make(map[string]model.MenuEntry),
	}
}

// Create adds a menu entry. Duplicate ids are rejected with a conflict error.
func (r *FileRegistry) Create(entry model.MenuEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return &hilerr.MenuConflictError{MenuID: entry.ID}
	}

	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return r.flushLocked()
}

// RemoveAll removes every menu entry. Removing an already-empty menu is a
// no-op, which makes projector rebuilds idempotent.
func (r *FileRegistry) RemoveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return nil
	}

	r.entries = make(map[string]model.MenuEntry)
	r.order = nil
	return r.flushLocked()
}

// Entries returns the current entries in creation order.
func (r *FileRegistry) Entries() []model.MenuEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.MenuEntry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

func (r *FileRegistry) flushLocked() error {
	entries := make([]model.MenuEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.entries[id])
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	path := r.paths.MenuPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}
	return nil
}
