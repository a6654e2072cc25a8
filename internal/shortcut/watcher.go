package shortcut

import (
	"fmt"
	"sync"

	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/store"
)

// Watcher detects drift in the platform shortcut bindings. The platform
// exposes no change event for rebinding, so this is a level-triggered
// reconciliation: on every tab-focus event the current bindings are
// re-fetched and compared key-by-key against the last-known snapshot.
type Watcher struct {
	store   store.ShortcutStore
	onDrift func(model.ShortcutSnapshot)

	mu       sync.Mutex
	snapshot model.ShortcutSnapshot
}

// NewWatcher creates a watcher. onDrift is invoked with the fresh snapshot
// whenever a binding appeared, disappeared, or changed value.
func NewWatcher(store store.ShortcutStore, onDrift func(model.ShortcutSnapshot)) *Watcher {
	return &Watcher{
		store:    store,
		onDrift:  onDrift,
		snapshot: model.ShortcutSnapshot{},
	}
}

// Prime fetches the initial snapshot without treating it as drift.
func (w *Watcher) Prime() error {
	current, err := w.fetch()
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.snapshot = current
	w.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the last-known bindings.
func (w *Watcher) Snapshot() model.ShortcutSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot.Clone()
}

// Reconcile re-fetches the bindings for all highlight commands and compares
// them against the cached snapshot. On any difference it replaces the
// snapshot and fires onDrift. Returns whether drift was detected.
func (w *Watcher) Reconcile() (bool, error) {
	current, err := w.fetch()
	if err != nil {
		return false, fmt.Errorf("failed to fetch shortcut bindings: %w", err)
	}

	w.mu.Lock()
	drifted := !w.snapshot.Equal(current)
	if drifted {
		w.snapshot = current
	}
	w.mu.Unlock()

	if drifted && w.onDrift != nil {
		w.onDrift(current.Clone())
	}
	return drifted, nil
}

// fetch loads the bindings and filters them down to the highlight commands;
// bindings for unrelated commands never count as drift.
func (w *Watcher) fetch() (model.ShortcutSnapshot, error) {
	all, err := w.store.Load()
	if err != nil {
		return nil, err
	}

	current := model.ShortcutSnapshot{}
	for _, cmd := range model.HighlightCommands() {
		if key, ok := all[cmd]; ok && key != "" {
			current[cmd] = key
		}
	}
	return current, nil
}
