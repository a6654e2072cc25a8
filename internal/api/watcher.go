package api

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amterp/hilite/internal/config"
	"github.com/fsnotify/fsnotify"
)

// DataChangeKind indicates which data file changed.
type DataChangeKind string

const (
	DataChangeColors    DataChangeKind = "colors"
	DataChangeShortcuts DataChangeKind = "shortcuts"
	DataChangeUnknown   DataChangeKind = "unknown"
)

// DataWatcherSubscriber receives data file change notifications.
type DataWatcherSubscriber interface {
	OnDataChange(kind DataChangeKind)
}

// DataWatcher watches the hilite data directory so external edits to
// colors.toml or shortcuts.toml (another process, the options surface, a
// hand edit) are picked up without a restart.
type DataWatcher struct {
	watcher     *fsnotify.Watcher
	dataDir     string
	mu          sync.RWMutex
	subscribers []DataWatcherSubscriber
	debounce    map[string]*time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewDataWatcher creates a watcher for the given data directory.
func NewDataWatcher(dataDir string) (*DataWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &DataWatcher{
		watcher:  watcher,
		dataDir:  dataDir,
		debounce: make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (dw *DataWatcher) Subscribe(sub DataWatcherSubscriber) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.subscribers = append(dw.subscribers, sub)
}

// Start begins watching the data directory for changes.
func (dw *DataWatcher) Start() error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	if dw.stopped {
		dw.mu.Unlock()
		return fmt.Errorf("data watcher cannot be restarted after stop")
	}
	dw.running = true
	dw.mu.Unlock()

	if err := os.MkdirAll(dw.dataDir, 0755); err != nil {
		return err
	}
	if err := dw.watcher.Add(dw.dataDir); err != nil {
		return err
	}

	go dw.run()
	return nil
}

// Stop stops watching for changes.
func (dw *DataWatcher) Stop() error {
	dw.mu.Lock()
	if !dw.running || dw.stopped {
		dw.mu.Unlock()
		return nil
	}
	dw.running = false
	dw.stopped = true
	dw.mu.Unlock()

	// Cancel pending debounce timers so they can't fire after stop
	dw.debounceMu.Lock()
	for path, timer := range dw.debounce {
		timer.Stop()
		delete(dw.debounce, path)
	}
	dw.debounceMu.Unlock()

	close(dw.stopCh)
	return dw.watcher.Close()
}

func (dw *DataWatcher) run() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleEvent(event)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Data watcher error: %v", err)

		case <-dw.stopCh:
			return
		}
	}
}

func (dw *DataWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if classifyDataChange(event.Name) == DataChangeUnknown {
		return
	}

	// Debounce: wait 100ms before emitting to coalesce rapid changes
	dw.debounceMu.Lock()
	if timer, exists := dw.debounce[event.Name]; exists {
		timer.Stop()
	}
	dw.debounce[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
		dw.emitChange(event.Name)
		dw.debounceMu.Lock()
		delete(dw.debounce, event.Name)
		dw.debounceMu.Unlock()
	})
	dw.debounceMu.Unlock()
}

func (dw *DataWatcher) emitChange(path string) {
	// Debounce timer may fire after Stop
	dw.mu.RLock()
	if dw.stopped {
		dw.mu.RUnlock()
		return
	}
	subs := make([]DataWatcherSubscriber, len(dw.subscribers))
	copy(subs, dw.subscribers)
	dw.mu.RUnlock()

	kind := classifyDataChange(path)
	for _, sub := range subs {
		sub.OnDataChange(kind)
	}
}

func classifyDataChange(path string) DataChangeKind {
	switch filepath.Base(path) {
	case config.ColorsFileName:
		return DataChangeColors
	case config.ShortcutsFileName:
		return DataChangeShortcuts
	}
	return DataChangeUnknown
}
