package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/hilite/internal/config"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/version"
)

// shortcutsFile is the on-disk shape of shortcuts.toml. The browser layer
// writes this file whenever the user rebinds a command; the core only reads
// it back during reconciliation.
type shortcutsFile struct {
	HiliteSchema string            `toml:"hilite_schema"`
	Bindings     map[string]string `toml:"bindings"`
}

// FileShortcutStore implements ShortcutStore using a TOML file.
type FileShortcutStore struct {
	paths *config.Paths
}

// NewShortcutStore creates a new shortcut store.
func NewShortcutStore(paths *config.Paths) *FileShortcutStore {
	return &FileShortcutStore{paths: paths}
}

// Load reads the current shortcut bindings. A missing file yields an empty
// snapshot (all commands unbound).
func (s *FileShortcutStore) Load() (model.ShortcutSnapshot, error) {
	path := s.paths.ShortcutsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.ShortcutSnapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read shortcuts file: %w", err)
	}

	var file shortcutsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid shortcuts file: %w", err)
	}

	if file.HiliteSchema == "" {
		return nil, version.MissingShortcutsSchema(path)
	}
	if file.HiliteSchema != version.CurrentShortcutsSchema() {
		return nil, version.InvalidShortcutsSchema(path, file.HiliteSchema)
	}

	if file.Bindings == nil {
		return model.ShortcutSnapshot{}, nil
	}
	return model.ShortcutSnapshot(file.Bindings), nil
}

// Save writes the shortcut bindings, stamping the current schema.
func (s *FileShortcutStore) Save(snapshot model.ShortcutSnapshot) error {
	path := s.paths.ShortcutsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create shortcuts file: %w", err)
	}
	defer f.Close()

	file := shortcutsFile{
		HiliteSchema: version.CurrentShortcutsSchema(),
		Bindings:     snapshot,
	}
	return toml.NewEncoder(f).Encode(file)
}
