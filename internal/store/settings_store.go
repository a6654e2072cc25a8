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

// FileSettingsStore implements SettingsStore using the filesystem.
type FileSettingsStore struct {
	paths *config.Paths
}

// NewSettingsStore creates a new settings store.
func NewSettingsStore(paths *config.Paths) *FileSettingsStore {
	return &FileSettingsStore{paths: paths}
}

// Load reads settings from disk.
// Returns defaults if the file doesn't exist.
func (s *FileSettingsStore) Load() (*model.Settings, error) {
	path := s.paths.SettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings model.Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings file: %w", err)
	}

	if settings.HiliteSchema == "" {
		return nil, version.MissingSettingsSchema(path)
	}
	if settings.HiliteSchema != version.CurrentSettingsSchema() {
		return nil, version.InvalidSettingsSchema(path, settings.HiliteSchema)
	}

	return &settings, nil
}

// Save writes settings to disk.
func (s *FileSettingsStore) Save(settings *model.Settings) error {
	settings.HiliteSchema = version.CurrentSettingsSchema()

	path := s.paths.SettingsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(settings)
}
