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

// colorsFile is the on-disk shape of colors.toml.
type colorsFile struct {
	HiliteSchema string              `toml:"hilite_schema"`
	Colors       []model.ColorRecord `toml:"colors"`
}

// FileColorStore implements ColorStore using a single TOML file.
type FileColorStore struct {
	paths *config.Paths
}

// NewColorStore creates a new color store.
func NewColorStore(paths *config.Paths) *FileColorStore {
	return &FileColorStore{paths: paths}
}

// Load reads the color collection from disk. A missing file yields an empty
// collection. Records persisted without a color number (older files) are
// repaired from their position and the repaired collection is written back.
func (s *FileColorStore) Load() ([]model.ColorRecord, error) {
	path := s.paths.ColorsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.ColorRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read colors file: %w", err)
	}

	var file colorsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid colors file: %w", err)
	}

	if file.HiliteSchema == "" {
		return nil, version.MissingColorsSchema(path)
	}
	if file.HiliteSchema != version.CurrentColorsSchema() {
		return nil, version.InvalidColorsSchema(path, file.HiliteSchema)
	}

	colors := file.Colors
	if colors == nil {
		colors = []model.ColorRecord{}
	}

	if needsRenumber(colors) {
		model.Renumber(colors)
		if err := s.Save(colors); err != nil {
			return nil, fmt.Errorf("failed to repair color numbers: %w", err)
		}
	}

	return colors, nil
}

// Save writes the full color collection to disk, stamping the current schema.
func (s *FileColorStore) Save(colors []model.ColorRecord) error {
	path := s.paths.ColorsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create colors file: %w", err)
	}
	defer f.Close()

	file := colorsFile{
		HiliteSchema: version.CurrentColorsSchema(),
		Colors:       colors,
	}
	return toml.NewEncoder(f).Encode(file)
}

// Exists returns true if the colors file exists.
func (s *FileColorStore) Exists() bool {
	_, err := os.Stat(s.paths.ColorsPath())
	return err == nil
}

// needsRenumber reports whether any record lacks a color number or the
// numbers are not exactly 1..N in order.
func needsRenumber(colors []model.ColorRecord) bool {
	for i, c := range colors {
		if c.ColorNumber != i+1 {
			return true
		}
	}
	return false
}
