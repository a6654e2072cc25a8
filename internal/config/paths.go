package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDataDir     = "hilite"
	PagesDir           = "pages"
	ColorsFileName     = "colors.toml"
	ShortcutsFileName  = "shortcuts.toml"
	SettingsFileName   = "settings.toml"
	MenuFileName       = "menu.json"
	PageMetaFileSuffix = ".meta.json"
)

// Paths provides path resolution for hilite data files.
type Paths struct {
	dataDir string
}

// NewPaths creates a new Paths resolver rooted at the given data directory.
// An empty dataDir resolves to the default under the user config dir.
func NewPaths(dataDir string) *Paths {
	if dataDir == "" {
		dataDir = DefaultDataDirPath()
	}
	return &Paths{dataDir: dataDir}
}

// DataRoot returns the root directory for hilite data.
func (p *Paths) DataRoot() string {
	return p.dataDir
}

// ColorsPath returns the path to the custom colors file.
func (p *Paths) ColorsPath() string {
	return filepath.Join(p.dataDir, ColorsFileName)
}

// ShortcutsPath returns the path to the shortcut bindings file.
func (p *Paths) ShortcutsPath() string {
	return filepath.Join(p.dataDir, ShortcutsFileName)
}

// SettingsPath returns the path to the settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.dataDir, SettingsFileName)
}

// MenuPath returns the path to the projected menu tree file.
func (p *Paths) MenuPath() string {
	return filepath.Join(p.dataDir, MenuFileName)
}

// PagesRoot returns the directory holding per-page highlight files.
func (p *Paths) PagesRoot() string {
	return filepath.Join(p.dataDir, PagesDir)
}

// PagePath returns the highlight data file path for a page storage key.
func (p *Paths) PagePath(key string) string {
	return filepath.Join(p.PagesRoot(), key+".json")
}

// PageMetaPath returns the meta sidecar file path for a page storage key.
func (p *Paths) PageMetaPath(key string) string {
	return filepath.Join(p.PagesRoot(), key+PageMetaFileSuffix)
}

// DefaultDataDirPath returns the default data directory under the user
// config dir.
func DefaultDataDirPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultDataDir
	}
	return filepath.Join(base, DefaultDataDir)
}
