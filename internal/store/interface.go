package store

import "github.com/amterp/hilite/internal/model"

// ColorStore handles custom color persistence. The whole collection is read
// and written as a unit; callers serialize mutations (see service.ColorService).
type ColorStore interface {
	Load() ([]model.ColorRecord, error)
	Save(colors []model.ColorRecord) error
	Exists() bool
}

// PageStore handles per-page highlight persistence. A page's data file and
// its meta sidecar are created and deleted together.
type PageStore interface {
	Get(url string) ([]model.HighlightGroup, error)
	Save(url string, groups []model.HighlightGroup, meta model.PageMeta) error
	Delete(url string) error
	GetMeta(url string) (*model.PageMeta, error)
	List() ([]model.PageInfo, error)
	DeleteAll() error
}

// ShortcutStore reads the platform shortcut bindings. The bindings file is
// written by the browser layer; the core only re-reads it on reconciliation.
type ShortcutStore interface {
	Load() (model.ShortcutSnapshot, error)
	Save(snapshot model.ShortcutSnapshot) error
}

// SettingsStore handles settings persistence.
type SettingsStore interface {
	Load() (*model.Settings, error)
	Save(settings *model.Settings) error
}
