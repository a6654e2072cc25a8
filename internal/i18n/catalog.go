package i18n

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Catalog resolves display-name keys to localized strings. Lookups that miss
// fall back to the key itself, so a missing locale entry never breaks a menu
// title.
type Catalog struct {
	entries map[string]string
}

// builtin is the default (English) catalog.
var builtin = map[string]string{
	"colorYellow":        "Yellow",
	"colorCyan":          "Cyan",
	"colorLime":          "Lime",
	"colorPink":          "Pink",
	"colorOrange":        "Orange",
	"customColor":        "Custom color",
	"highlightSelection": "Highlight selection",
}

// Default returns a catalog with the builtin entries.
func Default() *Catalog {
	entries := make(map[string]string, len(builtin))
	for k, v := range builtin {
		entries[k] = v
	}
	return &Catalog{entries: entries}
}

// LoadLocale returns a catalog with the builtin entries overlaid by the
// given TOML locale file (key = "translated string" pairs).
func LoadLocale(path string) (*Catalog, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}

	var overrides map[string]string
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("invalid locale file: %w", err)
	}

	for k, v := range overrides {
		c.entries[k] = v
	}
	return c, nil
}

// Lookup returns the display string for a key and whether it resolved.
func (c *Catalog) Lookup(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Resolve returns the display string for a key, falling back to the key
// itself when there is no entry.
func (c *Catalog) Resolve(key string) string {
	if v, ok := c.entries[key]; ok {
		return v
	}
	return key
}
