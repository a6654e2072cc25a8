package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes.
const (
	CurrentColorsVersion    = 1
	CurrentShortcutsVersion = 1
	CurrentSettingsVersion  = 1
)

// Schema type prefixes for config files.
const (
	ColorsSchemaPrefix    = "colors/"
	ShortcutsSchemaPrefix = "shortcuts/"
	SettingsSchemaPrefix  = "settings/"
)

// MinHiliteVersion maps schema identifiers to the minimum hilite version
// required. Used to provide helpful upgrade messages when encountering newer
// schemas.
var MinHiliteVersion = map[string]string{
	"colors/1":    "0.1.0",
	"shortcuts/1": "0.1.0",
	"settings/1":  "0.1.0",
}

// FormatColorsSchema creates a colors schema string from a version number.
// Example: FormatColorsSchema(1) returns "colors/1"
func FormatColorsSchema(v int) string {
	return fmt.Sprintf("%s%d", ColorsSchemaPrefix, v)
}

// FormatShortcutsSchema creates a shortcuts schema string from a version number.
func FormatShortcutsSchema(v int) string {
	return fmt.Sprintf("%s%d", ShortcutsSchemaPrefix, v)
}

// FormatSettingsSchema creates a settings schema string from a version number.
func FormatSettingsSchema(v int) string {
	return fmt.Sprintf("%s%d", SettingsSchemaPrefix, v)
}

// ParseColorsVersion extracts the version number from a colors schema string.
// Returns an error if the format is invalid.
func ParseColorsVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, ColorsSchemaPrefix, "colors")
}

// ParseShortcutsVersion extracts the version number from a shortcuts schema string.
func ParseShortcutsVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, ShortcutsSchemaPrefix, "shortcuts")
}

// ParseSettingsVersion extracts the version number from a settings schema string.
func ParseSettingsVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, SettingsSchemaPrefix, "settings")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentColorsSchema returns the current colors schema string.
func CurrentColorsSchema() string {
	return FormatColorsSchema(CurrentColorsVersion)
}

// CurrentShortcutsSchema returns the current shortcuts schema string.
func CurrentShortcutsSchema() string {
	return FormatShortcutsSchema(CurrentShortcutsVersion)
}

// CurrentSettingsSchema returns the current settings schema string.
func CurrentSettingsSchema() string {
	return FormatSettingsSchema(CurrentSettingsVersion)
}
