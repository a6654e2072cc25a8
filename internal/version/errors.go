package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType    string // "colors file", "shortcuts file", "settings file"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "colors/2")
	Expected    string // What was expected (e.g., "colors/1")
	MinRequired string // Minimum hilite version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires hilite >= %s (file: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s)",
			e.FileType, e.FilePath,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingColorsSchema creates an error for a colors file missing hilite_schema.
func MissingColorsSchema(path string) error {
	return &SchemaVersionError{
		FileType: "colors file",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentColorsSchema(),
	}
}

// InvalidColorsSchema creates an error for a colors file with an unsupported schema.
func InvalidColorsSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "colors file",
		FilePath: path,
		Found:    found,
		Expected: CurrentColorsSchema(),
	}
	if v, err := ParseColorsVersion(found); err == nil && v > CurrentColorsVersion {
		if minVer, ok := MinHiliteVersion[found]; ok {
			e.MinRequired = minVer
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}

// MissingShortcutsSchema creates an error for a shortcuts file missing hilite_schema.
func MissingShortcutsSchema(path string) error {
	return &SchemaVersionError{
		FileType: "shortcuts file",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentShortcutsSchema(),
	}
}

// InvalidShortcutsSchema creates an error for a shortcuts file with an unsupported schema.
func InvalidShortcutsSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "shortcuts file",
		FilePath: path,
		Found:    found,
		Expected: CurrentShortcutsSchema(),
	}
	if v, err := ParseShortcutsVersion(found); err == nil && v > CurrentShortcutsVersion {
		if minVer, ok := MinHiliteVersion[found]; ok {
			e.MinRequired = minVer
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}

// MissingSettingsSchema creates an error for a settings file missing hilite_schema.
func MissingSettingsSchema(path string) error {
	return &SchemaVersionError{
		FileType: "settings file",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentSettingsSchema(),
	}
}

// InvalidSettingsSchema creates an error for a settings file with an unsupported schema.
func InvalidSettingsSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "settings file",
		FilePath: path,
		Found:    found,
		Expected: CurrentSettingsSchema(),
	}
	if v, err := ParseSettingsVersion(found); err == nil && v > CurrentSettingsVersion {
		if minVer, ok := MinHiliteVersion[found]; ok {
			e.MinRequired = minVer
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
