package testutil

import (
	"os"
	"testing"

	"github.com/amterp/hilite/internal/config"
	"github.com/amterp/hilite/internal/model"
)

// TestColor returns a color record with sensible test defaults.
func TestColor(id string, number int, hex string) model.ColorRecord {
	return model.ColorRecord{
		ID:          id,
		ColorNumber: number,
		Color:       hex,
		NameKey:     "customColor",
	}
}

// TestGroup returns a highlight group with one text entry.
func TestGroup(id, hex, text string) model.HighlightGroup {
	return model.HighlightGroup{
		GroupID: id,
		Color:   hex,
		Texts: []model.HighlightText{
			{Text: text, Prefix: "before ", Suffix: " after"},
		},
	}
}

// TempDataDir creates a temporary hilite data directory and returns its
// paths resolver. Cleaned up automatically when the test ends.
func TempDataDir(t *testing.T) *config.Paths {
	t.Helper()

	dir, err := os.MkdirTemp("", "hilite-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	return config.NewPaths(dir)
}
