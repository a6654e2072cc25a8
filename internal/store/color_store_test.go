package store

import (
	"errors"
	"os"
	"testing"

	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/version"
	"github.com/amterp/hilite/testutil"
)

func TestColorStoreLoadMissingFile(t *testing.T) {
	paths := testutil.TempDataDir(t)
	store := NewColorStore(paths)

	colors, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(colors) != 0 {
		t.Errorf("Expected empty collection, got %d colors", len(colors))
	}
	if store.Exists() {
		t.Error("Exists should be false for a missing file")
	}
}

func TestColorStoreRoundtrip(t *testing.T) {
	paths := testutil.TempDataDir(t)
	store := NewColorStore(paths)

	colors := []model.ColorRecord{
		testutil.TestColor("c_1", 1, "#FFFF00"),
		testutil.TestColor("c_2", 2, "#00FFFF"),
	}
	if err := store.Save(colors); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 colors, got %d", len(loaded))
	}
	if loaded[0].ID != "c_1" || loaded[0].Color != "#FFFF00" || loaded[0].ColorNumber != 1 {
		t.Errorf("Unexpected first record: %+v", loaded[0])
	}
	if !store.Exists() {
		t.Error("Exists should be true after save")
	}
}

func TestColorStoreRepairsNumbers(t *testing.T) {
	paths := testutil.TempDataDir(t)
	store := NewColorStore(paths)

	// Persist records with gapped, out-of-order numbers
	colors := []model.ColorRecord{
		testutil.TestColor("c_1", 4, "#FFFF00"),
		testutil.TestColor("c_2", 9, "#00FFFF"),
		testutil.TestColor("c_3", 0, "#00FF00"),
	}
	if err := store.Save(colors); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i, c := range loaded {
		if c.ColorNumber != i+1 {
			t.Errorf("loaded[%d].ColorNumber = %d, want %d", i, c.ColorNumber, i+1)
		}
	}

	// The repair must have been written back
	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	for i, c := range reloaded {
		if c.ColorNumber != i+1 {
			t.Errorf("reloaded[%d].ColorNumber = %d, want %d", i, c.ColorNumber, i+1)
		}
	}
}

func TestColorStoreMissingSchema(t *testing.T) {
	paths := testutil.TempDataDir(t)
	store := NewColorStore(paths)

	if err := os.MkdirAll(paths.DataRoot(), 0755); err != nil {
		t.Fatal(err)
	}
	content := "[[colors]]\nid = \"c_1\"\ncolor = \"#FFFF00\"\n"
	if err := os.WriteFile(paths.ColorsPath(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	var schemaErr *version.SchemaVersionError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaVersionError, got %v", err)
	}
}

func TestColorStoreUnknownSchema(t *testing.T) {
	paths := testutil.TempDataDir(t)
	store := NewColorStore(paths)

	if err := os.MkdirAll(paths.DataRoot(), 0755); err != nil {
		t.Fatal(err)
	}
	content := "hilite_schema = \"colors/99\"\n"
	if err := os.WriteFile(paths.ColorsPath(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	var schemaErr *version.SchemaVersionError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaVersionError, got %v", err)
	}
}
