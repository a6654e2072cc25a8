package service

import (
	"testing"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/store"
	"github.com/amterp/hilite/testutil"
)

// recordingSubscriber captures every notification it receives.
type recordingSubscriber struct {
	calls [][]model.ColorRecord
}

func (r *recordingSubscriber) ColorsChanged(colors []model.ColorRecord) {
	r.calls = append(r.calls, colors)
}

func newTestColorService(t *testing.T) *ColorService {
	t.Helper()
	paths := testutil.TempDataDir(t)
	svc := NewColorService(store.NewColorStore(paths))
	if _, err := svc.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc
}

func TestColorServiceSeedDefaults(t *testing.T) {
	paths := testutil.TempDataDir(t)
	svc := NewColorService(store.NewColorStore(paths))

	if err := svc.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	colors := svc.Colors()
	if len(colors) != 5 {
		t.Fatalf("Expected 5 seeded colors, got %d", len(colors))
	}
	if colors[0].Color != "#FFFF00" || colors[0].NameKey != "colorYellow" {
		t.Errorf("Unexpected first seed: %+v", colors[0])
	}
	for i, c := range colors {
		if c.ColorNumber != i+1 {
			t.Errorf("colors[%d].ColorNumber = %d, want %d", i, c.ColorNumber, i+1)
		}
		if c.ID == "" {
			t.Errorf("colors[%d] has empty id", i)
		}
	}

	// A second seed must not duplicate the palette
	if err := svc.SeedDefaults(); err != nil {
		t.Fatalf("Second SeedDefaults failed: %v", err)
	}
	if len(svc.Colors()) != 5 {
		t.Errorf("Second seed changed the collection: %d colors", len(svc.Colors()))
	}
}

func TestColorServiceSeedRespectsEmptyFile(t *testing.T) {
	paths := testutil.TempDataDir(t)
	colorStore := store.NewColorStore(paths)

	// A present-but-empty file means the user cleared their colors
	if err := colorStore.Save([]model.ColorRecord{}); err != nil {
		t.Fatal(err)
	}

	svc := NewColorService(colorStore)
	if _, err := svc.Load(); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if len(svc.Colors()) != 0 {
		t.Errorf("Seed should not repopulate an explicitly empty file, got %d colors", len(svc.Colors()))
	}
}

func TestColorServiceAddNormalizes(t *testing.T) {
	svc := newTestColorService(t)

	record, colors, err := svc.Add("  #ffaa00 ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if record.Color != "#FFAA00" {
		t.Errorf("Color = %q, want canonical uppercase", record.Color)
	}
	if record.ColorNumber != 1 {
		t.Errorf("ColorNumber = %d, want 1", record.ColorNumber)
	}
	if record.NameKey != NameKeyCustom {
		t.Errorf("NameKey = %q, want %q", record.NameKey, NameKeyCustom)
	}
	if len(colors) != 1 {
		t.Errorf("Expected 1 color in returned collection, got %d", len(colors))
	}
}

func TestColorServiceAddRejectsInvalid(t *testing.T) {
	svc := newTestColorService(t)

	_, _, err := svc.Add("not-a-color")
	if !hilerr.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if len(svc.Colors()) != 0 {
		t.Error("Failed add must leave the collection untouched")
	}
}

func TestColorServiceAddRejectsDuplicate(t *testing.T) {
	svc := newTestColorService(t)

	if _, _, err := svc.Add("#FFAA00"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Same value in different case
	_, _, err := svc.Add("#ffaa00")
	if !hilerr.IsDuplicateColor(err) {
		t.Errorf("Expected duplicate error, got %v", err)
	}
	if len(svc.Colors()) != 1 {
		t.Errorf("Collection changed on rejected add: %d colors", len(svc.Colors()))
	}
}

func TestColorServiceCapacity(t *testing.T) {
	svc := newTestColorService(t)

	for i := 0; i < model.MaxCustomColors; i++ {
		hex := testHex(i)
		if _, _, err := svc.Add(hex); err != nil {
			t.Fatalf("Add %d (%s) failed: %v", i, hex, err)
		}
	}

	_, _, err := svc.Add("#ABCDEF")
	if !hilerr.IsCapacityExceeded(err) {
		t.Errorf("Expected capacity error at %d colors, got %v", model.MaxCustomColors, err)
	}
	if len(svc.Colors()) != model.MaxCustomColors {
		t.Errorf("Collection size = %d, want %d", len(svc.Colors()), model.MaxCustomColors)
	}
}

func TestColorServiceDeleteRenumbers(t *testing.T) {
	svc := newTestColorService(t)

	var ids []string
	for i := 0; i < 5; i++ {
		record, _, err := svc.Add(testHex(i))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		ids = append(ids, record.ID)
	}

	// Delete the middle record; everything after it shifts down
	colors, err := svc.Delete(ids[2])
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(colors) != 4 {
		t.Fatalf("Expected 4 colors, got %d", len(colors))
	}
	for i, c := range colors {
		if c.ColorNumber != i+1 {
			t.Errorf("colors[%d].ColorNumber = %d, want %d", i, c.ColorNumber, i+1)
		}
		if c.ID == ids[2] {
			t.Error("Deleted color still present")
		}
	}

	// The record that was number 4 is now number 3
	if colors[2].ID != ids[3] {
		t.Errorf("colors[2].ID = %s, want %s", colors[2].ID, ids[3])
	}
}

func TestColorServiceDeleteMissing(t *testing.T) {
	svc := newTestColorService(t)

	if _, err := svc.Delete("c_absent"); !hilerr.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
	if _, err := svc.Delete(""); !hilerr.IsValidationError(err) {
		t.Errorf("Expected validation error for empty id, got %v", err)
	}
}

func TestColorServiceClear(t *testing.T) {
	svc := newTestColorService(t)

	// Clearing an empty collection is a no-op and reports it
	cleared, err := svc.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cleared {
		t.Error("Clear on empty collection should report nothing to clear")
	}

	if _, _, err := svc.Add("#FFAA00"); err != nil {
		t.Fatal(err)
	}

	cleared, err = svc.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !cleared {
		t.Error("Clear should report true when colors were removed")
	}
	if len(svc.Colors()) != 0 {
		t.Errorf("Expected empty collection, got %d colors", len(svc.Colors()))
	}
}

func TestColorServiceNotifiesSubscribers(t *testing.T) {
	svc := newTestColorService(t)

	sub := &recordingSubscriber{}
	svc.Subscribe(sub)

	record, _, err := svc.Add("#FFAA00")
	if err != nil {
		t.Fatal(err)
	}
	if len(sub.calls) != 1 {
		t.Fatalf("Expected 1 notification after add, got %d", len(sub.calls))
	}
	if len(sub.calls[0]) != 1 || sub.calls[0][0].Color != "#FFAA00" {
		t.Errorf("Notification carried %+v", sub.calls[0])
	}

	if _, err := svc.Delete(record.ID); err != nil {
		t.Fatal(err)
	}
	if len(sub.calls) != 2 {
		t.Fatalf("Expected 2 notifications after delete, got %d", len(sub.calls))
	}

	// A rejected mutation must not notify
	if _, _, err := svc.Add("bad"); err == nil {
		t.Fatal("Add should have failed")
	}
	if len(sub.calls) != 2 {
		t.Errorf("Failed add must not notify, got %d notifications", len(sub.calls))
	}

	// Clear on empty collection must not notify either
	if _, err := svc.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(sub.calls) != 2 {
		t.Errorf("No-op clear must not notify, got %d notifications", len(sub.calls))
	}
}

// testHex produces distinct valid hex values for bulk adds.
func testHex(i int) string {
	return "#" + string(rune('A'+i%6)) + "00A" + string(rune('A'+i/6)) + "F"
}
