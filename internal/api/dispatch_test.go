package api

import (
	"encoding/json"
	"fmt"
	"testing"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/service"
	"github.com/amterp/hilite/internal/shortcut"
	"github.com/amterp/hilite/internal/store"
	"github.com/amterp/hilite/testutil"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	paths := testutil.TempDataDir(t)

	colors := service.NewColorService(store.NewColorStore(paths))
	if _, err := colors.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	highlights := service.NewHighlightService(store.NewPageStore(paths))
	watcher := shortcut.NewWatcher(store.NewShortcutStore(paths), nil)
	hub := NewHub()
	router := NewCommandRouter(colors, hub)

	return NewDispatcher(colors, highlights, router, watcher, hub)
}

func handleJSON(t *testing.T, d *Dispatcher, msg string) map[string]any {
	t.Helper()
	data := d.HandleMessage("page-1", []byte(msg))

	var resp map[string]any
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v (%s)", err, data)
	}
	return resp
}

func TestDispatcherGetColorsEmpty(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{"id":"r1","action":"getColors"}`)
	if resp["success"] != true {
		t.Fatalf("Response = %v", resp)
	}
	if resp["replyTo"] != "r1" {
		t.Errorf("replyTo = %v, want r1", resp["replyTo"])
	}
	colors, ok := resp["colors"].([]any)
	if !ok || len(colors) != 0 {
		t.Errorf("colors = %v, want empty array", resp["colors"])
	}
}

func TestDispatcherAddColor(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{"id":"r2","action":"addColor","color":"#ffaa00"}`)
	if resp["success"] != true {
		t.Fatalf("Response = %v", resp)
	}

	color, ok := resp["color"].(map[string]any)
	if !ok {
		t.Fatalf("color = %v", resp["color"])
	}
	if color["color"] != "#FFAA00" {
		t.Errorf("Stored value = %v, want canonical uppercase", color["color"])
	}
	if color["colorNumber"] != float64(1) {
		t.Errorf("colorNumber = %v, want 1", color["colorNumber"])
	}

	colors, _ := resp["colors"].([]any)
	if len(colors) != 1 {
		t.Errorf("Returned collection has %d colors, want 1", len(colors))
	}
}

func TestDispatcherAddColorDuplicate(t *testing.T) {
	d := newTestDispatcher(t)

	handleJSON(t, d, `{"action":"addColor","color":"#FFAA00"}`)
	resp := handleJSON(t, d, `{"action":"addColor","color":"#ffaa00"}`)

	if resp["success"] != false {
		t.Fatalf("Duplicate add should fail: %v", resp)
	}
	if resp["error"] != hilerr.CodeDuplicateColor {
		t.Errorf("error = %v, want %q", resp["error"], hilerr.CodeDuplicateColor)
	}
}

func TestDispatcherDeleteColor(t *testing.T) {
	d := newTestDispatcher(t)

	add := handleJSON(t, d, `{"action":"addColor","color":"#FFAA00"}`)
	colorID := add["color"].(map[string]any)["id"].(string)
	handleJSON(t, d, `{"action":"addColor","color":"#00FFAA"}`)

	resp := handleJSON(t, d, fmt.Sprintf(`{"action":"deleteColor","colorId":%q}`, colorID))
	if resp["success"] != true {
		t.Fatalf("Response = %v", resp)
	}
	colors, _ := resp["colors"].([]any)
	if len(colors) != 1 {
		t.Fatalf("Remaining colors = %v", resp["colors"])
	}
	// The survivor was renumbered down
	if colors[0].(map[string]any)["colorNumber"] != float64(1) {
		t.Errorf("Survivor number = %v, want 1", colors[0].(map[string]any)["colorNumber"])
	}
}

func TestDispatcherDeleteColorErrors(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{"action":"deleteColor"}`)
	if resp["success"] != false || resp["error"] != hilerr.CodeMissingID {
		t.Errorf("Missing id response = %v", resp)
	}

	resp = handleJSON(t, d, `{"action":"deleteColor","colorId":"c_absent"}`)
	if resp["success"] != false || resp["error"] != hilerr.CodeNotFound {
		t.Errorf("Absent id response = %v", resp)
	}
}

func TestDispatcherCapacityCode(t *testing.T) {
	d := newTestDispatcher(t)

	for i := 0; i < 20; i++ {
		resp := handleJSON(t, d, fmt.Sprintf(`{"action":"addColor","color":"#%02X00FF"}`, i))
		if resp["success"] != true {
			t.Fatalf("Add %d failed: %v", i, resp)
		}
	}

	resp := handleJSON(t, d, `{"action":"addColor","color":"#ABCDEF"}`)
	if resp["success"] != false || resp["error"] != hilerr.CodeCapacityExceeded {
		t.Errorf("Capacity response = %v", resp)
	}
}

func TestDispatcherClearCustomColors(t *testing.T) {
	d := newTestDispatcher(t)

	// Nothing to clear yet
	resp := handleJSON(t, d, `{"action":"clearCustomColors"}`)
	if resp["success"] != true || resp["noCustomColors"] != true {
		t.Errorf("Empty clear response = %v", resp)
	}

	handleJSON(t, d, `{"action":"addColor","color":"#FFAA00"}`)

	resp = handleJSON(t, d, `{"action":"clearCustomColors"}`)
	if resp["success"] != true {
		t.Fatalf("Clear response = %v", resp)
	}
	if _, present := resp["noCustomColors"]; present {
		t.Errorf("noCustomColors should be omitted when colors were cleared: %v", resp)
	}
}

func TestDispatcherHighlightRoundtrip(t *testing.T) {
	d := newTestDispatcher(t)

	save := `{"action":"saveHighlights","url":"https://example.com/a","title":"A",` +
		`"highlights":[{"groupId":"g_1","color":"#FFFF00","texts":[{"text":"hello"}]}]}`
	resp := handleJSON(t, d, save)
	if resp["success"] != true {
		t.Fatalf("Save response = %v", resp)
	}

	resp = handleJSON(t, d, `{"action":"getHighlights","url":"https://example.com/a"}`)
	groups, _ := resp["highlights"].([]any)
	if len(groups) != 1 {
		t.Fatalf("Highlights = %v", resp["highlights"])
	}

	resp = handleJSON(t, d, `{"action":"getAllHighlightedPages"}`)
	pages, _ := resp["pages"].([]any)
	if len(pages) != 1 {
		t.Fatalf("Pages = %v", resp["pages"])
	}

	resp = handleJSON(t, d, `{"action":"deleteHighlight","url":"https://example.com/a","groupId":"g_1"}`)
	if resp["success"] != true {
		t.Fatalf("Delete response = %v", resp)
	}
	if remaining, _ := resp["highlights"].([]any); len(remaining) != 0 {
		t.Errorf("Remaining = %v", resp["highlights"])
	}

	resp = handleJSON(t, d, `{"action":"getAllHighlightedPages"}`)
	if pages, _ := resp["pages"].([]any); len(pages) != 0 {
		t.Errorf("Page should be gone with its last group: %v", resp["pages"])
	}
}

func TestDispatcherDeleteAllHighlightedPages(t *testing.T) {
	d := newTestDispatcher(t)

	handleJSON(t, d, `{"action":"saveHighlights","url":"https://example.com/a",`+
		`"highlights":[{"groupId":"g_1","color":"#FFFF00","texts":[]}]}`)
	handleJSON(t, d, `{"action":"saveHighlights","url":"https://example.com/b",`+
		`"highlights":[{"groupId":"g_2","color":"#00FFFF","texts":[]}]}`)

	resp := handleJSON(t, d, `{"action":"deleteAllHighlightedPages"}`)
	if resp["success"] != true {
		t.Fatalf("Response = %v", resp)
	}

	resp = handleJSON(t, d, `{"action":"getAllHighlightedPages"}`)
	if pages, _ := resp["pages"].([]any); len(pages) != 0 {
		t.Errorf("Pages = %v", resp["pages"])
	}
}

func TestDispatcherTabFocused(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{"id":"r9","action":"tabFocused"}`)
	if resp["success"] != true || resp["replyTo"] != "r9" {
		t.Errorf("Response = %v", resp)
	}
}

func TestDispatcherUnknownAction(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{"action":"flyToTheMoon"}`)
	if resp["success"] != false {
		t.Errorf("Unknown action should fail: %v", resp)
	}
}

func TestDispatcherInvalidJSON(t *testing.T) {
	d := newTestDispatcher(t)

	resp := handleJSON(t, d, `{not json`)
	if resp["success"] != false {
		t.Errorf("Invalid JSON should yield a failure response: %v", resp)
	}
}

func TestDispatcherMenuAndCommandMisses(t *testing.T) {
	d := newTestDispatcher(t)

	// No colors, no connected pages: both triggers are silently absorbed
	resp := handleJSON(t, d, `{"action":"menuClicked","menuId":"highlight-color:c_absent"}`)
	if resp["success"] != true {
		t.Errorf("menuClicked miss response = %v", resp)
	}

	resp = handleJSON(t, d, `{"action":"command","name":"custom-color-5"}`)
	if resp["success"] != true {
		t.Errorf("command miss response = %v", resp)
	}

	resp = handleJSON(t, d, `{"action":"command","name":"not-a-highlight-command"}`)
	if resp["success"] != true {
		t.Errorf("unknown command response = %v", resp)
	}
}
