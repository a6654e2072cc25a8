package model

import "strings"

// ParentMenuID is the id of the root "highlight selection" context menu entry.
const ParentMenuID = "highlight-selection"

const colorMenuPrefix = "highlight-color:"

// MenuEntry is one node of the projected context-menu tree.
type MenuEntry struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId,omitempty"`
	Title    string `json:"title"`
}

// ColorMenuID derives the deterministic menu entry id for a color record.
func ColorMenuID(colorID string) string {
	return colorMenuPrefix + colorID
}

// ColorIDFromMenuID extracts the color id from a color menu entry id.
// Returns false for ids that are not color entries (e.g. the parent).
func ColorIDFromMenuID(menuID string) (string, bool) {
	if !strings.HasPrefix(menuID, colorMenuPrefix) {
		return "", false
	}
	return strings.TrimPrefix(menuID, colorMenuPrefix), true
}
