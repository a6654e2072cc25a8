package api

import (
	"log"

	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/service"
)

// CommandRouter maps inbound triggers (menu clicks, shortcut commands) to a
// concrete color from the mirror and dispatches a highlight instruction to
// the page that raised the trigger. Triggers that resolve to nothing (stale
// menu id, shortcut position beyond the collection) are silently ignored;
// dispatch failures are logged, never surfaced to the trigger source.
type CommandRouter struct {
	colors *service.ColorService
	hub    *Hub
}

// NewCommandRouter creates a new command router.
func NewCommandRouter(colors *service.ColorService, hub *Hub) *CommandRouter {
	return &CommandRouter{colors: colors, hub: hub}
}

// MenuClicked handles a context-menu trigger. The menu id carries the color
// id directly.
func (r *CommandRouter) MenuClicked(pageID, menuID string) {
	colorID, ok := model.ColorIDFromMenuID(menuID)
	if !ok {
		return // Parent entry or foreign menu id
	}

	record := r.colors.ColorByID(colorID)
	if record == nil {
		return // Color deleted since the menu was built
	}
	r.dispatch(pageID, record)
}

// Command handles a keyboard-shortcut trigger. Legacy command names address
// positions 0-4, custom slots 5-9; a position past the end of the collection
// resolves to no action.
func (r *CommandRouter) Command(pageID, name string) {
	pos, ok := model.CommandPosition(name)
	if !ok {
		return
	}

	record, ok := r.colors.ColorAt(pos)
	if !ok {
		return
	}
	r.dispatch(pageID, record)
}

func (r *CommandRouter) dispatch(pageID string, record *model.ColorRecord) {
	push := Push{
		Type: PushHighlight,
		Data: map[string]interface{}{"color": record.Color},
	}
	if err := r.hub.SendToPage(pageID, push); err != nil {
		log.Printf("Highlight dispatch to page %s failed: %v", pageID, err)
	}
}
