package menu

import (
	"fmt"
	"log"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/i18n"
	"github.com/amterp/hilite/internal/model"
)

// Projector derives the context-menu tree from the color collection and the
// live shortcut bindings. It must be re-run after every color mutation and
// after any detected shortcut drift.
type Projector struct {
	registry Registry
	catalog  *i18n.Catalog
}

// NewProjector creates a projector writing to the given registry.
func NewProjector(registry Registry, catalog *i18n.Catalog) *Projector {
	return &Projector{registry: registry, catalog: catalog}
}

// Rebuild replaces the whole menu tree: one parent entry plus one child per
// color in collection order. Duplicate-id conflicts (a stale rebuild racing a
// fresh one) are skipped; any other creation failure is logged and the
// rebuild continues. Rebuild never fails the mutation that triggered it.
func (p *Projector) Rebuild(colors []model.ColorRecord, snapshot model.ShortcutSnapshot) {
	if err := p.registry.RemoveAll(); err != nil {
		log.Printf("Menu rebuild: failed to remove entries: %v", err)
	}

	parent := model.MenuEntry{
		ID:    model.ParentMenuID,
		Title: p.catalog.Resolve("highlightSelection"),
	}
	if err := p.registry.Create(parent); err != nil {
		if !hilerr.IsMenuConflict(err) {
			log.Printf("Menu rebuild: failed to create parent entry: %v", err)
		}
	}

	commands := model.HighlightCommands()
	for _, color := range colors {
		entry := model.MenuEntry{
			ID:       model.ColorMenuID(color.ID),
			ParentID: model.ParentMenuID,
			Title:    p.title(color, commands, snapshot),
		}
		if err := p.registry.Create(entry); err != nil {
			if hilerr.IsMenuConflict(err) {
				continue // Stale duplicate, skip
			}
			log.Printf("Menu rebuild: failed to create entry %s: %v", entry.ID, err)
		}
	}
}

// title composes a child entry title: resolved display name, positional
// number, and the bound shortcut in brackets when the color's position has
// one. A nameKey with no catalog entry falls back to the key itself.
func (p *Projector) title(color model.ColorRecord, commands []string, snapshot model.ShortcutSnapshot) string {
	name := p.catalog.Resolve(color.NameKey)
	title := fmt.Sprintf("%s %d", name, color.ColorNumber)

	pos := color.ColorNumber - 1
	if pos >= 0 && pos < len(commands) {
		if key, bound := snapshot[commands[pos]]; bound && key != "" {
			title = fmt.Sprintf("%s [%s]", title, key)
		}
	}
	return title
}
