package api

import (
	"log"

	"github.com/amterp/hilite/internal/config"
	"github.com/amterp/hilite/internal/i18n"
	"github.com/amterp/hilite/internal/menu"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/service"
	"github.com/amterp/hilite/internal/shortcut"
	"github.com/amterp/hilite/internal/store"
)

// AppContext bundles the wired dependencies shared by the server, the
// dispatcher, and the CLI.
type AppContext struct {
	Paths            *config.Paths
	ColorStore       store.ColorStore
	PageStore        store.PageStore
	ShortcutStore    store.ShortcutStore
	SettingsStore    store.SettingsStore
	ColorService     *service.ColorService
	HighlightService *service.HighlightService
	Projector        *menu.Projector
	Registry         menu.Registry
	ShortcutWatcher  *shortcut.Watcher
	Hub              *Hub
	Router           *CommandRouter
	Dispatcher       *Dispatcher
	Catalog          *i18n.Catalog
}

// menuRefresher rebuilds the menu projection after every color mutation,
// pairing the fresh collection with the watcher's current snapshot.
type menuRefresher struct {
	projector *menu.Projector
	watcher   *shortcut.Watcher
}

func (m *menuRefresher) ColorsChanged(colors []model.ColorRecord) {
	m.projector.Rebuild(colors, m.watcher.Snapshot())
}

// BuildAppContext wires stores, services, projector, watcher, hub, router,
// and dispatcher for the given data directory (empty = default location).
//
// Post-mutation hooks are registered here: the hub broadcasts colorsUpdated
// and the projector rebuilds the menu after every committed color mutation;
// shortcut drift additionally triggers a menu rebuild via the watcher.
func BuildAppContext(dataDir string) (*AppContext, error) {
	paths := config.NewPaths(dataDir)

	colorStore := store.NewColorStore(paths)
	pageStore := store.NewPageStore(paths)
	shortcutStore := store.NewShortcutStore(paths)
	settingsStore := store.NewSettingsStore(paths)

	catalog := i18n.Default()
	if settings, err := settingsStore.Load(); err == nil && settings.Locale != "" {
		localePath := settings.Locale
		if loaded, err := i18n.LoadLocale(localePath); err == nil {
			catalog = loaded
		} else {
			log.Printf("Warning: failed to load locale %s: %v", localePath, err)
		}
	}

	colorService := service.NewColorService(colorStore)
	highlightService := service.NewHighlightService(pageStore)

	registry := menu.NewFileRegistry(paths)
	projector := menu.NewProjector(registry, catalog)

	watcher := shortcut.NewWatcher(shortcutStore, func(snapshot model.ShortcutSnapshot) {
		projector.Rebuild(colorService.Colors(), snapshot)
	})

	hub := NewHub()
	router := NewCommandRouter(colorService, hub)
	dispatcher := NewDispatcher(colorService, highlightService, router, watcher, hub)
	hub.SetMessageHandler(dispatcher.HandleMessage)

	// Post-commit hooks: broadcast first, then menu rebuild. Order is not
	// contractual; both are isolated from the mutation's own response.
	colorService.Subscribe(hub)
	colorService.Subscribe(&menuRefresher{projector: projector, watcher: watcher})

	return &AppContext{
		Paths:            paths,
		ColorStore:       colorStore,
		PageStore:        pageStore,
		ShortcutStore:    shortcutStore,
		SettingsStore:    settingsStore,
		ColorService:     colorService,
		HighlightService: highlightService,
		Projector:        projector,
		Registry:         registry,
		ShortcutWatcher:  watcher,
		Hub:              hub,
		Router:           router,
		Dispatcher:       dispatcher,
		Catalog:          catalog,
	}, nil
}

// Bootstrap seeds the default palette on first run, loads the collection
// into the mirror, primes the shortcut snapshot, and builds the initial
// menu projection.
func (ctx *AppContext) Bootstrap() error {
	if err := ctx.ColorService.SeedDefaults(); err != nil {
		return err
	}
	colors, err := ctx.ColorService.Load()
	if err != nil {
		return err
	}
	if err := ctx.ShortcutWatcher.Prime(); err != nil {
		log.Printf("Warning: failed to read shortcut bindings: %v", err)
	}
	ctx.Projector.Rebuild(colors, ctx.ShortcutWatcher.Snapshot())
	return nil
}
