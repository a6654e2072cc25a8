package api

import (
	"net/http"
)

// Handler serves the read-only inspection routes. Pages mutate state over the
// websocket; these routes exist for the CLI and for debugging.
type Handler struct {
	app *AppContext
}

// RegisterRoutes registers all inspection routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/health", h.health)
	mux.HandleFunc("GET /api/v1/colors", h.listColors)
	mux.HandleFunc("GET /api/v1/menu", h.menuEntries)
	mux.HandleFunc("GET /api/v1/pages", h.listPages)
	mux.HandleFunc("GET /api/v1/pages/highlights", h.pageHighlights)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"connectedPages": h.app.Hub.ClientCount(),
	})
}

func (h *Handler) listColors(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"colors": h.app.ColorService.Colors()})
}

func (h *Handler) menuEntries(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"entries": h.app.Registry.Entries()})
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.app.HighlightService.ListPages()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{"pages": pages})
}

func (h *Handler) pageHighlights(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		BadRequest(w, "url query parameter is required")
		return
	}

	groups, err := h.app.HighlightService.Get(url)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{"url": url, "highlights": groups})
}
