package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server wraps the HTTP server hosting the websocket endpoint and the
// read-only inspection routes.
type Server struct {
	httpServer  *http.Server
	dataWatcher *DataWatcher
	app         *AppContext
}

// dataChangeReloader reloads state when data files change on disk, so
// external edits to colors.toml or shortcuts.toml are picked up without a
// restart. Reloading the colors fires the usual post-mutation hooks.
type dataChangeReloader struct {
	app *AppContext
}

func (r *dataChangeReloader) OnDataChange(kind DataChangeKind) {
	switch kind {
	case DataChangeColors:
		if _, err := r.app.ColorService.Reload(); err != nil {
			log.Printf("Warning: failed to reload colors after file change: %v", err)
		}
	case DataChangeShortcuts:
		if _, err := r.app.ShortcutWatcher.Reconcile(); err != nil {
			log.Printf("Warning: failed to reconcile shortcuts after file change: %v", err)
		}
	}
}

// NewServer creates a server over the given app context, listening on port.
func NewServer(app *AppContext, port int) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/ws", app.Hub.ServeWS)
	handler := &Handler{app: app}
	handler.RegisterRoutes(mux)

	dataWatcher, err := NewDataWatcher(app.Paths.DataRoot())
	if err != nil {
		log.Printf("Warning: failed to create data watcher: %v", err)
		dataWatcher = nil
	} else {
		dataWatcher.Subscribe(&dataChangeReloader{app: app})
	}

	wrapped := Logging(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		dataWatcher: dataWatcher,
		app:         app,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.dataWatcher != nil {
		if err := s.dataWatcher.Start(); err != nil {
			log.Printf("Warning: failed to start data watcher: %v", err)
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.dataWatcher != nil {
		s.dataWatcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
