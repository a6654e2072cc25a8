package api

import (
	"encoding/json"
	"fmt"
	"log"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/service"
	"github.com/amterp/hilite/internal/shortcut"
)

// Request is the envelope for inbound page messages. Every request carries
// an action discriminator; the remaining fields are populated per action.
type Request struct {
	ID     string `json:"id,omitempty"` // echoed back as replyTo
	Action string `json:"action"`

	Color         string                 `json:"color,omitempty"`
	ColorID       string                 `json:"colorId,omitempty"`
	URL           string                 `json:"url,omitempty"`
	GroupID       string                 `json:"groupId,omitempty"`
	Title         string                 `json:"title,omitempty"`
	Highlights    []model.HighlightGroup `json:"highlights,omitempty"`
	NotifyRefresh bool                   `json:"notifyRefresh,omitempty"`
	MenuID        string                 `json:"menuId,omitempty"`
	Name          string                 `json:"name,omitempty"`
}

// baseResponse is embedded in every response payload.
type baseResponse struct {
	ReplyTo string `json:"replyTo,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ColorsResponse answers getColors, addColor, deleteColor, and
// customColorsUpdated. The full collection rides along on success so callers
// never need a follow-up read.
type ColorsResponse struct {
	baseResponse
	Colors []model.ColorRecord `json:"colors"`
	Color  *model.ColorRecord  `json:"color,omitempty"`
}

// ClearColorsResponse answers clearCustomColors.
type ClearColorsResponse struct {
	baseResponse
	NoCustomColors bool `json:"noCustomColors,omitempty"`
}

// HighlightsResponse answers getHighlights and deleteHighlight.
type HighlightsResponse struct {
	baseResponse
	Highlights []model.HighlightGroup `json:"highlights"`
}

// PagesResponse answers getAllHighlightedPages.
type PagesResponse struct {
	baseResponse
	Pages []model.PageInfo `json:"pages"`
}

// AckResponse answers actions with no payload.
type AckResponse struct {
	baseResponse
}

// Dispatcher routes inbound messages by their action discriminator. Every
// request gets a response: unexpected panics are recovered at the top and
// converted into a generic failure so the channel is never left hanging.
type Dispatcher struct {
	colors     *service.ColorService
	highlights *service.HighlightService
	router     *CommandRouter
	watcher    *shortcut.Watcher
	hub        *Hub
}

// NewDispatcher creates a dispatcher over the given collaborators.
func NewDispatcher(colors *service.ColorService, highlights *service.HighlightService,
	router *CommandRouter, watcher *shortcut.Watcher, hub *Hub) *Dispatcher {
	return &Dispatcher{
		colors:     colors,
		highlights: highlights,
		router:     router,
		watcher:    watcher,
		hub:        hub,
	}
}

// HandleMessage implements the hub's MessageHandler: raw request in,
// marshalled response out.
func (d *Dispatcher) HandleMessage(pageID string, data []byte) []byte {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalResponse(&AckResponse{baseResponse{Success: false, Error: "invalid JSON message"}})
	}

	resp := d.Handle(pageID, req)
	return marshalResponse(resp)
}

// Handle processes one request and returns its response payload.
func (d *Dispatcher) Handle(pageID string, req Request) (resp interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic handling %q: %v", req.Action, r)
			resp = &AckResponse{baseResponse{
				ReplyTo: req.ID,
				Success: false,
				Error:   fmt.Sprintf("%v", r),
			}}
		}
	}()

	switch req.Action {
	case "getColors":
		return d.getColors(req)
	case "addColor":
		return d.addColor(req)
	case "deleteColor":
		return d.deleteColor(req)
	case "clearCustomColors":
		return d.clearCustomColors(req)
	case "customColorsUpdated":
		return d.customColorsUpdated(req)
	case "getHighlights":
		return d.getHighlights(req)
	case "saveHighlights":
		return d.saveHighlights(req)
	case "deleteHighlight":
		return d.deleteHighlight(req)
	case "clearAllHighlights":
		return d.clearAllHighlights(req)
	case "getAllHighlightedPages":
		return d.getAllHighlightedPages(req)
	case "deleteAllHighlightedPages":
		return d.deleteAllHighlightedPages(req)
	case "menuClicked":
		d.router.MenuClicked(pageID, req.MenuID)
		return ack(req)
	case "command":
		d.router.Command(pageID, req.Name)
		return ack(req)
	case "tabFocused":
		if _, err := d.watcher.Reconcile(); err != nil {
			log.Printf("Shortcut reconciliation failed: %v", err)
		}
		return ack(req)
	}

	return &AckResponse{baseResponse{
		ReplyTo: req.ID,
		Success: false,
		Error:   fmt.Sprintf("unknown action: %q", req.Action),
	}}
}

func (d *Dispatcher) getColors(req Request) interface{} {
	return &ColorsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Colors:       d.colors.Colors(),
	}
}

func (d *Dispatcher) addColor(req Request) interface{} {
	record, colors, err := d.colors.Add(req.Color)
	if err != nil {
		return colorsFailure(req, err)
	}
	return &ColorsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Colors:       colors,
		Color:        record,
	}
}

func (d *Dispatcher) deleteColor(req Request) interface{} {
	if req.ColorID == "" {
		return colorsFailure(req, hilerr.MissingID("colorId"))
	}
	colors, err := d.colors.Delete(req.ColorID)
	if err != nil {
		return colorsFailure(req, err)
	}
	return &ColorsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Colors:       colors,
	}
}

func (d *Dispatcher) clearCustomColors(req Request) interface{} {
	cleared, err := d.colors.Clear()
	if err != nil {
		return &ClearColorsResponse{baseResponse: failure(req, err)}
	}
	return &ClearColorsResponse{
		baseResponse:   baseResponse{ReplyTo: req.ID, Success: true},
		NoCustomColors: !cleared,
	}
}

func (d *Dispatcher) customColorsUpdated(req Request) interface{} {
	colors, err := d.colors.Reload()
	if err != nil {
		return colorsFailure(req, err)
	}
	return &ColorsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Colors:       colors,
	}
}

func (d *Dispatcher) getHighlights(req Request) interface{} {
	groups, err := d.highlights.Get(req.URL)
	if err != nil {
		return &HighlightsResponse{baseResponse: failure(req, err)}
	}
	return &HighlightsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Highlights:   groups,
	}
}

func (d *Dispatcher) saveHighlights(req Request) interface{} {
	if err := d.highlights.Save(req.URL, req.Highlights, req.Title); err != nil {
		return &AckResponse{failure(req, err)}
	}
	return ack(req)
}

func (d *Dispatcher) deleteHighlight(req Request) interface{} {
	remaining, err := d.highlights.DeleteGroup(req.URL, req.GroupID)
	if err != nil {
		return &HighlightsResponse{baseResponse: failure(req, err)}
	}

	if req.NotifyRefresh {
		d.pushRefresh(req.URL, remaining)
	}
	return &HighlightsResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Highlights:   remaining,
	}
}

func (d *Dispatcher) clearAllHighlights(req Request) interface{} {
	if err := d.highlights.ClearPage(req.URL); err != nil {
		return &AckResponse{failure(req, err)}
	}

	if req.NotifyRefresh {
		d.pushRefresh(req.URL, []model.HighlightGroup{})
	}
	return ack(req)
}

func (d *Dispatcher) getAllHighlightedPages(req Request) interface{} {
	pages, err := d.highlights.ListPages()
	if err != nil {
		return &PagesResponse{baseResponse: failure(req, err)}
	}
	return &PagesResponse{
		baseResponse: baseResponse{ReplyTo: req.ID, Success: true},
		Pages:        pages,
	}
}

func (d *Dispatcher) deleteAllHighlightedPages(req Request) interface{} {
	if err := d.highlights.DeleteAllPages(); err != nil {
		return &AckResponse{failure(req, err)}
	}
	return ack(req)
}

// pushRefresh notifies pages showing the URL that their highlights changed.
// Fire-and-forget relative to the triggering request's response.
func (d *Dispatcher) pushRefresh(url string, groups []model.HighlightGroup) {
	d.hub.SendToURL(url, Push{
		Type: PushRefreshHighlights,
		Data: map[string]interface{}{"url": url, "highlights": groups},
	})
}

func ack(req Request) *AckResponse {
	return &AckResponse{baseResponse{ReplyTo: req.ID, Success: true}}
}

// failure builds the error half of a response. Domain validation errors are
// reported by their stable wire code; anything else carries its message.
func failure(req Request, err error) baseResponse {
	msg := err.Error()
	if code := hilerr.Code(err); code != "" {
		msg = code
	}
	return baseResponse{ReplyTo: req.ID, Success: false, Error: msg}
}

func colorsFailure(req Request, err error) *ColorsResponse {
	return &ColorsResponse{baseResponse: failure(req, err)}
}

func marshalResponse(resp interface{}) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return []byte(`{"success":false,"error":"internal marshalling error"}`)
	}
	return data
}
