package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Pages connect from arbitrary origins
	},
}

// Push is the JSON envelope for server-initiated messages to pages.
type Push struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Push types sent to pages.
const (
	PushConnected         = "connected"
	PushColorsUpdated     = "colorsUpdated"
	PushRefreshHighlights = "refreshHighlights"
	PushHighlight         = "highlight"
)

// MessageHandler processes an inbound request from a page and returns the
// response payload to send back, or nil for no response.
type MessageHandler func(pageID string, data []byte) []byte

// Hub manages page connections. Each open page holds one websocket; the hub
// broadcasts state changes to all of them and can address a single page for
// highlight instructions. Delivery is best effort: a dead page is dropped
// and logged, never failing the mutation that triggered the push.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	handler MessageHandler
}

// Client represents one connected page.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	pageID string
	url    string
}

// NewHub creates a new hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// SetMessageHandler sets the handler for inbound page requests.
func (h *Hub) SetMessageHandler(handler MessageHandler) {
	h.handler = handler
}

// ColorsChanged implements service.ColorsSubscriber: every committed color
// mutation is pushed to all connected pages.
func (h *Hub) ColorsChanged(colors []model.ColorRecord) {
	h.Broadcast(Push{
		Type: PushColorsUpdated,
		Data: map[string]interface{}{"colors": colors},
	})
}

// Broadcast sends a push to every connected page.
func (h *Hub) Broadcast(push Push) {
	data, err := json.Marshal(push)
	if err != nil {
		log.Printf("Failed to marshal push: %v", err)
		return
	}

	for _, client := range h.snapshotClients() {
		h.trySend(client, data)
	}
}

// SendToPage delivers a push to the page with the given id. Returns a
// DeliveryError when the page is no longer connected.
func (h *Hub) SendToPage(pageID string, push Push) error {
	data, err := json.Marshal(push)
	if err != nil {
		return err
	}

	for _, client := range h.snapshotClients() {
		if client.pageID == pageID {
			h.trySend(client, data)
			return nil
		}
	}
	return &hilerr.DeliveryError{PageID: pageID, Cause: hilerr.ErrNotFound}
}

// SendToURL delivers a push to every page showing the given URL.
func (h *Hub) SendToURL(url string, push Push) {
	data, err := json.Marshal(push)
	if err != nil {
		log.Printf("Failed to marshal push: %v", err)
		return
	}

	for _, client := range h.snapshotClients() {
		if client.url == url {
			h.trySend(client, data)
		}
	}
}

func (h *Hub) snapshotClients() []*Client {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()
	return clients
}

// trySend attempts to send data to a client, handling the case where
// the client's channel was closed between snapshot and send.
func (h *Hub) trySend(client *Client, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed by removeClient - client already cleaned up
		}
	}()

	select {
	case client.send <- data:
	default:
		// Client buffer full, close it
		h.removeClient(client)
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// ServeWS handles websocket connection requests. Pages identify themselves
// with ?page=<id>&url=<page url>.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	pageID := r.URL.Query().Get("page")
	if pageID == "" {
		http.Error(w, "page query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 256),
		pageID: pageID,
		url:    r.URL.Query().Get("url"),
	}

	h.addClient(client)

	go client.writePump()
	go client.readPump()

	welcome := Push{
		Type: PushConnected,
		Data: map[string]interface{}{"pageId": pageID},
	}
	if data, err := json.Marshal(welcome); err == nil {
		client.send <- data
	}
}

// readPump reads requests from the page and feeds them to the hub's message
// handler, queueing each response back on the same connection.
func (c *Client) readPump() {
	defer func() {
		// Only call removeClient here - closing send channel signals writePump
		// to exit; writePump is responsible for closing the connection
		c.hub.removeClient(c)
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		if c.hub.handler == nil {
			continue
		}
		if resp := c.hub.handler(c.pageID, data); resp != nil {
			c.hub.trySend(c, resp)
		}
	}
}

// writePump writes queued messages to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// Each message is its own frame so pages always receive valid JSON
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

			n := len(c.send)
			for i := 0; i < n; i++ {
				queuedMsg := <-c.send
				if err := c.conn.WriteMessage(websocket.TextMessage, queuedMsg); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ClientCount returns the number of connected pages.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
