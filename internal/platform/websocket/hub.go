// Package websocket pushes triage queue changes to connected clients so
// waiting-room displays and dashboards can update without polling.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/triageq/triageq/internal/domain/triage"
)

// Event is a queue change notification sent to WebSocket clients.
type Event struct {
	Type      string          `json:"type"`
	PatientID string          `json:"patientId"`
	Timestamp time.Time       `json:"timestamp"`
	Patient   json.RawMessage `json:"patient,omitempty"`
}

const (
	EventPatientAdmitted = "patient.admitted"
	EventStatusChanged   = "patient.status-changed"
)

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client represents a single WebSocket connection.
type Client struct {
	ID   string
	Send chan []byte
	conn Conn
}

// Hub tracks connected clients and broadcasts queue events to all of them.
// All operations are thread-safe via sync.RWMutex.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  zerolog.Logger
}

// NewHub creates a Hub ready to manage WebSocket clients.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
}

// Broadcast sends an event to every connected client. Clients with full
// buffers are skipped so one slow consumer cannot stall the queue.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal queue event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PatientAdmitted implements triage.Listener.
func (h *Hub) PatientAdmitted(rec *triage.PatientRecord) {
	h.broadcastRecord(EventPatientAdmitted, rec)
}

// PatientStatusChanged implements triage.Listener.
func (h *Hub) PatientStatusChanged(rec *triage.PatientRecord) {
	h.broadcastRecord(EventStatusChanged, rec)
}

func (h *Hub) broadcastRecord(eventType string, rec *triage.PatientRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		h.logger.Error().Err(err).Str("patient_id", rec.ID).Msg("failed to marshal patient record")
		return
	}
	h.Broadcast(Event{
		Type:      eventType,
		PatientID: rec.ID,
		Timestamp: time.Now(),
		Patient:   payload,
	})
}

// ---------------------------------------------------------------------------
// Handler — Echo HTTP handler for WebSocket connections
// ---------------------------------------------------------------------------

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced at the middleware layer.
	},
}

// Handler handles HTTP-to-WebSocket upgrades.
type Handler struct {
	hub *Hub
}

// NewHandler creates a handler bound to the given Hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes registers the WebSocket endpoint on the provided group.
func (wsh *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ws", wsh.HandleConnect)
}

// HandleConnect upgrades the connection, registers the client, and starts
// the read/write pumps.
func (wsh *Handler) HandleConnect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:   uuid.New().String(),
		Send: make(chan []byte, 256),
		conn: &gorillaConnAdapter{ws},
	}

	wsh.hub.Register(client)

	go wsh.writePump(client)
	go wsh.readPump(client)

	return nil
}

// readPump drains inbound messages until the connection drops; the feed is
// one-way, so inbound payloads are discarded.
func (wsh *Handler) readPump(client *Client) {
	defer func() {
		wsh.hub.Unregister(client)
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump writes messages from the Send channel to the connection.
func (wsh *Handler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.Send {
		if err := client.conn.WriteMessage(gorillawebsocket.TextMessage, message); err != nil {
			break
		}
	}
}

// gorillaConnAdapter wraps a gorilla/websocket.Conn to satisfy Conn.
type gorillaConnAdapter struct {
	conn *gorillawebsocket.Conn
}

func (a *gorillaConnAdapter) ReadMessage() (int, []byte, error) {
	return a.conn.ReadMessage()
}

func (a *gorillaConnAdapter) WriteMessage(messageType int, data []byte) error {
	return a.conn.WriteMessage(messageType, data)
}

func (a *gorillaConnAdapter) Close() error {
	return a.conn.Close()
}
