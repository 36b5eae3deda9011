// Package ws streams newly created notifications to a user's open websocket connections.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Event is the frame written to clients.
type Event struct {
	Type         string              `json:"type"`
	Notification NotificationPayload `json:"notification"`
}

// NotificationPayload is the wire form of a notification.
type NotificationPayload struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	VoiceURL  *string        `json:"voice_url,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

type connGauge interface {
	WSConnected(delta int)
}

// Hub tracks connections per user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	log     *slog.Logger
	gauge   connGauge
}

// NewHub creates a Hub. gauge may be nil.
func NewHub(logger *slog.Logger, gauge connGauge) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		log:     logger.With("component", "ws_hub"),
		gauge:   gauge,
	}
}

// Register adds a client under its user.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()

	if h.gauge != nil {
		h.gauge.WSConnected(1)
	}
}

// Unregister removes a client and closes its send channel. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	_, present := set[c]
	if ok && present {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
		close(c.send)
	}
	h.mu.Unlock()

	if present && h.gauge != nil {
		h.gauge.WSConnected(-1)
	}
}

// Publish sends n to every connection of userID. Slow clients drop the frame.
func (h *Hub) Publish(userID uuid.UUID, n domain.Notification) {
	data, err := json.Marshal(Event{
		Type: "notification",
		Notification: NotificationPayload{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Data:      n.Data,
			VoiceURL:  n.VoiceURL,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		},
	})
	if err != nil {
		h.log.Error("marshal notification", slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			h.log.Warn("client buffer full, dropping frame", slog.String("user_id", userID.String()))
		}
	}
}

// ClientCount returns the number of open connections for userID.
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
