package display

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"antriqu/internal/usecase"

	"github.com/google/uuid"
)

const (
	EventTicket       = "ticket"
	EventAnnouncement = "announcement"

	clientBuffer = 16
)

type Message struct {
	Event string
	Data  []byte
}

type client struct {
	id      string
	channel chan Message
}

// Hub fans ticket events and announcements out to every connected display.
// Slow clients drop messages instead of blocking the sender.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	closed  bool
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

// Subscribe registers a display. The returned channel is closed when the
// subscription is cancelled or the hub shuts down.
func (h *Hub) Subscribe() (string, <-chan Message, func()) {
	c := &client{
		id:      uuid.NewString(),
		channel: make(chan Message, clientBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(c.channel)
		return c.id, c.channel, func() {}
	}
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Debug("Display connected", "client_id", c.id)

	return c.id, c.channel, func() { h.unsubscribe(c.id) }
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(c.channel)
	}
	h.mu.Unlock()
	if ok {
		h.logger.Debug("Display disconnected", "client_id", id)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Publish(ctx context.Context, event usecase.TicketEvent) error {
	return h.broadcast(EventTicket, event)
}

func (h *Hub) Deliver(ctx context.Context, announcement usecase.Announcement) error {
	return h.broadcast(EventAnnouncement, announcement)
}

func (h *Hub) broadcast(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := Message{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.channel <- msg:
		default:
			h.logger.Warn("Display buffer full, dropping message", "client_id", c.id, "event", event)
		}
	}
	return nil
}

// Close disconnects every display and rejects later subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, c := range h.clients {
		close(c.channel)
		delete(h.clients, id)
	}
}
