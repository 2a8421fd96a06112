package api

import (
	"encoding/json"
	"io"
	"time"

	"antriqu/internal/infra/display"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 30 * time.Second

type DisplayHandler struct {
	hub *display.Hub
}

func NewDisplayHandler(hub *display.Hub) *DisplayHandler {
	return &DisplayHandler{hub: hub}
}

// @Summary Display stream
// @Description Server-sent events with ticket changes and call announcements for the customer display
// @Tags display
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /display/stream [get]
func (h *DisplayHandler) Stream(c *gin.Context) {
	clientID, messages, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("connected", gin.H{"clientId": clientID})
	c.Writer.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ticker.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent(msg.Event, json.RawMessage(msg.Data))
			return true
		}
	})
}
