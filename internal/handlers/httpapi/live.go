package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Mobile clients connect from app webviews with no fixed origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveUpdates streams counter updates for one session over a websocket. The
// stream is advisory; clients re-fetch the session for the authoritative
// count.
func (h *Handler) liveUpdates(c *gin.Context) {
	if h.feed == nil {
		c.JSON(http.StatusNotImplemented, errorResponse{Error: "live updates not enabled"})
		return
	}

	sessionID := c.Param("id")

	updates, stop, err := h.feed.Subscribe(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).WithField("session_id", sessionID).Warn("live feed subscription failed")
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "live updates unavailable"})
		return
	}
	defer stop()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written its own error response
		return
	}
	defer conn.Close()

	// Drain client frames so close handshakes are noticed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case <-pings.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
