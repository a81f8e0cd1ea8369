package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/futliga/liga-api/internal/usecase"
)

const (
	watchSubscribeBuffer = 32
	watchWriteTimeout    = 10 * time.Second
	watchPingInterval    = 30 * time.Second
)

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origins are already filtered by the CORS layer; the socket
	// carries public read-only change hints.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Watch upgrades to a websocket and streams change events for one topic,
// e.g. ?topic=matches:1ra or ?topic=avisos. Delivery is best-effort; a
// client that misses an event re-fetches the listing.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Watch")
	defer span.End()

	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		writeError(ctx, w, fmt.Errorf("%w: topic query parameter is required", usecase.ErrInvalidInput))
		return
	}

	conn, err := watchUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the handshake failure to the client.
		h.logger.WarnContext(ctx, "watch upgrade failed", "topic", topic, "error", err)
		return
	}

	events, cancel := h.hub.Subscribe(topic, watchSubscribeBuffer)
	defer cancel()
	defer conn.Close()

	// Reader goroutine notices client disconnects; inbound frames are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pings := time.NewTicker(watchPingInterval)
	defer pings.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				h.logger.DebugContext(ctx, "watch write failed", "topic", topic, "error", err)
				return
			}
		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
