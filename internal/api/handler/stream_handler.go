package handler

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/stream"
)

// StreamHandler upgrades admin sessions to the realtime scan feed.
type StreamHandler struct {
	hub *stream.Hub
}

// NewStreamHandler creates the StreamHandler.
func NewStreamHandler(hub *stream.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// ScanFeed — GET /api/v1/stream/scans (websocket)
//
// The feed is advisory: missed events are gone, the scan history endpoint is
// the authoritative record.
func (h *StreamHandler) ScanFeed(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{})
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := h.hub.Subscribe(64)
	defer h.hub.Unsubscribe(sub)

	readErr := make(chan error, 1)
	go func() {
		// Drain client frames so pings and close frames are processed.
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case <-readErr:
			conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case evt, ok := <-sub:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "closed")
				return
			}
			writeCtx, cancelWrite := context.WithTimeout(ctx, 5*time.Second)
			err := wsjson.Write(writeCtx, conn, evt)
			cancelWrite()
			if err != nil {
				conn.Close(websocket.StatusNormalClosure, "write_failed")
				return
			}
		}
	}
}
