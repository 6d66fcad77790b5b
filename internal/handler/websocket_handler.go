package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/service"
)

// CountdownWSHandler handles WebSocket connections for
// /ws/countdown/:session_id/:user_id.
type CountdownWSHandler struct {
	hub    *service.CountdownHub
	logger *zap.Logger
}

// NewCountdownWSHandler creates the countdown WebSocket handler.
func NewCountdownWSHandler(hub *service.CountdownHub, logger *zap.Logger) *CountdownWSHandler {
	return &CountdownWSHandler{hub: hub, logger: logger}
}

// wsCommand is the only inbound frame: {"action":"join"}.
type wsCommand struct {
	Action string `json:"action"`
}

// ServeWS upgrades the request and streams tick snapshots until the client
// disconnects. Path: /ws/countdown/:session_id/:user_id
func (h *CountdownWSHandler) ServeWS(c *gin.Context) {
	sessionID := c.Param("session_id")
	userID := c.Param("user_id")
	if sessionID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and user_id required"})
		return
	}

	conn, err := h.hub.Upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	peer, cleanup, err := h.hub.Register(sessionID, userID, conn)
	if err != nil {
		raw, _ := json.Marshal(gin.H{"error": "session not found"})
		_ = conn.WriteMessage(websocket.TextMessage, raw)
		return
	}
	defer cleanup()

	// First frame: the current view, before the next tick lands.
	if snap, ok := h.hub.Snapshot(sessionID); ok {
		if raw, err := json.Marshal(snap); err == nil {
			_ = conn.WriteMessage(websocket.TextMessage, raw)
		}
	}

	go h.writePump(peer)
	h.readPump(peer)
}

func (h *CountdownWSHandler) readPump(p *service.Peer) {
	defer func() {
		_ = p.Conn.Close()
	}()
	for {
		_, data, err := p.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("read error", zap.Error(err))
			}
			break
		}
		var cmd wsCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			continue
		}
		if cmd.Action == "join" {
			accepted := h.hub.Join(p.SessionID, p.UserID)
			h.logger.Info("join requested over ws",
				zap.String("session_id", p.SessionID),
				zap.String("user_id", p.UserID),
				zap.Bool("accepted", accepted))
		}
	}
}

func (h *CountdownWSHandler) writePump(p *service.Peer) {
	defer func() {
		_ = p.Conn.Close()
	}()
	for data := range p.Send {
		if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
}
