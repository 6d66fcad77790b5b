package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
	"github.com/manas360/booking-service/internal/service"
)

// SessionHandler handles the REST API for sessions and the yield report.
type SessionHandler struct {
	portal *service.Portal
	ws     *service.WSConfig
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(portal *service.Portal, wsBaseURL string) *SessionHandler {
	return &SessionHandler{
		portal: portal,
		ws:     &service.WSConfig{BaseURL: wsBaseURL},
	}
}

// CreateSession godoc
// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req model.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	sess, err := h.portal.Create(req)
	if err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": ve.Field, "message": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, model.CreateSessionResponse{
		Session: sess,
		WSURL:   h.ws.CountdownURL(sess.ID, "me"),
	})
}

// ListSessions godoc
// GET /sessions?kind=individual|group|vr
func (h *SessionHandler) ListSessions(c *gin.Context) {
	kind := model.SessionKind(c.Query("kind"))
	switch kind {
	case "", model.KindIndividual, model.KindGroup, model.KindVR:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown kind"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": h.portal.Registry().List(kind)})
}

// GetSession godoc
// GET /sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	sess, err := h.portal.Registry().Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Yield godoc
// GET /yield
func (h *SessionHandler) Yield(c *gin.Context) {
	c.JSON(http.StatusOK, h.portal.Yield())
}
