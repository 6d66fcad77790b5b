package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
	"github.com/manas360/booking-service/internal/service"
)

// PortalHandler exposes the per-actor lifecycle transitions.
type PortalHandler struct {
	portal *service.Portal
}

// NewPortalHandler creates a portal handler.
func NewPortalHandler(portal *service.Portal) *PortalHandler {
	return &PortalHandler{portal: portal}
}

func (h *PortalHandler) respond(c *gin.Context, state model.PortalStateResponse, err error) {
	if err == nil {
		c.JSON(http.StatusOK, state)
		return
	}
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": ve.Field, "message": ve.Error()})
	case errors.Is(err, errs.ErrSessionNotFound),
		errors.Is(err, errs.ErrUnknownTheme),
		errors.Is(err, errs.ErrUnknownEnvironment):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrNoActiveSession):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "portal transition failed"})
	}
}

// State godoc
// GET /portal/:user_id
func (h *PortalHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.portal.State(c.Param("user_id")))
}

// Join godoc
// POST /portal/:user_id/join
func (h *PortalHandler) Join(c *gin.Context) {
	var req model.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	state, err := h.portal.Join(c.Param("user_id"), req.SessionID)
	h.respond(c, state, err)
}

// LaunchVR godoc
// POST /portal/:user_id/launch-vr
func (h *PortalHandler) LaunchVR(c *gin.Context) {
	var req model.LaunchVRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	state, err := h.portal.LaunchVR(c.Param("user_id"), req.Tier)
	h.respond(c, state, err)
}

// Admit godoc
// POST /portal/:user_id/admit
func (h *PortalHandler) Admit(c *gin.Context) {
	state, err := h.portal.Admit(c.Param("user_id"))
	h.respond(c, state, err)
}

// Leave godoc
// POST /portal/:user_id/leave
func (h *PortalHandler) Leave(c *gin.Context) {
	state, err := h.portal.Leave(c.Param("user_id"))
	h.respond(c, state, err)
}

// AcknowledgeFeedback godoc
// POST /portal/:user_id/feedback
func (h *PortalHandler) AcknowledgeFeedback(c *gin.Context) {
	state, err := h.portal.AcknowledgeFeedback(c.Param("user_id"))
	h.respond(c, state, err)
}

// SwitchRole godoc
// POST /portal/:user_id/role
func (h *PortalHandler) SwitchRole(c *gin.Context) {
	var req model.SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	state, err := h.portal.SwitchRole(c.Param("user_id"), req.Role)
	h.respond(c, state, err)
}

// DropIn godoc
// POST /portal/:user_id/drop-in
func (h *PortalHandler) DropIn(c *gin.Context) {
	var req model.DropInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	state, err := h.portal.DropIn(c.Param("user_id"), req.ThemeSlug)
	h.respond(c, state, err)
}

// QuickVR godoc
// POST /portal/:user_id/quick-vr
func (h *PortalHandler) QuickVR(c *gin.Context) {
	var req model.QuickVRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	state, err := h.portal.QuickVR(c.Param("user_id"), req.EnvironmentID)
	h.respond(c, state, err)
}
