package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manas360/booking-service/internal/handler"
	"github.com/manas360/booking-service/pkg/constants"
)

// New builds the HTTP router.
func New(
	sessionHandler *handler.SessionHandler,
	portalHandler *handler.PortalHandler,
	catalogHandler *handler.CatalogHandler,
	countdownWS *handler.CountdownWSHandler,
	health *handler.HealthHandler,
) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(constants.PathHealth, health.Health)
	r.GET(constants.PathReady, health.Ready)

	// REST sessions + yield
	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:id", sessionHandler.GetSession)
	}
	r.GET("/yield", sessionHandler.Yield)

	// Per-actor portal transitions
	portal := r.Group("/portal/:user_id")
	{
		portal.GET("", portalHandler.State)
		portal.POST("/join", portalHandler.Join)
		portal.POST("/launch-vr", portalHandler.LaunchVR)
		portal.POST("/admit", portalHandler.Admit)
		portal.POST("/leave", portalHandler.Leave)
		portal.POST("/feedback", portalHandler.AcknowledgeFeedback)
		portal.POST("/role", portalHandler.SwitchRole)
		portal.POST("/drop-in", portalHandler.DropIn)
		portal.POST("/quick-vr", portalHandler.QuickVR)
	}

	// Static catalogs
	cat := r.Group("/catalog")
	{
		cat.GET("/themes", catalogHandler.Themes)
		cat.GET("/environments", catalogHandler.Environments)
		cat.GET("/modules", catalogHandler.Modules)
	}

	// WebSocket countdown feed
	r.GET(constants.PathCountdownWS, countdownWS.ServeWS)

	return r
}
