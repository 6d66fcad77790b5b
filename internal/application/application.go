package application

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/config"
	"github.com/manas360/booking-service/internal/countdown"
	"github.com/manas360/booking-service/internal/handler"
	"github.com/manas360/booking-service/internal/model"
	"github.com/manas360/booking-service/internal/router"
	"github.com/manas360/booking-service/internal/service"
)

// API is the HTTP + WebSocket API application.
type API struct {
	cfg    *config.Config
	srv    *http.Server
	hub    *service.CountdownHub
	logger *zap.Logger
}

// NewAPI creates the API application: validates config, builds the registry,
// portal service, countdown hub and router.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, _ := zap.NewProduction()
	if cfg.AppEnv == "development" {
		logger, _ = zap.NewDevelopment()
	}

	clock := countdown.SystemClock()
	rnd := rand.New(rand.NewSource(clock.Now().UnixNano()))

	reg := service.NewRegistry()
	portal := service.NewPortal(reg, cfg, clock, rnd, logger)
	hub := service.NewCountdownHub(reg, cfg, clock, rnd, logger)

	if cfg.SeedDemo {
		if err := seedDemoSession(portal, clock); err != nil {
			logger.Warn("demo seed failed", zap.Error(err))
		}
	}

	sessionHandler := handler.NewSessionHandler(portal, cfg.WSBaseURL)
	portalHandler := handler.NewPortalHandler(portal)
	catalogHandler := handler.NewCatalogHandler()
	countdownWS := handler.NewCountdownWSHandler(hub, logger)
	health := handler.NewHealthHandler()

	r := router.New(sessionHandler, portalHandler, catalogHandler, countdownWS, health)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, srv: srv, hub: hub, logger: logger}, nil
}

// seedDemoSession inserts the scheduling form's first entry so a fresh
// process has something to render.
func seedDemoSession(portal *service.Portal, clock countdown.Clock) error {
	_, err := portal.Create(model.CreateSessionRequest{
		Kind:            model.KindIndividual,
		PatientName:     "Sarah Johnson",
		StartTime:       clock.Now().Add(5 * time.Minute),
		DurationMinutes: 45,
		Notes:           "Follow up on anxiety exercises.",
	})
	return err
}

// Run starts the HTTP server and blocks until ctx is cancelled; then shuts
// down gracefully, tearing down the countdown hub first so no tick fires
// against a dying server.
func (a *API) Run(ctx context.Context) error {
	addr := a.srv.Addr
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", addr)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  Sessions:      %s/sessions", base)
	log.Printf("  Yield:         %s/yield", base)
	log.Printf("  Portal:        %s/portal/:user_id", base)
	log.Printf("  WebSocket:     ws://%s:%s/ws/countdown/:session_id/:user_id", host, a.cfg.HTTPPort)

	go func() {
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	a.hub.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.srv.Shutdown(shutdownCtx)
	_ = a.logger.Sync()
	if err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
