// Package apiserver provides a pure JSON API HTTP server implementation
package apiserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// PlannerAPIServer exposes the meal-plan generator as a JSON API
type PlannerAPIServer struct {
	config         *config.Config
	logger         *zap.Logger
	server         *http.Server
	router         *chi.Mux
	plannerService inbound.PlannerService
}

// NewPlannerAPIServer creates a new planner API server instance
func NewPlannerAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	plannerService inbound.PlannerService,
) *PlannerAPIServer {
	server := &PlannerAPIServer{
		config:         cfg,
		logger:         log,
		plannerService: plannerService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures pure JSON API routes
func (s *PlannerAPIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware for API
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}

	// API-specific middleware
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5))
	}
	r.Use(middleware.JSONOnly())

	// Health check endpoint
	r.Get("/health", s.handleHealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *PlannerAPIServer) setupAPIV1Routes(r chi.Router) {
	h := handlers.NewAPIHandlers(s.plannerService, s.config.Generator.EnforceGuardrails, s.logger)

	r.Route("/meal-plans", func(r chi.Router) {
		r.Post("/preview", h.PreviewPlan)
		r.Post("/compare", h.ComparePlans)
		r.Post("/suggestions", h.TuningSuggestions)
	})
}

// Start starts the planner API HTTP server
func (s *PlannerAPIServer) Start() error {
	s.logger.Info("Starting planner API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *PlannerAPIServer) Server() *http.Server {
	return s.server
}

// Router returns the configured handler, useful for in-process testing
func (s *PlannerAPIServer) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the planner API server
func (s *PlannerAPIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down planner API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides health check endpoint
func (s *PlannerAPIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().Unix(),
	})
}
