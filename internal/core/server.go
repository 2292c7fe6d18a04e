// Package core provides the API chassis for the skycast service: a chi
// router with cross-cutting concerns -- panic recovery, request IDs,
// structured logging, body limits -- applied before requests reach domain
// handlers.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skycast/internal/config"
)

// Server encapsulates the router and shared dependencies so tests can inject
// their own configuration and logger.
type Server struct {
	Config       *config.Config
	Logger       *slog.Logger
	Validator    *Validator
	HealthProbes []HealthProbe

	router *chi.Mux
}

// NewServer builds the chassis. The caller mounts domain routes afterwards
// via V1 route registrars; this separation keeps core free of handler
// imports.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the router as an http.Handler for http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// MountRoutes registers the global middleware chain, the v1 group, and the
// health endpoint. Middleware order matters: the recoverer is outermost so
// it catches panics from everything below, and the request ID must exist
// before the logger runs.
func (s *Server) MountRoutes(v1 func(r chi.Router)) {
	s.router.Use(s.Recoverer)
	s.router.Use(ContextTimeout(s.requestTimeout()))
	s.router.Use(RequestID)
	s.router.Use(RequestLogger(s.Logger))

	s.router.Route("/v1", v1)
	s.router.Get("/health", s.HandleHealth)
}

// requestTimeout returns the configured soft request deadline.
func (s *Server) requestTimeout() time.Duration {
	if s.Config != nil && s.Config.Server.RequestTimeout > 0 {
		return s.Config.Server.RequestTimeout
	}
	return 29 * time.Second
}

// Shutdown logs the termination; resource owners (database pool, HTTP
// server) are closed by the entry point that created them.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("server shutdown initiated")
	_ = ctx
	return nil
}
