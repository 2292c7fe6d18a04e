// Package main is the entry point for the skycast API server.
//
// It loads configuration, wires the upstream forecast client behind the
// cache, optionally connects the favourites database, builds the HTTP server
// with the core chassis, and listens until SIGINT/SIGTERM triggers a
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skycast/internal/api/handlers"
	"skycast/internal/config"
	"skycast/internal/core"
	"skycast/internal/db"
	"skycast/internal/forecast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so main() can cleanly exit on error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("skycast API starting",
		"environment", cfg.Environment,
		"port", cfg.Server.Port,
	)

	client := forecast.NewClient(forecast.ClientConfig{
		ForecastURL:       cfg.Upstream.ForecastURL,
		GeocodeURL:        cfg.Upstream.GeocodeURL,
		UserAgent:         cfg.Upstream.UserAgent,
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	}, logger)
	cache := forecast.NewCache(cfg.Cache.TTL, logger)
	forecasts := forecast.NewService(client, cache, logger)

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Favourites need Postgres; without a DATABASE_URL the insight
	// endpoints still run and the favourites routes are not mounted.
	var pool *pgxpool.Pool
	var favHandler *handlers.FavouritesHandler
	if cfg.Database.URL != "" {
		pool, err = db.NewPool(context.Background(), cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return fmt.Errorf("connecting database: %w", err)
		}
		defer pool.Close()

		repo := db.NewFavouriteRepository(pool)
		favHandler = handlers.NewFavouritesHandler(repo, forecasts, srv.Validator, logger)
		srv.HealthProbes = append(srv.HealthProbes, dbProbe{pool: pool})
	} else {
		logger.Warn("DATABASE_URL not set; favourites endpoints disabled")
	}

	insightsHandler := handlers.NewInsightsHandler(forecasts, logger)
	srv.MountRoutes(func(r chi.Router) {
		insightsHandler.RegisterRoutes(r)
		if favHandler != nil {
			r.Route("/favourites", favHandler.RegisterRoutes)
		}
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return srv.Shutdown(shutdownCtx)
}

// newLogger builds the process-wide JSON logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// dbProbe reports database connectivity for the health endpoint.
type dbProbe struct {
	pool *pgxpool.Pool
}

func (p dbProbe) Name() string { return "database" }

func (p dbProbe) Check(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
