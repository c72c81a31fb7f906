// Command api is the Basketball Simulator API server.
//
// Usage:
//
//	basketball-api
//	API_PORT=8080 basketball-api
//	DATABASE_URL=postgres://... basketball-api

// @title Basketball Simulator API
// @version 1.0.0
// @description Franchise-management API: rosters, contracts, training, scheduling, and the game simulation engine.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/cache"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/db"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/maintenance"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/seed"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/memstore"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/pgstore"

	_ "github.com/PutSomBaconOnIt/BasketballSimulator-sub000/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Select storage backend
	var st store.Store
	if cfg.UseMemStore() {
		st = memstore.New()
		logger.Info("Using in-memory store")
	} else {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		st = pgstore.New(pool)
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	}

	rng := sim.NewSource(cfg.SimSeed)
	engine := sim.New(st, rng, logger)

	// Seed a demo league on an empty in-memory store if requested
	if cfg.SeedOnStart && cfg.UseMemStore() {
		result := seed.League(ctx, st, rng, cfg.SeedTeams, logger)
		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				logger.Error("seed error", "error", e)
			}
		}
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Start background training sweep
	go maintenance.Start(ctx, engine, maintenance.DefaultConfig(), logger)

	// Create router
	router := api.NewRouter(st, engine, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Basketball Simulator API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
