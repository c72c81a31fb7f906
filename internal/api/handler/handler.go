// Package handler provides HTTP handlers for all API endpoints. Handlers
// validate input, call the store or the simulation engine, and map the
// error taxonomy to HTTP statuses: not found -> 404, invalid game state ->
// 409, bad input -> 400.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/cache"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  store.Store
	engine *sim.Engine
	cache  *cache.Cache
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(st store.Store, engine *sim.Engine, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		store:  st,
		engine: engine,
		cache:  c,
		cfg:    cfg,
	}
}

// writeStoreError maps storage and engine errors to the API error shape.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, sim.ErrInvalidState):
		respond.WriteError(w, http.StatusConflict, "INVALID_STATE", err.Error())
	default:
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Basketball Simulator API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStore verifies storage backend connectivity.
// @Summary Store health check
// @Description Verifies the storage backend is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/store [get]
func (h *Handler) HealthCheckStore(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"store":     "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"store":     "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
