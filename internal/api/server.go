package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/handler"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/cache"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(st store.Store, engine *sim.Engine, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg))
	}

	// --- Handler dependencies ---
	h := handler.New(st, engine, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/store", h.HealthCheckStore)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.CreateTeam)
			r.Get("/", h.ListTeams)
			r.Get("/{teamID}", h.GetTeam)
			r.Put("/{teamID}", h.UpdateTeam)
			r.Delete("/{teamID}", h.DeleteTeam)
		})

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.CreatePlayer)
			r.Get("/", h.ListPlayers)
			r.Get("/{playerID}", h.GetPlayer)
			r.Put("/{playerID}", h.UpdatePlayer)
			r.Delete("/{playerID}", h.DeletePlayer)
		})

		r.Route("/coaches", func(r chi.Router) {
			r.Post("/", h.CreateCoach)
			r.Get("/", h.ListCoaches)
			r.Get("/{coachID}", h.GetCoach)
			r.Put("/{coachID}", h.UpdateCoach)
			r.Delete("/{coachID}", h.DeleteCoach)
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/", h.CreateGame)
			r.Get("/", h.ListGames)
			r.Get("/{gameID}", h.GetGame)
			r.Put("/{gameID}", h.UpdateGame)
			r.Delete("/{gameID}", h.DeleteGame)
			r.Post("/{gameID}/simulate", h.SimulateGame)
		})

		r.Route("/trainings", func(r chi.Router) {
			r.Post("/", h.CreateTraining)
			r.Get("/", h.ListTrainings)
			r.Post("/process", h.ProcessTrainings)
			r.Get("/{trainingID}", h.GetTraining)
			r.Put("/{trainingID}", h.UpdateTraining)
			r.Delete("/{trainingID}", h.DeleteTraining)
			r.Post("/{trainingID}/check", h.CheckTraining)
		})

		r.Get("/standings", h.GetStandings)
	})

	return r
}
