package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/coderadar/internal/config"
	"github.com/sevigo/coderadar/internal/core"
	"github.com/sevigo/coderadar/internal/server/handler"
	"github.com/sevigo/coderadar/internal/version"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, reviewer core.Reviewer, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(handler.Recoverer(logger, cfg.IsDevelopment()))
	r.Use(middleware.StripSlashes)

	healthHandler := handler.NewHealthHandler(reviewer.ModelName(), cfg.Server.Port, version.Version)
	reviewHandler := handler.NewReviewHandler(reviewer, cfg.Server.MaxBodyBytes, cfg.IsDevelopment(), logger)

	r.Get("/", healthHandler.Info)

	r.Route("/ai", func(r chi.Router) {
		r.Get("/health", healthHandler.AIHealth)
		r.Post("/get-review", reviewHandler.Handle)
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	return r
}
