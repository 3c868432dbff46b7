package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ForecastHandler   *handler.ForecastHandler
	ObligationHandler *handler.ObligationHandler
	BalanceHandler    *handler.BalanceHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/forecast", cfg.ForecastHandler.Get)

		r.Route("/obligations", func(r chi.Router) {
			r.Route("/one-off", func(r chi.Router) {
				r.Post("/", cfg.ObligationHandler.CreateOneOff)
				r.Get("/", cfg.ObligationHandler.ListOneOffs)
				r.Delete("/{id}", cfg.ObligationHandler.DeleteOneOff)
			})

			r.Route("/recurring", func(r chi.Router) {
				r.Post("/", cfg.ObligationHandler.CreateRecurring)
				r.Get("/", cfg.ObligationHandler.ListRecurring)
				r.Delete("/{id}", cfg.ObligationHandler.DeleteRecurring)
				r.Post("/{id}/settlements", cfg.ObligationHandler.MarkSettled)
				r.Get("/{id}/settlements", cfg.ObligationHandler.ListSettlements)
			})

			r.Post("/import", cfg.ObligationHandler.Import)
		})

		r.Route("/balances", func(r chi.Router) {
			r.Post("/", cfg.BalanceHandler.Record)
			r.Get("/", cfg.BalanceHandler.List)
		})
	})

	return r
}
