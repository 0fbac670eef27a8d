// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the routing and middleware knobs the router needs.
type RouterConfig struct {
	// RateLimitPerMinute caps API requests per client IP per minute.
	RateLimitPerMinute int

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string
}

// NewRouter builds the Chi router with the full middleware stack and all
// API routes.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 300
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(AccessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		MaxAge:         300,
	}))

	// Health endpoints: permissive rate limit for monitoring probes.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByRealIP(1000, time.Minute))
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	// Query endpoints: standard rate limit plus Prometheus metrics.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByRealIP(cfg.RateLimitPerMinute, time.Minute))
		r.Use(PrometheusMetrics)

		r.Post("/recommendations", handler.Recommendations)
		r.Get("/similar/{title}", handler.Similar)
		r.Get("/genres", handler.Genres)
		r.Get("/genres/{genre}/top", handler.GenreTop)
		r.Get("/languages/{language}/top", handler.LanguageTop)
		r.Post("/taste", handler.Taste)
		r.Get("/catalog", handler.Catalog)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
