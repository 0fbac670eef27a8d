// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Command server runs the Reeltaste HTTP API: it loads configuration,
// fits the recommendation engine on the configured catalog (or the
// built-in sample), and serves queries under suture supervision until
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reeltaste/internal/api"
	"github.com/tomtom215/reeltaste/internal/catalog"
	"github.com/tomtom215/reeltaste/internal/config"
	"github.com/tomtom215/reeltaste/internal/logging"
	"github.com/tomtom215/reeltaste/internal/metrics"
	"github.com/tomtom215/reeltaste/internal/recommend"
	"github.com/tomtom215/reeltaste/internal/supervisor"
	"github.com/tomtom215/reeltaste/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	engine, err := recommend.NewEngine(&recommend.Config{
		VocabSize:    cfg.Recommend.VocabSize,
		DefaultLimit: cfg.Recommend.DefaultLimit,
		MaxLimit:     cfg.Recommend.MaxLimit,
		DefaultWeights: recommend.Weights{
			Rating:     cfg.Recommend.RatingWeight,
			Preference: cfg.Recommend.PreferenceWeight,
		},
	}, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to create recommendation engine")
	}

	loader := catalogLoader(cfg.Catalog.Path)
	if err := initialFit(engine, loader); err != nil {
		logging.Fatal().Err(err).Msg("initial catalog fit failed")
	}

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.Catalog.ReloadInterval > 0 && cfg.Catalog.Path != "" {
		tree.AddDataService(services.NewRefitService(engine, loader, cfg.Catalog.ReloadInterval, logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("reeltaste starting")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("supervisor stopped")
	}
	logging.Info().Msg("reeltaste stopped")
}

// catalogLoader returns a loader for the configured catalog file, or the
// built-in sample catalog when no file is configured.
func catalogLoader(path string) services.CatalogLoader {
	if path == "" {
		return func() ([]recommend.Item, error) {
			return catalog.Sample(), nil
		}
	}
	return func() ([]recommend.Item, error) {
		return catalog.Load(path)
	}
}

// initialFit performs the startup fit and records the fit metrics.
func initialFit(engine *recommend.Engine, loader services.CatalogLoader) error {
	start := time.Now()

	items, err := loader()
	if err != nil {
		metrics.FitErrorsTotal.Inc()
		return err
	}
	snap, err := engine.Fit(items)
	if err != nil {
		metrics.FitErrorsTotal.Inc()
		return err
	}

	metrics.FitDuration.Observe(time.Since(start).Seconds())
	metrics.FitsTotal.Inc()
	metrics.CatalogItems.Set(float64(snap.Size()))
	return nil
}
