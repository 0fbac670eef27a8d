// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reeltaste/internal/metrics"
	"github.com/tomtom215/reeltaste/internal/recommend"
)

// CatalogLoader produces a fresh normalized catalog, typically by
// re-reading the configured catalog file.
type CatalogLoader func() ([]recommend.Item, error)

// CatalogFitter matches the engine's fit entry point.
type CatalogFitter interface {
	Fit(items []recommend.Item) (*recommend.Snapshot, error)
}

// RefitService periodically reloads the catalog and re-fits the engine,
// swapping in a new snapshot atomically. A failed reload or fit leaves
// the current snapshot serving; the next tick tries again.
type RefitService struct {
	fitter   CatalogFitter
	loader   CatalogLoader
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewRefitService creates a refit service with the given reload interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefitService(fitter CatalogFitter, loader CatalogLoader, interval time.Duration, logger zerolog.Logger) *RefitService {
	return &RefitService{
		fitter:   fitter,
		loader:   loader,
		interval: interval,
		logger:   logger.With().Str("service", "refit").Logger(),
		name:     "catalog-refit",
	}
}

// Serve implements suture.Service, running the periodic refit loop.
func (s *RefitService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog refit service running")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog refit service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refit()
		}
	}
}

// refit performs one reload-and-fit cycle.
func (s *RefitService) refit() {
	start := time.Now()

	items, err := s.loader()
	if err != nil {
		metrics.FitErrorsTotal.Inc()
		s.logger.Warn().Err(err).Msg("catalog reload failed, keeping current snapshot")
		return
	}

	snap, err := s.fitter.Fit(items)
	if err != nil {
		metrics.FitErrorsTotal.Inc()
		s.logger.Warn().Err(err).Msg("catalog fit failed, keeping current snapshot")
		return
	}

	metrics.FitDuration.Observe(time.Since(start).Seconds())
	metrics.FitsTotal.Inc()
	metrics.CatalogItems.Set(float64(snap.Size()))

	s.logger.Info().
		Int("items", snap.Size()).
		Int64("version", snap.Version()).
		Msg("catalog refitted")
}

// String implements fmt.Stringer; suture uses it in log events.
func (s *RefitService) String() string {
	return s.name
}
