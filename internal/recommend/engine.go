// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Engine owns the current Snapshot and serves queries against it. It is
// safe for concurrent use: queries read an immutable snapshot through an
// atomic pointer, and Fit swaps in a fully built replacement only after
// every matrix has been computed. A failed fit leaves the previous
// snapshot untouched.
//
// The engine is stateless between fits. There is no incremental update;
// a re-fit on a new catalog invalidates all previously derived matrices.
type Engine struct {
	config *Config
	logger zerolog.Logger

	snapshot atomic.Pointer[Snapshot]
	fitCount atomic.Int64
}

// NewEngine creates an engine with the given configuration. A nil config
// selects the defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Fit builds a complete snapshot from the normalized catalog and swaps it
// in atomically. Returns ErrEmptyCatalog for a zero-item catalog; on any
// failure the previously fitted snapshot, if any, remains visible.
func (e *Engine) Fit(items []Item) (*Snapshot, error) {
	start := time.Now()

	snap, err := newSnapshot(items, e.config.VocabSize, e.fitCount.Load()+1)
	if err != nil {
		return nil, err
	}

	e.fitCount.Add(1)
	e.snapshot.Store(snap)

	e.logger.Info().
		Int("items", snap.Size()).
		Int("genres", len(snap.genreVocab)).
		Int("terms", len(snap.textVocab)).
		Int64("version", snap.version).
		Dur("elapsed", time.Since(start)).
		Msg("catalog fitted")

	return snap, nil
}

// Snapshot returns the currently fitted snapshot, or ErrNotFitted when no
// fit has succeeded yet.
func (e *Engine) Snapshot() (*Snapshot, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNotFitted
	}
	return snap, nil
}

// Fitted reports whether a successful fit has occurred.
func (e *Engine) Fitted() bool {
	return e.snapshot.Load() != nil
}

// Rank ranks the current snapshot against the preferences. Zero or
// negative topN selects the configured default; topN is clamped to the
// configured maximum. Zero-value weights select the configured defaults.
func (e *Engine) Rank(prefs Preferences, weights Weights, topN int) ([]RankedResult, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	if weights == (Weights{}) {
		weights = e.config.DefaultWeights
	}
	return snap.Rank(prefs, weights, e.clampLimit(topN)), nil
}

// SimilarTo returns the items most similar to the titled item in the
// current snapshot.
func (e *Engine) SimilarTo(title string, topN int) ([]SimilarItem, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.SimilarTo(title, e.clampLimit(topN))
}

// TopByGenre returns the best-rated items of a genre above a quality
// floor, from the current snapshot.
func (e *Engine) TopByGenre(genre string, topN int, minRating float64) ([]Item, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.TopByGenre(genre, e.clampLimit(topN), minRating), nil
}

// TopByLanguage returns the best-rated items of a language from the
// current snapshot.
func (e *Engine) TopByLanguage(language string, topN int) ([]Item, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.TopByLanguage(language, e.clampLimit(topN)), nil
}

// AnalyzeTaste analyzes the preferences against the current snapshot.
func (e *Engine) AnalyzeTaste(prefs Preferences) (TasteAnalysis, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return TasteAnalysis{}, err
	}
	return snap.AnalyzeTaste(prefs), nil
}

// clampLimit applies the configured default and maximum to a caller
// supplied top-N.
func (e *Engine) clampLimit(topN int) int {
	if topN <= 0 {
		return e.config.DefaultLimit
	}
	if topN > e.config.MaxLimit {
		return e.config.MaxLimit
	}
	return topN
}
