// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package api provides the HTTP surface of Reeltaste: a Chi-routed JSON
// API over the recommendation engine, plus health and Prometheus
// endpoints. The engine itself never sees HTTP concerns; this package
// owns request decoding, validation, and error mapping.
package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reeltaste/internal/metrics"
	"github.com/tomtom215/reeltaste/internal/recommend"
	"github.com/tomtom215/reeltaste/internal/validation"
)

// Handler serves the recommendation API endpoints.
type Handler struct {
	engine *recommend.Engine
}

// NewHandler creates a handler over the given engine.
func NewHandler(engine *recommend.Engine) *Handler {
	return &Handler{engine: engine}
}

// rankRequest is the POST /api/v1/recommendations body.
type rankRequest struct {
	Genres           []string `json:"genres"`
	Actors           []string `json:"actors"`
	Directors        []string `json:"directors"`
	Kind             string   `json:"kind" validate:"omitempty,oneof=movie series"`
	Language         string   `json:"language"`
	Limit            int      `json:"limit" validate:"gte=0"`
	RatingWeight     *float64 `json:"rating_weight" validate:"omitempty,gte=0"`
	PreferenceWeight *float64 `json:"preference_weight" validate:"omitempty,gte=0"`
}

// preferences converts the request body into engine preferences.
func (req *rankRequest) preferences() recommend.Preferences {
	return recommend.Preferences{
		Genres:    req.Genres,
		Actors:    req.Actors,
		Directors: req.Directors,
		Kind:      req.Kind,
		Language:  req.Language,
	}
}

// weights converts the optional weight overrides into engine weights.
// Returns the zero value when neither is given, which selects the engine
// defaults.
func (req *rankRequest) weights() recommend.Weights {
	if req.RatingWeight == nil && req.PreferenceWeight == nil {
		return recommend.Weights{}
	}
	var w recommend.Weights
	if req.RatingWeight != nil {
		w.Rating = *req.RatingWeight
	}
	if req.PreferenceWeight != nil {
		w.Preference = *req.PreferenceWeight
	}
	return w
}

// Recommendations handles POST /api/v1/recommendations.
// Ranks the catalog against the submitted taste profile.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid JSON body", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, verr.Message(), nil)
		return
	}

	results, err := h.engine.Rank(req.preferences(), req.weights(), req.Limit)
	if err != nil {
		respondEngineError(w, "rank", err)
		return
	}
	metrics.ObserveQuery("rank", start)

	respondData(w, map[string]interface{}{
		"results": results,
		"count":   len(results),
	}, start)
}

// Similar handles GET /api/v1/similar/{title}.
// Returns the items closest to the titled item in the text feature space.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil || title == "" {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid title", err)
		return
	}
	limit := getIntParam(r, "limit", 0)

	results, err := h.engine.SimilarTo(title, limit)
	if err != nil {
		respondEngineError(w, "similar", err)
		return
	}
	metrics.ObserveQuery("similar", start)

	respondData(w, map[string]interface{}{
		"title":   title,
		"results": results,
		"count":   len(results),
	}, start)
}

// Genres handles GET /api/v1/genres.
// Returns the genre vocabulary of the fitted catalog.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap, err := h.engine.Snapshot()
	if err != nil {
		respondEngineError(w, "genres", err)
		return
	}

	respondData(w, map[string]interface{}{
		"genres": snap.GenreVocabulary(),
	}, start)
}

// GenreTop handles GET /api/v1/genres/{genre}/top.
// Returns the best-rated items of a genre above a quality floor.
func (h *Handler) GenreTop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genre, err := url.PathUnescape(chi.URLParam(r, "genre"))
	if err != nil || genre == "" {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid genre", err)
		return
	}
	limit := getIntParam(r, "limit", 0)
	minRating := getFloatParam(r, "min_rating", 7.0)

	results, err := h.engine.TopByGenre(genre, limit, minRating)
	if err != nil {
		respondEngineError(w, "genre_top", err)
		return
	}
	metrics.ObserveQuery("genre_top", start)

	respondData(w, map[string]interface{}{
		"genre":      genre,
		"min_rating": minRating,
		"results":    results,
		"count":      len(results),
	}, start)
}

// LanguageTop handles GET /api/v1/languages/{language}/top.
// Returns the best-rated items of a language.
func (h *Handler) LanguageTop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	language, err := url.PathUnescape(chi.URLParam(r, "language"))
	if err != nil || language == "" {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid language", err)
		return
	}
	limit := getIntParam(r, "limit", 0)

	results, err := h.engine.TopByLanguage(language, limit)
	if err != nil {
		respondEngineError(w, "language_top", err)
		return
	}
	metrics.ObserveQuery("language_top", start)

	respondData(w, map[string]interface{}{
		"language": language,
		"results":  results,
		"count":    len(results),
	}, start)
}

// tasteRequest is the POST /api/v1/taste body.
type tasteRequest struct {
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
}

// Taste handles POST /api/v1/taste.
// Analyzes the submitted taste profile against the fitted catalog.
func (h *Handler) Taste(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req tasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid JSON body", err)
		return
	}

	analysis, err := h.engine.AnalyzeTaste(recommend.Preferences{
		Genres:    req.Genres,
		Actors:    req.Actors,
		Directors: req.Directors,
	})
	if err != nil {
		respondEngineError(w, "taste", err)
		return
	}
	metrics.ObserveQuery("taste", start)

	respondData(w, analysis, start)
}

// Catalog handles GET /api/v1/catalog.
// Returns every item of the fitted catalog in index order.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap, err := h.engine.Snapshot()
	if err != nil {
		respondEngineError(w, "catalog", err)
		return
	}

	respondData(w, map[string]interface{}{
		"items":     snap.Items(),
		"count":     snap.Size(),
		"version":   snap.Version(),
		"fitted_at": snap.FittedAt(),
	}, start)
}

// HealthLive handles GET /api/v1/health/live.
// Reports process liveness only.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles GET /api/v1/health/ready.
// Ready means a catalog snapshot has been fitted.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Fitted() {
		respondError(w, http.StatusServiceUnavailable, codeNotFitted,
			"Catalog not fitted yet", nil)
		return
	}
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}
