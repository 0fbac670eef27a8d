// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reeltaste/internal/logging"
	"github.com/tomtom215/reeltaste/internal/metrics"
	"github.com/tomtom215/reeltaste/internal/recommend"
)

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Err(err).Msg("api error")
	}

	respondJSON(w, status, &APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now()},
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondData sends a success response with query timing metadata.
func respondData(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondEngineError maps engine sentinel errors onto API errors.
// ErrNotFitted means the service has no snapshot yet (503, retryable);
// ErrNotFound is a bad item reference (404). Anything else is a 500.
func respondEngineError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFitted):
		metrics.QueryErrorsTotal.WithLabelValues(operation, "not_fitted").Inc()
		respondError(w, http.StatusServiceUnavailable, codeNotFitted,
			"Catalog not fitted yet, try again shortly", err)
	case errors.Is(err, recommend.ErrNotFound):
		metrics.QueryErrorsTotal.WithLabelValues(operation, "not_found").Inc()
		respondError(w, http.StatusNotFound, codeNotFound,
			"Item not found in catalog", err)
	default:
		metrics.QueryErrorsTotal.WithLabelValues(operation, "internal").Inc()
		respondError(w, http.StatusInternalServerError, codeInternalError,
			"Query failed", err)
	}
}

// getIntParam parses an integer query parameter, falling back to def for
// missing or malformed values.
func getIntParam(r *http.Request, name string, def int) int {
	if s := r.URL.Query().Get(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

// getFloatParam parses a float query parameter, falling back to def for
// missing or malformed values.
func getFloatParam(r *http.Request, name string, def float64) float64 {
	if s := r.URL.Query().Get(name); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}
