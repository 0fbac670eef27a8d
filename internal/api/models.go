// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package api

import "time"

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Data is the endpoint-specific payload, nil on error.
	Data interface{} `json:"data,omitempty"`

	// Error carries error details when Status is "error".
	Error *APIError `json:"error,omitempty"`

	// Metadata carries response metadata.
	Metadata Metadata `json:"metadata"`
}

// APIError is a machine-readable error payload.
type APIError struct {
	// Code is a stable machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description safe to show to clients.
	Message string `json:"message"`
}

// Metadata carries response metadata.
type Metadata struct {
	// Timestamp is when the response was produced.
	Timestamp time.Time `json:"timestamp"`

	// QueryTimeMS is the server-side processing time in milliseconds.
	QueryTimeMS int64 `json:"query_time_ms,omitempty"`
}

// Error codes returned by the API.
const (
	codeInvalidRequest  = "INVALID_REQUEST"
	codeValidationError = "VALIDATION_ERROR"
	codeNotFitted       = "NOT_FITTED"
	codeNotFound        = "NOT_FOUND"
	codeInternalError   = "INTERNAL_ERROR"
)
