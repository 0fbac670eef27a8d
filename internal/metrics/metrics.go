// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package metrics provides Prometheus instrumentation for fit and query
// performance, exposed on /metrics by the API router.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine metrics

	FitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reeltaste_fit_duration_seconds",
			Help:    "Duration of catalog fits in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reeltaste_fits_total",
			Help: "Total number of successful catalog fits",
		},
	)

	FitErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reeltaste_fit_errors_total",
			Help: "Total number of failed catalog fits",
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reeltaste_catalog_items",
			Help: "Number of items in the currently fitted catalog",
		},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reeltaste_query_duration_seconds",
			Help:    "Duration of engine queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "rank", "similar", "genre_top", "language_top", "taste"
	)

	QueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reeltaste_query_errors_total",
			Help: "Total number of failed engine queries",
		},
		[]string{"operation", "reason"}, // reason: "not_fitted", "not_found"
	)

	// API metrics

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reeltaste_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reeltaste_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// ObserveQuery records one engine query observation.
func ObserveQuery(operation string, start time.Time) {
	QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path string, status int, start time.Time) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}
