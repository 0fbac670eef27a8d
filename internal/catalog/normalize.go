// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package catalog supplies normalized catalogs to the recommendation
// engine. It owns the raw record schema of external data sources, the
// normalization of multi-value fields, the JSON file loader, and a
// built-in sample dataset for running without external data.
package catalog

import (
	"strings"

	"github.com/tomtom215/reeltaste/internal/recommend"
)

// Raw is one catalog record as delivered by an external data provider.
// Multi-value fields (genre, actors, director) arrive as comma-delimited
// strings; missing values arrive as empty strings.
type Raw struct {
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Kind        string  `json:"type"`
	Genre       string  `json:"genre"`
	Language    string  `json:"language"`
	Director    string  `json:"director"`
	Actors      string  `json:"actors"`
	Rating      float64 `json:"imdb_rating"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	Duration    string  `json:"duration"`
	Country     string  `json:"country"`
}

// Normalize converts a raw record into a canonical engine item. Comma
// lists are split, trimmed, deduplicated, and stripped of empty tokens; a
// missing multi-value field yields an empty slice, never an error.
// Malformed kind or language values pass through unchanged: whitelist
// enforcement is the caller's concern.
func Normalize(raw Raw) recommend.Item {
	return recommend.Item{
		Title:       strings.TrimSpace(raw.Title),
		Kind:        strings.TrimSpace(raw.Kind),
		Year:        raw.Year,
		Genres:      SplitList(raw.Genre),
		Actors:      SplitList(raw.Actors),
		Directors:   SplitList(raw.Director),
		Language:    strings.TrimSpace(raw.Language),
		Rating:      raw.Rating,
		Description: strings.TrimSpace(raw.Description),
		Runtime:     strings.TrimSpace(raw.Duration),
		Country:     strings.TrimSpace(raw.Country),
		PosterURL:   strings.TrimSpace(raw.PosterURL),
	}
}

// NormalizeAll normalizes a slice of raw records, preserving order.
func NormalizeAll(raws []Raw) []recommend.Item {
	items := make([]recommend.Item, len(raws))
	for i, raw := range raws {
		items[i] = Normalize(raw)
	}
	return items
}

// SplitList splits a comma-delimited value into a deduplicated, trimmed,
// non-empty ordered sequence. An empty or blank input yields an empty
// slice.
func SplitList(value string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(value, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
