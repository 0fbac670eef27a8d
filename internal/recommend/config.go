// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "fmt"

// Config controls engine-wide fitting and query defaults.
type Config struct {
	// VocabSize caps the TF-IDF text vocabulary. Terms are selected by
	// global frequency after stopword removal.
	// Default: 1000
	VocabSize int

	// DefaultLimit is the result count used when a query passes no
	// explicit top-N.
	// Default: 5
	DefaultLimit int

	// MaxLimit bounds the result count of any single query.
	// Default: 100
	MaxLimit int

	// DefaultWeights is the quality/preference blend used when a ranking
	// query passes no explicit weights.
	// Default: 0.7 rating / 0.3 preference
	DefaultWeights Weights
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		VocabSize:    1000,
		DefaultLimit: 5,
		MaxLimit:     100,
		DefaultWeights: Weights{
			Rating:     0.7,
			Preference: 0.3,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.VocabSize <= 0 {
		return fmt.Errorf("vocab size must be positive, got %d", c.VocabSize)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit %d must be >= default limit %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.DefaultWeights.Rating < 0 || c.DefaultWeights.Preference < 0 {
		return fmt.Errorf("default weights must be non-negative, got %+v", c.DefaultWeights)
	}
	return nil
}
