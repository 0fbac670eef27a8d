// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML
// config file, and REELTASTE_-prefixed environment variables, in rising
// order of precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8480
	Port int `koanf:"port"`

	// ReadTimeout bounds request reading. Default: 15s
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writing. Default: 30s
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitPerMinute caps requests per client IP per minute on the
	// API routes. Default: 300
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Default: ["*"]
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// CatalogConfig configures the catalog data source.
type CatalogConfig struct {
	// Path is a JSON catalog file. Empty selects the built-in sample
	// catalog.
	Path string `koanf:"path"`

	// ReloadInterval is how often the refit service reloads the catalog
	// file and re-fits the engine. Zero disables periodic refits.
	// Default: 0
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	// VocabSize caps the TF-IDF text vocabulary. Default: 1000
	VocabSize int `koanf:"vocab_size"`

	// DefaultLimit is the result count when a query passes none.
	// Default: 5
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit bounds the result count of any query. Default: 100
	MaxLimit int `koanf:"max_limit"`

	// RatingWeight is the default quality weight. Default: 0.7
	RatingWeight float64 `koanf:"rating_weight"`

	// PreferenceWeight is the default preference weight. Default: 0.3
	PreferenceWeight float64 `koanf:"preference_weight"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line in events. Default: false
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8480,
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RateLimitPerMinute: 300,
			CORSAllowedOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Path:           "",
			ReloadInterval: 0,
		},
		Recommend: RecommendConfig{
			VocabSize:        1000,
			DefaultLimit:     5,
			MaxLimit:         100,
			RatingWeight:     0.7,
			PreferenceWeight: 0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limit per minute must be positive, got %d", c.Server.RateLimitPerMinute)
	}
	if c.Recommend.VocabSize <= 0 {
		return fmt.Errorf("vocab size must be positive, got %d", c.Recommend.VocabSize)
	}
	if c.Recommend.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be positive, got %d", c.Recommend.DefaultLimit)
	}
	if c.Recommend.MaxLimit < c.Recommend.DefaultLimit {
		return fmt.Errorf("max limit %d must be >= default limit %d",
			c.Recommend.MaxLimit, c.Recommend.DefaultLimit)
	}
	if c.Recommend.RatingWeight < 0 || c.Recommend.PreferenceWeight < 0 {
		return fmt.Errorf("weights must be non-negative, got rating=%v preference=%v",
			c.Recommend.RatingWeight, c.Recommend.PreferenceWeight)
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("catalog reload interval must not be negative, got %v", c.Catalog.ReloadInterval)
	}
	return nil
}
