// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package config provides layered configuration loading for Cinequery
// using Koanf v2: built-in defaults, an optional YAML file, and environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Cinequery server.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Logging       LoggingConfig       `koanf:"logging"`
	Security      SecurityConfig      `koanf:"security"`
	Understanding UnderstandingConfig `koanf:"understanding"`
	Metadata      MetadataConfig      `koanf:"metadata"`
	Search        SearchConfig        `koanf:"search"`
	History       HistoryConfig       `koanf:"history"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds request-surface protections. User identity and
// sessions are handled by an external provider and are not configured here.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// UnderstandingConfig holds settings for the external language-understanding
// service (an OpenAI-compatible chat completions endpoint).
type UnderstandingConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`

	// SearchTemperature favors lexical variety for intent extraction;
	// IdentifyTemperature favors determinism for title identification.
	SearchTemperature   float64 `koanf:"search_temperature"`
	IdentifyTemperature float64 `koanf:"identify_temperature"`

	// RequestsPerMinute paces outbound calls; 0 disables pacing.
	RequestsPerMinute int `koanf:"requests_per_minute"`
}

// MetadataConfig holds settings for the optional external metadata lookup
// service. Disabled by default; when enabled, lookup failures degrade to an
// empty supplementary result list.
type MetadataConfig struct {
	Enabled bool          `koanf:"enabled"`
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// SearchConfig holds the relevance weight table and result-set thresholds.
// The weights are tuning knobs, not constants: the defaults reproduce the
// product's shipped ranking behavior but every term is overridable.
type SearchConfig struct {
	Weights WeightTable `koanf:"weights"`

	// TopScored is how many scored catalog items enter the merge step.
	TopScored int `koanf:"top_scored"`

	// MinResults is the threshold below which popularity backfill engages.
	MinResults int `koanf:"min_results"`

	// MaxResults caps the final response size.
	MaxResults int `koanf:"max_results"`

	// RatingBoostThreshold is the rating above which the popularity boost
	// applies.
	RatingBoostThreshold float64 `koanf:"rating_boost_threshold"`
}

// WeightTable holds the additive scoring weights applied per matched term.
type WeightTable struct {
	QueryToken  int `koanf:"query_token"`
	Keyword     int `koanf:"keyword"`
	SearchTerm  int `koanf:"search_term"`
	Genre       int `koanf:"genre"`
	Actor       int `koanf:"actor"`
	Director    int `koanf:"director"`
	Theme       int `koanf:"theme"`
	ContentType int `koanf:"content_type"`
	RatingBoost int `koanf:"rating_boost"`
}

// HistoryConfig holds settings for the search/identification history store.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`

	// InMemory runs badger without disk persistence; used in tests and
	// ephemeral deployments.
	InMemory bool `koanf:"in_memory"`
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}

	if c.Understanding.BaseURL == "" {
		return fmt.Errorf("understanding.base_url is required")
	}
	if c.Understanding.Model == "" {
		return fmt.Errorf("understanding.model is required")
	}
	if c.Understanding.Timeout <= 0 {
		return fmt.Errorf("understanding.timeout must be positive")
	}
	if t := c.Understanding.SearchTemperature; t < 0 || t > 2 {
		return fmt.Errorf("understanding.search_temperature %v out of range [0,2]", t)
	}
	if t := c.Understanding.IdentifyTemperature; t < 0 || t > 2 {
		return fmt.Errorf("understanding.identify_temperature %v out of range [0,2]", t)
	}

	if c.Metadata.Enabled && c.Metadata.BaseURL == "" {
		return fmt.Errorf("metadata.base_url is required when metadata.enabled")
	}

	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be at least 1")
	}
	if c.Search.MinResults > c.Search.MaxResults {
		return fmt.Errorf("search.min_results %d exceeds search.max_results %d",
			c.Search.MinResults, c.Search.MaxResults)
	}
	if c.Search.TopScored < 1 {
		return fmt.Errorf("search.top_scored must be at least 1")
	}

	if c.History.Enabled && !c.History.InMemory && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history.enabled")
	}

	return nil
}
