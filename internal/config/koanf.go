// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinequery/config.yaml",
	"/etc/cinequery/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8235,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Understanding: UnderstandingConfig{
			BaseURL:             "https://api.openai.com/v1",
			APIKey:              "",
			Model:               "gpt-4o",
			Timeout:             10 * time.Second,
			SearchTemperature:   0.7,
			IdentifyTemperature: 0.3,
			RequestsPerMinute:   60,
		},
		Metadata: MetadataConfig{
			Enabled: false,
			BaseURL: "",
			APIKey:  "",
			Timeout: 10 * time.Second,
		},
		Search: SearchConfig{
			// Defaults reproduce the shipped ranking behavior; see the
			// weights section of docs for the tuning rationale.
			Weights: WeightTable{
				QueryToken:  5,
				Keyword:     3,
				SearchTerm:  4,
				Genre:       4,
				Actor:       6,
				Director:    6,
				Theme:       3,
				ContentType: 4,
				RatingBoost: 2,
			},
			TopScored:            8,
			MinResults:           6,
			MaxResults:           12,
			RatingBoostThreshold: 8.0,
		},
		History: HistoryConfig{
			Enabled:  true,
			Path:     "/data/history",
			InMemory: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated
// slices when sourced from environment variables.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars arrive as strings but the config expects
// slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables return empty string and are skipped, preventing random
// environment variables from polluting config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - UNDERSTANDING_API_KEY -> understanding.api_key
//   - SEARCH_WEIGHT_ACTOR -> search.weights.actor
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":    "server.host",
		"http_port":    "server.port",
		"http_timeout": "server.timeout",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Security mappings
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",

		// Understanding service mappings
		"understanding_base_url":        "understanding.base_url",
		"understanding_api_key":         "understanding.api_key",
		"understanding_model":           "understanding.model",
		"understanding_timeout":         "understanding.timeout",
		"understanding_search_temp":     "understanding.search_temperature",
		"understanding_identify_temp":   "understanding.identify_temperature",
		"understanding_requests_minute": "understanding.requests_per_minute",
		// The original deployment configured the key as OPENAI_API_KEY.
		"openai_api_key": "understanding.api_key",

		// Metadata lookup mappings
		"metadata_enabled":  "metadata.enabled",
		"metadata_base_url": "metadata.base_url",
		"metadata_api_key":  "metadata.api_key",
		"metadata_timeout":  "metadata.timeout",

		// Search tuning mappings
		"search_top_scored":       "search.top_scored",
		"search_min_results":      "search.min_results",
		"search_max_results":      "search.max_results",
		"search_rating_threshold": "search.rating_boost_threshold",
		"search_weight_query":     "search.weights.query_token",
		"search_weight_keyword":   "search.weights.keyword",
		"search_weight_term":      "search.weights.search_term",
		"search_weight_genre":     "search.weights.genre",
		"search_weight_actor":     "search.weights.actor",
		"search_weight_director":  "search.weights.director",
		"search_weight_theme":     "search.weights.theme",
		"search_weight_type":      "search.weights.content_type",
		"search_weight_rating":    "search.weights.rating_boost",

		// History mappings
		"history_enabled":   "history.enabled",
		"history_path":      "history.path",
		"history_in_memory": "history.in_memory",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
