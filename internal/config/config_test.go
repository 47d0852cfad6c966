// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "missing understanding base URL",
			mutate:  func(c *Config) { c.Understanding.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "missing understanding model",
			mutate:  func(c *Config) { c.Understanding.Model = "" },
			wantErr: true,
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.Understanding.SearchTemperature = 3.5 },
			wantErr: true,
		},
		{
			name: "metadata enabled without base URL",
			mutate: func(c *Config) {
				c.Metadata.Enabled = true
				c.Metadata.BaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "metadata enabled with base URL",
			mutate: func(c *Config) {
				c.Metadata.Enabled = true
				c.Metadata.BaseURL = "https://metadata.example.com"
			},
			wantErr: false,
		},
		{
			name: "min results above max results",
			mutate: func(c *Config) {
				c.Search.MinResults = 20
				c.Search.MaxResults = 10
			},
			wantErr: true,
		},
		{
			name:    "zero top scored",
			mutate:  func(c *Config) { c.Search.TopScored = 0 },
			wantErr: true,
		},
		{
			name: "history enabled without path",
			mutate: func(c *Config) {
				c.History.Enabled = true
				c.History.InMemory = false
				c.History.Path = ""
			},
			wantErr: true,
		},
		{
			name: "history in-memory needs no path",
			mutate: func(c *Config) {
				c.History.Enabled = true
				c.History.InMemory = true
				c.History.Path = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"UNDERSTANDING_API_KEY", "understanding.api_key"},
		{"OPENAI_API_KEY", "understanding.api_key"},
		{"SEARCH_WEIGHT_ACTOR", "search.weights.actor"},
		{"METADATA_ENABLED", "metadata.enabled"},
		{"HISTORY_PATH", "history.path"},
		{"RANDOM_UNRELATED_VAR", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("UNDERSTANDING_MODEL", "gpt-4o-mini")
	t.Setenv("SEARCH_WEIGHT_ACTOR", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("HISTORY_IN_MEMORY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Understanding.Model != "gpt-4o-mini" {
		t.Errorf("Understanding.Model = %q, want gpt-4o-mini", cfg.Understanding.Model)
	}
	if cfg.Search.Weights.Actor != 4 {
		t.Errorf("Search.Weights.Actor = %d, want 4", cfg.Search.Weights.Actor)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
	if !cfg.History.InMemory {
		t.Error("History.InMemory = false, want true")
	}
	// Untouched defaults remain
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
}
