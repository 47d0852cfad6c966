// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package metadata provides the optional external metadata lookup used to
// supplement local catalog results. The lookup is best-effort: any failure
// degrades to an empty supplementary result list at the call site.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/config"
	"github.com/tomtom215/cinequery/internal/models"
)

// Lookup is the external search capability. Both Client and
// CircuitBreakerClient implement it.
type Lookup interface {
	Search(ctx context.Context, query, platform string) ([]models.ContentItem, error)
}

// Ensure Client implements Lookup
var _ Lookup = (*Client)(nil)

// Client calls an external metadata search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// searchResponse is the metadata API search response envelope.
type searchResponse struct {
	Results []models.ContentItem `json:"results"`
}

// NewClient creates a metadata lookup client from configuration.
func NewClient(cfg *config.MetadataConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search queries the metadata API for items matching the free-text query,
// optionally scoped to a platform.
func (c *Client) Search(ctx context.Context, query, platform string) ([]models.ContentItem, error) {
	params := url.Values{}
	params.Set("query", query)
	if platform != "" && !strings.EqualFold(platform, "all") {
		params.Set("platform", platform)
	}

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return nil, fmt.Errorf("metadata search returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("metadata search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode metadata response: %w", err)
	}

	return parsed.Results, nil
}
