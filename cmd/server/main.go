// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Command server runs the Cinequery HTTP service: natural-language search
// over the content catalog, title identification, and query history.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinequery/internal/api"
	"github.com/tomtom215/cinequery/internal/catalog"
	"github.com/tomtom215/cinequery/internal/config"
	"github.com/tomtom215/cinequery/internal/history"
	"github.com/tomtom215/cinequery/internal/identify"
	"github.com/tomtom215/cinequery/internal/intent"
	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metadata"
	"github.com/tomtom215/cinequery/internal/search"
	"github.com/tomtom215/cinequery/internal/supervisor"
	"github.com/tomtom215/cinequery/internal/supervisor/services"
	"github.com/tomtom215/cinequery/internal/understanding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("model", cfg.Understanding.Model).
		Bool("metadata_enabled", cfg.Metadata.Enabled).
		Bool("history_enabled", cfg.History.Enabled).
		Msg("Starting Cinequery")

	store := catalog.NewSeededStore()
	logging.Info().Int("items", store.Len()).Msg("Catalog loaded")

	// Language understanding goes through a circuit breaker so a degraded
	// upstream fails fast instead of queueing requests.
	completer := understanding.NewCircuitBreakerClient(understanding.NewClient(&cfg.Understanding))
	extractor := intent.NewExtractor(completer, cfg.Understanding.SearchTemperature)
	identifier := identify.NewPipeline(completer, cfg.Understanding.IdentifyTemperature)

	var lookup search.MetadataLookup
	if cfg.Metadata.Enabled {
		lookup = metadata.NewCircuitBreakerClient(metadata.NewClient(&cfg.Metadata))
		logging.Info().Str("base_url", cfg.Metadata.BaseURL).Msg("External metadata lookup enabled")
	}

	searchSvc := search.NewService(store, extractor, search.NewScorer(&cfg.Search), lookup, &cfg.Search)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	var (
		historyDB *history.Store
		publisher *history.Publisher
	)
	if cfg.History.Enabled {
		historyDB, err = history.OpenStore(&cfg.History)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open history store")
		}
		defer func() {
			if err := historyDB.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing history store")
			}
		}()

		bus := history.NewBus()
		publisher = history.NewPublisher(bus)
		tree.AddHistoryService(history.NewRecorder(bus, historyDB))
		logging.Info().Str("path", cfg.History.Path).Msg("History recording enabled")
	}

	handlers := api.NewHandlers(searchSvc, identifier, store, historyDB, publisher)
	router := api.NewRouter(handlers, api.RouterConfig{
		CORSOrigins:       cfg.Security.CORSOrigins,
		RateLimitReqs:     cfg.Security.RateLimitReqs,
		RateLimitWindow:   cfg.Security.RateLimitWindow,
		RateLimitDisabled: cfg.Security.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stopped")
}
