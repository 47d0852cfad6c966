// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinequery/internal/catalog"
	"github.com/tomtom215/cinequery/internal/config"
	"github.com/tomtom215/cinequery/internal/intent"
	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
	"github.com/tomtom215/cinequery/internal/models"
)

// ErrEmptyQuery is returned when a search is attempted with no query text.
var ErrEmptyQuery = errors.New("search query must not be empty")

// platformAll is the sentinel meaning no platform restriction.
const platformAll = "all"

// IntentExtractor analyzes a query into a structured intent. It never
// fails: extraction errors degrade to an empty intent.
type IntentExtractor interface {
	Extract(ctx context.Context, query string, variant intent.Variant) models.QueryIntent
}

// MetadataLookup searches an external metadata source for supplementary
// results. Implementations may fail; the search pipeline swallows those
// failures and continues with local results only.
type MetadataLookup interface {
	Search(ctx context.Context, query, platform string) ([]models.ContentItem, error)
}

// Query is one search request.
type Query struct {
	Text string

	// Platform restricts results to a single platform. Empty or "all"
	// means no restriction.
	Platform string
}

// Result is the assembled response for a search.
type Result struct {
	Items    []models.ContentItem
	Analysis models.QueryIntent

	// Fallback is true when no catalog item scored and the popularity
	// slate was served instead.
	Fallback bool
}

// Service runs the search pipeline: intent extraction, scoring, and result
// assembly. It holds no per-request state; a single instance serves all
// requests concurrently.
type Service struct {
	store     catalog.Store
	extractor IntentExtractor
	scorer    *Scorer
	metadata  MetadataLookup // nil when external lookup is disabled
	cfg       *config.SearchConfig
}

// NewService creates a search Service. metadata may be nil.
func NewService(store catalog.Store, extractor IntentExtractor, scorer *Scorer, metadata MetadataLookup, cfg *config.SearchConfig) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		scorer:    scorer,
		metadata:  metadata,
		cfg:       cfg,
	}
}

// scoredItem pairs a catalog item with its relevance during assembly. The
// score never leaves this package.
type scoredItem struct {
	item  models.ContentItem
	score int
}

// Search runs the full pipeline for one query.
//
// The intent extraction and the external metadata lookup have no data
// dependency, so they run concurrently. Neither can fail the request: the
// extractor degrades to an empty intent and metadata failures degrade to
// no supplementary results.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, ErrEmptyQuery
	}

	variant := intent.VariantSearch
	if strings.EqualFold(q.Platform, "globoplay") {
		variant = intent.VariantPlatform
	}

	var (
		queryIntent models.QueryIntent
		external    []models.ContentItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		queryIntent = s.extractor.Extract(gctx, q.Text, variant)
		return nil
	})
	if s.metadata != nil {
		g.Go(func() error {
			items, err := s.metadata.Search(gctx, q.Text, q.Platform)
			if err != nil {
				logging.Warn().Err(err).Msg("External metadata lookup failed, continuing with local results")
				metrics.RecordMetadataLookup("failure")
				return nil
			}
			metrics.RecordMetadataLookup("success")
			external = items
			return nil
		})
	}
	// Goroutines never return errors; Wait only observes ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := s.assemble(q, queryIntent, external)
	metrics.SearchResultsReturned.Observe(float64(len(result.Items)))
	if result.Fallback {
		metrics.SearchFallbacksTotal.Inc()
	}
	return result, nil
}

// assemble turns the intent and any external results into the final
// bounded, deduplicated, relevance-ordered item list.
func (s *Service) assemble(q Query, queryIntent models.QueryIntent, external []models.ContentItem) *Result {
	scope := s.scopedCatalog(q.Platform)

	// Score and rank the local catalog. Unmatched items are excluded
	// outright rather than down-ranked.
	scored := make([]scoredItem, 0, len(scope))
	for _, item := range scope {
		if sc := s.scorer.Score(item, q.Text, queryIntent); sc > 0 {
			scored = append(scored, scoredItem{item: item, score: sc})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > s.cfg.TopScored {
		scored = scored[:s.cfg.TopScored]
	}

	merged := make([]models.ContentItem, 0, len(scored)+len(external))
	for _, sc := range scored {
		merged = append(merged, sc.item)
	}

	// External results come from a dedicated search and are trusted as
	// relevant without re-scoring. When the search is platform-scoped
	// they carry that platform.
	filter := normalizePlatform(q.Platform)
	for _, item := range external {
		if filter != "" && item.Platform == "" {
			item.Platform = q.Platform
		}
		merged = append(merged, item)
	}

	fallback := false
	if len(merged) == 0 {
		// Nothing matched anywhere. Serve the popularity slate instead
		// of an empty response; the slate respects the platform filter,
		// so a filtered search with an empty platform scope is the one
		// case that can return nothing.
		n := s.cfg.MinResults
		if n > len(scope) {
			n = len(scope)
		}
		merged = append(merged, scope[:n]...)
		fallback = true
	} else if len(merged) < s.cfg.MinResults {
		merged = s.backfillByRating(merged, scope)
	}

	merged = dedupeByID(merged)
	if len(merged) > s.cfg.MaxResults {
		merged = merged[:s.cfg.MaxResults]
	}

	return &Result{Items: merged, Analysis: queryIntent, Fallback: fallback}
}

// scopedCatalog returns the catalog restricted to the platform filter.
func (s *Service) scopedCatalog(platform string) []models.ContentItem {
	if normalizePlatform(platform) == "" {
		return s.store.All()
	}
	return s.store.ByPlatform(platform)
}

// backfillByRating appends the highest-rated scoped items not already in
// results until the minimum result count is met or the scope is exhausted.
func (s *Service) backfillByRating(results, scope []models.ContentItem) []models.ContentItem {
	present := make(map[string]bool, len(results))
	for _, item := range results {
		present[item.ID] = true
	}

	byRating := make([]models.ContentItem, len(scope))
	copy(byRating, scope)
	sort.SliceStable(byRating, func(i, j int) bool {
		return byRating[i].Rating > byRating[j].Rating
	})

	for _, item := range byRating {
		if len(results) >= s.cfg.MinResults {
			break
		}
		if present[item.ID] {
			continue
		}
		results = append(results, item)
		present[item.ID] = true
	}
	return results
}

// dedupeByID removes duplicate IDs, keeping the first occurrence so rank
// order is preserved.
func dedupeByID(items []models.ContentItem) []models.ContentItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

// normalizePlatform maps the empty string and the "all" sentinel to "".
func normalizePlatform(platform string) string {
	if platform == "" || strings.EqualFold(platform, platformAll) {
		return ""
	}
	return platform
}
