// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/catalog"
	"github.com/tomtom215/cinequery/internal/history"
	"github.com/tomtom215/cinequery/internal/identify"
	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/models"
	"github.com/tomtom215/cinequery/internal/search"
	"github.com/tomtom215/cinequery/internal/validation"
)

// defaultHistoryLimit bounds history listings when the caller does not
// specify a limit.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	search    *search.Service
	identify  *identify.Pipeline
	catalog   catalog.Store
	historyDB *history.Store     // nil when history is disabled
	publisher *history.Publisher // nil when history is disabled
	startTime time.Time
}

// NewHandlers creates the handler set. historyDB and publisher may be nil
// when history recording is disabled.
func NewHandlers(searchSvc *search.Service, identifySvc *identify.Pipeline, store catalog.Store, historyDB *history.Store, publisher *history.Publisher) *Handlers {
	return &Handlers{
		search:    searchSvc,
		identify:  identifySvc,
		catalog:   store,
		historyDB: historyDB,
		publisher: publisher,
		startTime: time.Now(),
	}
}

// Search handles POST /api/v1/search.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body must be valid JSON", nil)
		return
	}

	if req.Query == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeQueryRequired, "Search query is required", nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	result, err := h.search.Search(r.Context(), search.Query{
		Text:     req.Query,
		Platform: req.Platform,
	})
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			respondError(w, r, http.StatusBadRequest, ErrCodeQueryRequired, "Search query is required", nil)
			return
		}
		logging.Error().Err(err).Msg("Search pipeline failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to process search", nil)
		return
	}

	h.recordSearch(req, result)

	respondJSON(w, r, http.StatusOK, models.SearchResponse{
		Results:  result.Items,
		Analysis: result.Analysis,
		Total:    len(result.Items),
	}, start)
}

// Identify handles POST /api/v1/identify.
func (h *Handlers) Identify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body must be valid JSON", nil)
		return
	}

	if req.Description == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeDescriptionRequired, "Description is required", nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	guess, err := h.identify.Identify(r.Context(), req.Description)
	if err != nil {
		if errors.Is(err, identify.ErrEmptyDescription) {
			respondError(w, r, http.StatusBadRequest, ErrCodeDescriptionRequired, "Description is required", nil)
			return
		}
		// Identification has no fallback path: understanding failures
		// surface to the caller.
		logging.Error().Err(err).Msg("Identification failed")
		respondError(w, r, http.StatusBadGateway, ErrCodeUnderstandingFailed, "Failed to process identification", nil)
		return
	}

	h.recordIdentification(req, guess)

	respondJSON(w, r, http.StatusOK, models.IdentifyResponse{Identification: *guess}, start)
}

// Catalog handles GET /api/v1/catalog.
func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	platform := r.URL.Query().Get("platform")
	items := h.catalog.ByPlatform(platform)

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	}, start)
}

// HistorySearches handles GET /api/v1/history/searches.
func (h *Handlers) HistorySearches(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.historyDB == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeHistoryUnavailable, "History recording is disabled", nil)
		return
	}

	records, err := h.historyDB.ListSearches(historyLimit(r))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to list search history")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to read history", nil)
		return
	}
	if records == nil {
		records = []history.SearchRecord{}
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"searches": records,
		"total":    len(records),
	}, start)
}

// HistoryIdentifications handles GET /api/v1/history/identifications.
func (h *Handlers) HistoryIdentifications(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.historyDB == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeHistoryUnavailable, "History recording is disabled", nil)
		return
	}

	records, err := h.historyDB.ListIdentifications(historyLimit(r))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to list identification history")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to read history", nil)
		return
	}
	if records == nil {
		records = []history.IdentificationRecord{}
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"identifications": records,
		"total":           len(records),
	}, start)
}

// recordSearch publishes the completed search to the history bus. History
// failures never affect the response.
func (h *Handlers) recordSearch(req SearchRequest, result *search.Result) {
	if h.publisher == nil {
		return
	}
	platform := req.Platform
	if platform == "" {
		platform = "all"
	}
	h.publisher.SearchCompleted(history.SearchRecord{
		Query:    req.Query,
		Platform: platform,
		UserID:   req.UserID,
		Results:  result.Items,
		Analysis: result.Analysis,
		Fallback: result.Fallback,
	})
}

// recordIdentification publishes a successful identification. Only
// identified guesses from known users are recorded.
func (h *Handlers) recordIdentification(req IdentifyRequest, guess *models.IdentificationGuess) {
	if h.publisher == nil || req.UserID == "" || !guess.Identified {
		return
	}
	h.publisher.IdentificationCompleted(history.IdentificationRecord{
		UserID:      req.UserID,
		Description: req.Description,
		Title:       guess.Title,
		Year:        guess.Year,
		Synopsis:    guess.Synopsis,
		Confidence:  guess.Confidence,
		Analysis:    *guess,
	})
}

// historyLimit parses the limit query parameter with bounds.
func historyLimit(r *http.Request) int {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit
}
