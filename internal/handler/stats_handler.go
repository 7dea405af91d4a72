package handler

import (
	"context"
	"net/http"

	"github.com/nexoradevlabs/site/internal/model"
)

// StatsCache is the subset of service.StatsCache the handler needs.
type StatsCache interface {
	Get(ctx context.Context) model.RepositoryStatistics
	Retry(ctx context.Context) model.RepositoryStatistics
}

// StatsHandler serves the GitHub organization statistics shown in the
// island's github panel.
type StatsHandler struct {
	cache StatsCache
}

// NewStatsHandler creates a StatsHandler backed by cache.
func NewStatsHandler(cache StatsCache) *StatsHandler {
	return &StatsHandler{cache: cache}
}

// Get handles GET /api/github/stats. Rate-limited and failed fetches are
// still 200: the body's rateLimited/error flags carry the outcome.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, h.cache.Get(r.Context()))
}

// Retry handles POST /api/github/stats/retry.
func (h *StatsHandler) Retry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, h.cache.Retry(r.Context()))
}
