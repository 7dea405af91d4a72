package handler

import (
	"net/http"

	"github.com/nexoradevlabs/site/internal/service"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Mail    string `json:"mail"`
	Stats   string `json:"stats"`
}

// StatsStater reports the state of the statistics cache.
type StatsStater interface {
	State() service.CacheState
}

// Handler serves operational endpoints.
type Handler struct {
	stats          StatsStater
	mailConfigured bool
}

func New(stats StatsStater, mailConfigured bool) *Handler {
	return &Handler{stats: stats, mailConfigured: mailConfigured}
}

// Health reports liveness. A missing mail provider or a degraded stats cache
// does not make the site unhealthy; both are reported for operators.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Message: "Nexora DevLabs",
		Mail:    "configured",
		Stats:   service.CacheEmpty.String(),
	}
	if !h.mailConfigured {
		resp.Mail = "not_configured"
	}
	if h.stats != nil {
		resp.Stats = h.stats.State().String()
	}
	writeJSON(w, http.StatusOK, resp)
}
