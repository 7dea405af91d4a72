package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nexoradevlabs/site/internal/island"
	"github.com/nexoradevlabs/site/internal/view"
)

// PageHandler renders the landing page.
type PageHandler struct {
	siteURL string
	links   island.Links
	now     func() time.Time
}

// NewPageHandler creates a PageHandler for the site at siteURL.
func NewPageHandler(siteURL string, links island.Links) *PageHandler {
	return &PageHandler{siteURL: siteURL, links: links, now: time.Now}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	theme := view.ThemeSystem
	if c, err := r.Cookie(view.ThemeCookie); err == nil {
		theme = view.ParseTheme(c.Value)
	}

	page := view.Home(view.HomeConfig{
		Page: view.PageConfig{URL: h.siteURL, Theme: theme},
		Island: view.IslandConfig{
			Links:           h.links,
			StatsEndpoint:   "/api/github/stats",
			RetryEndpoint:   "/api/github/stats/retry",
			ContactEndpoint: "/api/contact",
		},
		Year: h.now().Year(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		slog.Error("failed to render page", slog.String("error", err.Error()))
	}
}
