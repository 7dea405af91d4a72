package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig collects the handlers served by the site.
type RouterConfig struct {
	Health  *Handler
	Pages   *PageHandler
	SEO     *SEOHandler
	Contact *ContactHandler
	Stats   *StatsHandler
	Static  fs.FS

	// FrontendOrigins may call /api/* cross-origin.
	FrontendOrigins []string
	// ContactLimiter throttles POST /api/contact; nil disables it.
	ContactLimiter *RateLimiter
}

// NewRouter builds the HTTP routes and middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	r.Get("/", cfg.Pages.Home)
	r.Get("/sitemap.xml", cfg.SEO.Sitemap)
	r.Get("/robots.txt", cfg.SEO.Robots)
	if cfg.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(cfg.Static))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.FrontendOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/health", cfg.Health.Health)
		r.Get("/github/stats", cfg.Stats.Get)
		r.Post("/github/stats/retry", cfg.Stats.Retry)

		r.Group(func(r chi.Router) {
			if cfg.ContactLimiter != nil {
				r.Use(cfg.ContactLimiter.Middleware)
			}
			r.Post("/contact", cfg.Contact.Submit)
		})
	})

	return r
}
