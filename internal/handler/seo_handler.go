package handler

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// SEOHandler serves the sitemap and robots.txt.
type SEOHandler struct {
	siteURL string
	now     func() time.Time
}

// NewSEOHandler creates an SEOHandler for the site at siteURL.
func NewSEOHandler(siteURL string) *SEOHandler {
	return &SEOHandler{siteURL: strings.TrimRight(siteURL, "/"), now: time.Now}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap handles GET /sitemap.xml. The site is a single page.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{{
			Loc:        h.siteURL,
			LastMod:    h.now().UTC().Format(time.RFC3339),
			ChangeFreq: "monthly",
			Priority:   "1.0",
		}},
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		slog.Error("failed to write sitemap", slog.String("error", err.Error()))
	}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " + h.siteURL + "/sitemap.xml\n"))
}
