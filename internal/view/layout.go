// Package view renders the marketing site with gomponents.
package view

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "Nexora DevLabs - Simplify. Build. Grow."
	defaultDescription = "Simplifying technology to build innovative, impactful, and collaborative digital solutions that empower brands worldwide."
	siteName           = "Nexora DevLabs"
	twitterCreator     = "@nexoradevlabs"
)

var defaultKeywords = []string{
	"software development",
	"product engineering",
	"platform engineering",
	"developer experience",
	"consulting",
}

type PageConfig struct {
	Title       string
	Description string
	Keywords    []string
	// URL is the canonical site URL, used for Open Graph.
	URL     string
	OGImage string
	Theme   Theme
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}
	if len(config.Keywords) == 0 {
		config.Keywords = defaultKeywords
	}
	if config.OGImage == "" {
		config.OGImage = "/static/logo.png"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", string(config.Theme)),
			Class(config.Theme.Class()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1, maximum-scale=1")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("keywords"), Content(strings.Join(config.Keywords, ", "))),
				Meta(Name("author"), Content(siteName)),
				Meta(Name("robots"), Content("index, follow")),

				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:locale"), Content("en_US")),
				Meta(g.Attr("property", "og:site_name"), Content(siteName)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Meta(Name("twitter:card"), Content("summary_large_image")),
				Meta(Name("twitter:title"), Content(config.Title)),
				Meta(Name("twitter:description"), Content(config.Description)),
				Meta(Name("twitter:image"), Content(config.OGImage)),
				Meta(Name("twitter:creator"), Content(twitterCreator)),

				Link(Rel("icon"), Href("/static/logo.png")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-skin-base text-brand-foreground"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/theme.js")),
				Script(Type("module"), Src("/static/js/island.js")),
			),
		),
	})
}
