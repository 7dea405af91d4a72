package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type HomeConfig struct {
	Page   PageConfig
	Island IslandConfig
	Year   int
}

// Home is the landing page.
func Home(config HomeConfig) g.Node {
	return Layout(config.Page,
		Div(Class("shader-background"), g.Attr("aria-hidden", "true")),
		SiteHeader(config.Page.Theme),
		Island(config.Island),
		Hero(),
		SiteFooter(config.Year),
	)
}
