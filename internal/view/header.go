package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Class("flex items-center gap-2"),
		Href("/"),
		Img(Src("/static/logo.png"), Alt(siteName), Width("32"), Height("32"), Class("h-8 w-8")),
		Span(Class("text-xl font-bold"), g.Text(siteName)),
	)
}

func ThemeToggle(theme Theme) g.Node {
	return Button(
		Type("button"),
		ID("theme-toggle"),
		Class("theme-toggle"),
		g.Attr("data-next-theme", string(theme.Toggled())),
		g.Attr("aria-label", "Switch to "+string(theme.Toggled())+" mode"),
		Span(Class("theme-toggle__sun"), g.Attr("aria-hidden", "true"), g.Text("☀")),
		Span(Class("theme-toggle__moon"), g.Attr("aria-hidden", "true"), g.Text("☾")),
	)
}

func SiteHeader(theme Theme) g.Node {
	return Header(
		Class("site-header"),
		Div(
			Class("container site-header__inner"),
			Logo(),
			Nav(Class("site-header__nav")),
			Div(Class("site-header__actions"), ThemeToggle(theme)),
		),
	)
}
