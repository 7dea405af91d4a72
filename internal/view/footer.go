package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter(year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container site-footer__inner"),
			Div(
				Class("flex items-center gap-2"),
				Div(Class("site-footer__mark"), Span(g.Text("N"))),
				Span(Class("text-lg font-semibold"), g.Text(siteName)),
			),
			Div(Class("site-footer__copy"), g.Textf("© %d Nexora DevLabs. All rights reserved.", year)),
		),
	)
}
