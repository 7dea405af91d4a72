package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var serviceTags = []string{"Web Development", "Mobile Apps", "Digital Strategy", "Brand Solutions"}

func Hero() g.Node {
	return Main(
		ID("hero"),
		Class("hero"),
		Div(
			Class("hero__content"),
			Div(Class("hero__badge"), Span(g.Text("✨ Nexora DevLabs"))),
			H1(
				Class("hero__headline"),
				Span(Class("text-primary"), g.Text("Simplify.")),
				g.Text(" Build. "),
				Span(Class("text-primary"), g.Text("Grow.")),
			),
			P(Class("hero__blurb"), g.Text(defaultDescription)),
			Div(
				Class("hero__tags"),
				g.Map(serviceTags, func(tag string) g.Node {
					return Span(Class("hero__tag"), g.Text(tag))
				}),
			),
		),
	)
}
