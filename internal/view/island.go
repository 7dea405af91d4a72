package view

import (
	"encoding/json"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexoradevlabs/site/internal/island"
)

type IslandConfig struct {
	Links           island.Links
	StatsEndpoint   string
	RetryEndpoint   string
	ContactEndpoint string
}

type expressionTiming struct {
	Weight   int `json:"weight"`
	Duration int `json:"duration"`
	MinDelay int `json:"minDelay"`
	MaxDelay int `json:"maxDelay"`
}

// expressionTable is the animator's table in milliseconds, for island.js.
func expressionTable() string {
	table := make(map[string]expressionTiming, len(island.Expressions))
	for e, cfg := range island.Expressions {
		table[e.String()] = expressionTiming{
			Weight:   cfg.Weight,
			Duration: int(cfg.Duration.Milliseconds()),
			MinDelay: int(cfg.MinDelay.Milliseconds()),
			MaxDelay: int(cfg.MaxDelay.Milliseconds()),
		}
	}
	b, _ := json.Marshal(table)
	return string(b)
}

func sizeAttrs(s island.State) []g.Node {
	size := island.SizeOf(s)
	return []g.Node{
		g.Attr("data-width", strconv.Itoa(size.Width)),
		g.Attr("data-height", strconv.Itoa(size.Height)),
		g.Attr("data-radius", strconv.Itoa(size.BorderRadius)),
	}
}

func Island(config IslandConfig) g.Node {
	closed := island.SizeOf(island.Closed)
	return Div(
		Class("island-anchor"),
		Div(
			ID("dynamic-island"),
			Class("island"),
			g.Attr("role", "region"),
			g.Attr("aria-label", "Quick actions"),
			g.Attr("data-state", island.Closed.String()),
			g.Attr("data-expand-delay", strconv.FormatInt(island.ExpandDelay.Milliseconds(), 10)),
			g.Attr("data-success-display", strconv.FormatInt(island.SuccessDisplay.Milliseconds(), 10)),
			g.Attr("data-expressions", expressionTable()),
			Style(fmt.Sprintf("width:%dpx;height:%dpx;border-radius:%dpx", closed.Width, closed.Height, closed.BorderRadius)),

			closedView(),
			compactView(),
			githubPanel(config),
			calendarPanel(config.Links),
			contactPanel(config),
			socialPanel(config.Links),
		),
	)
}

func view(s island.State, children ...g.Node) g.Node {
	nodes := append([]g.Node{
		Class("island__view island__view--" + s.String()),
		g.Attr("data-view", s.String()),
	}, sizeAttrs(s)...)
	if s != island.Closed {
		nodes = append(nodes, g.Attr("hidden"))
	}
	return Section(append(nodes, children...)...)
}

func panelHeader(s island.State, withBack bool) g.Node {
	return Div(
		Class("island__header"),
		g.If(withBack, Button(Type("button"), Class("island__back"), g.Attr("data-action", "back"), g.Attr("aria-label", "Back"), g.Text("‹"))),
		Div(Class("island__title"), g.Text(s.Title())),
		Button(Type("button"), Class("island__close"), g.Attr("data-action", "close"), g.Attr("aria-label", "Close"), g.Text("×")),
	)
}

func closedView() g.Node {
	return view(island.Closed,
		Button(
			Type("button"),
			Class("island__pill"),
			g.Attr("data-action", "activate"),
			g.Attr("aria-label", "Open quick actions"),
			Div(
				Class("island__face"),
				Span(Class("island__eye island__eye--left")),
				Span(Class("island__eye island__eye--right")),
				Span(Class("island__mouth")),
			),
		),
	)
}

var quickActions = []struct {
	State island.State
	Label string
	Title string
}{
	{island.GitHub, "GitHub", "View GitHub Stats"},
	{island.Calendar, "Calendar", "Book a Meeting"},
	{island.Contact, "Message", "Send Message"},
	{island.Social, "Connect", "Connect with Us"},
}

func compactView() g.Node {
	return view(island.Compact,
		panelHeader(island.Compact, false),
		Div(
			Class("island__actions"),
			g.Map(quickActions, func(a struct {
				State island.State
				Label string
				Title string
			}) g.Node {
				return Button(
					Type("button"),
					Class("island__action island__action--"+a.State.String()),
					g.Attr("data-action", "navigate"),
					g.Attr("data-target", a.State.String()),
					g.Attr("title", a.Title),
					g.Text(a.Label),
				)
			}),
		),
	)
}

func stat(label, field string) g.Node {
	return Div(
		Class("island__stat"),
		Div(Class("island__stat-value"), g.Attr("data-stat", field), g.Text("–")),
		Div(Class("island__stat-label"), g.Text(label)),
	)
}

func githubPanel(config IslandConfig) g.Node {
	return view(island.GitHub,
		g.Attr("data-stats-endpoint", config.StatsEndpoint),
		g.Attr("data-retry-endpoint", config.RetryEndpoint),
		panelHeader(island.GitHub, true),
		Div(Class("island__loading"), g.Attr("data-when", "loading"), g.Text("Loading...")),
		Div(
			Class("island__stats"),
			g.Attr("data-when", "loaded"),
			g.Attr("hidden"),
			Div(
				Class("island__notice"),
				g.Attr("data-when", "rate-limited"),
				g.Attr("hidden"),
				g.Text("Showing cached data (API rate limited)"),
				Span(Class("island__reset"), g.Attr("data-stat", "rateLimitReset")),
			),
			Div(Class("island__stat-row"), stat("Stars", "totalStars"), stat("Forks", "totalForks")),
			Div(Class("island__stat-row"), stat("Repos", "totalRepos"), stat("Public", "publicRepos"), stat("Private", "privateRepos")),
			Div(
				Class("island__buttons"),
				A(Class("btn"), Href(config.Links.GitHubOrg), Target("_blank"), Rel("noopener noreferrer"), g.Text("View our GitHub")),
				Button(Type("button"), Class("btn btn--ghost"), g.Attr("data-action", "retry-stats"), g.Attr("data-when", "rate-limited"), g.Attr("hidden"), g.Text("Retry API Call")),
			),
		),
		Div(
			Class("island__error"),
			g.Attr("data-when", "failed"),
			g.Attr("hidden"),
			P(g.Attr("data-stat", "message"), g.Text("Failed to load GitHub stats")),
			Button(Type("button"), Class("btn"), g.Attr("data-action", "retry-stats"), g.Text("Retry")),
		),
	)
}

func bookingCard(title, blurb, cta, href string) g.Node {
	return Div(
		Class("island__card"),
		Span(Class("island__card-title"), g.Text(title)),
		P(Class("island__card-blurb"), g.Text(blurb)),
		A(Class("btn"), Href(href), Target("_blank"), Rel("noopener noreferrer"), g.Text(cta)),
	)
}

func calendarPanel(links island.Links) g.Node {
	return view(island.Calendar,
		panelHeader(island.Calendar, true),
		P(Class("island__lead"), g.Text("Schedule a time to chat with our team about your project")),
		Div(
			Class("island__cards"),
			bookingCard("Quick Book", "Book a 15-minute consultation call", "Book 15min Call", links.QuickBooking),
			bookingCard("Fancy a longer chat?", "Need a different duration? Book custom time", "View All Options", links.CustomBook),
		),
	)
}

func contactPanel(config IslandConfig) g.Node {
	return view(island.Contact,
		panelHeader(island.Contact, true),
		Div(
			Class("island__success"),
			g.Attr("data-when", "submitted"),
			g.Attr("hidden"),
			H3(g.Text("Message Sent!")),
			P(g.Text("Thank you for reaching out. We'll get back to you soon!")),
		),
		g.El("form",
			Class("island__form"),
			g.Attr("data-when", "editing"),
			g.Attr("method", "post"),
			g.Attr("action", config.ContactEndpoint),
			Div(
				Class("island__form-row"),
				Label(Class("sr-only"), For("contact-name"), g.Text("Name")),
				Input(ID("contact-name"), Type("text"), Name("name"), Placeholder("Name"), Required()),
				Label(Class("sr-only"), For("contact-email"), g.Text("Email")),
				Input(ID("contact-email"), Type("email"), Name("email"), Placeholder("Email"), Required()),
			),
			Label(Class("sr-only"), For("contact-message"), g.Text("Message")),
			Textarea(ID("contact-message"), Name("message"), Placeholder("Message"), Rows("3"), Required()),
			P(Class("island__form-error"), g.Attr("data-when", "failed"), g.Attr("role", "alert"), g.Attr("hidden")),
			Button(Type("submit"), Class("btn"), g.Text("Send Message")),
		),
	)
}

func socialPanel(links island.Links) g.Node {
	return view(island.Social,
		panelHeader(island.Social, true),
		Div(
			Class("island__socials"),
			A(Class("btn"), Href(links.GitHubOrg), Target("_blank"), Rel("noopener noreferrer"), g.Text("GitHub")),
			A(Class("btn"), Href(links.Twitter), Target("_blank"), Rel("noopener noreferrer"), g.Text("Twitter")),
			A(Class("btn"), Href(links.LinkedIn), Target("_blank"), Rel("noopener noreferrer"), g.Text("LinkedIn")),
			Button(Type("button"), Class("btn"), g.Attr("data-action", "navigate"), g.Attr("data-target", island.Contact.String()), g.Text("Email")),
		),
	)
}
