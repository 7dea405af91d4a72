package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nexoradevlabs/site/internal/island"
	"github.com/nexoradevlabs/site/internal/service"
)

// A terminal cell stands in for this many CSS pixels.
const (
	cellWidthPx  = 8
	cellHeightPx = 20

	inputWidth = 40
	pillTop    = 1
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	muted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	danger = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	good   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Foreground(danger)
	okStyle     = lipgloss.NewStyle().Foreground(good)
	keyStyle    = lipgloss.NewStyle().Bold(true)
	islandStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// frame converts an island size to inner cell dimensions.
func frame(s island.Size) (cols, rows int) {
	return s.Width / cellWidthPx, max(1, s.Height/cellHeightPx)
}

// pillBox is the outer bounding box of the island on screen, in cells.
func (m Model) pillBox() (left, top, w, h int) {
	cols, rows := frame(m.machine.Size())
	w, h = cols+2, rows+2
	left = max(0, (m.width-w)/2)
	top = pillTop
	if m.machine.Bouncing() {
		top--
	}
	return left, top, w, h
}

// View renders the island.
func (m Model) View() string {
	cols, rows := frame(m.machine.Size())
	style := islandStyle.Width(cols).Height(rows)

	var body string
	switch m.machine.State() {
	case island.Closed:
		body = m.closedView(cols - 2)
	case island.Compact:
		body = m.compactView()
	case island.GitHub:
		body = m.githubView()
	case island.Calendar:
		body = m.calendarView()
	case island.Contact:
		body = m.contactView()
	case island.Social:
		body = m.socialView()
	}

	left, top, _, _ := m.pillBox()
	box := lipgloss.NewStyle().MarginLeft(left).MarginTop(top).Render(style.Render(body))
	helpView := m.help.View(stateKeys{KeyMap: m.keys, state: m.machine.State()})
	return box + "\n\n" + lipgloss.NewStyle().MarginLeft(left).Render(helpView)
}

// closedView draws the face: two eyes that follow the pointer and the idle
// expressions.
func (m Model) closedView(width int) string {
	left, right := "●", "●"
	mouth := ""
	shift := 0

	x, y := m.machine.Eyes().Offset()
	switch {
	case y < -1:
		left, right = "◓", "◓"
	case y > 1:
		left, right = "◒", "◒"
	}

	switch m.machine.Expression() {
	case island.Blink:
		left, right = "─", "─"
	case island.Wink:
		right = "─"
	case island.GlanceLeft:
		shift = -2
	case island.GlanceRight:
		shift = 2
	case island.Smirk:
		mouth = " ‿"
	case island.Smile:
		mouth = "◡"
	}

	eyes := left + "    " + right
	pad := (width-lipgloss.Width(eyes))/2 + int(math.Round(x)) + shift
	pad = max(0, min(pad, width-lipgloss.Width(eyes)))
	face := strings.Repeat(" ", pad) + eyes
	if mouth != "" {
		face += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, mouth)
	}
	return face
}

func (m Model) compactView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(island.Compact.Title()))
	b.WriteString("\n\n")
	labels := map[island.State]string{
		island.GitHub:   "GitHub",
		island.Calendar: "Calendar",
		island.Contact:  "Contact",
		island.Social:   "Social",
	}
	items := make([]string, 0, len(island.Panels()))
	for i, p := range island.Panels() {
		items = append(items, fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("[%d]", i+1)), labels[p]))
	}
	b.WriteString(strings.Join(items, "   "))
	return b.String()
}

func (m Model) githubView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(island.GitHub.Title()))
	b.WriteString("\n\n")

	entry := m.machine.Stats()
	switch entry.State {
	case service.CacheEmpty, service.CacheLoading:
		b.WriteString(mutedStyle.Render("Loading repository stats..."))
		return b.String()
	}

	v := entry.Value
	b.WriteString(keyStyle.Render(v.OrgName))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(v.OrgDescription))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "★ %d stars   ⑂ %d forks   ◉ %d watchers\n", v.TotalStars, v.TotalForks, v.TotalWatchers)
	fmt.Fprintf(&b, "%d repositories (%d public, %d private)\n", v.TotalRepos, v.PublicRepos, v.PrivateRepos)

	switch entry.State {
	case service.CacheDegraded:
		msg := "GitHub rate limit reached. Showing cached placeholder data."
		if v.RateLimitReset != nil {
			msg += " Resets at " + v.RateLimitReset.Local().Format("15:04") + "."
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	case service.CacheFailed:
		b.WriteString(errorStyle.Render(v.Message))
		b.WriteString(mutedStyle.Render("  (r to retry)"))
		b.WriteString("\n")
	default:
		b.WriteString(mutedStyle.Render("Updated " + v.LastUpdated.Local().Format("Jan 2, 15:04")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.links.GitHubOrg))
	return b.String()
}

func (m Model) calendarView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(island.Calendar.Title()))
	b.WriteString("\n\n")
	b.WriteString("Book a 15-minute intro call\n")
	b.WriteString(mutedStyle.Render(m.links.QuickBooking))
	b.WriteString("\n\n")
	b.WriteString("Or pick a custom time\n")
	b.WriteString(mutedStyle.Render(m.links.CustomBook))
	return b.String()
}

func (m Model) contactView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(island.Contact.Title()))
	b.WriteString("\n\n")

	form := m.machine.Form()
	if form.Status == island.FormSubmitted {
		b.WriteString(okStyle.Render("Message sent! We'll get back to you soon."))
		return b.String()
	}

	labels := [3]string{"Name", "Email", "Message"}
	for i := range m.inputs {
		b.WriteString(mutedStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch form.Status {
	case island.FormSubmitting:
		b.WriteString(mutedStyle.Render("Sending..."))
	case island.FormFailed:
		b.WriteString(errorStyle.Render(form.Err))
	}
	return b.String()
}

func (m Model) socialView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(island.Social.Title()))
	b.WriteString("\n\n")
	rows := [][2]string{
		{"GitHub", m.links.GitHubOrg},
		{"Twitter", m.links.Twitter},
		{"LinkedIn", m.links.LinkedIn},
	}
	for _, r := range rows {
		b.WriteString(keyStyle.Width(10).Render(r[0]) + mutedStyle.Render(r[1]) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
