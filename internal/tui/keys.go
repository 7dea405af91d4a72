package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexoradevlabs/site/internal/island"
)

// KeyMap defines keybindings
type KeyMap struct {
	Activate  key.Binding
	GitHub    key.Binding
	Calendar  key.Binding
	Contact   key.Binding
	Social    key.Binding
	Back      key.Binding
	Close     key.Binding
	Retry     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		GitHub: key.NewBinding(
			key.WithKeys("1", "g"),
			key.WithHelp("1/g", "github"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("2", "c"),
			key.WithHelp("2/c", "calendar"),
		),
		Contact: key.NewBinding(
			key.WithKeys("3", "m"),
			key.WithHelp("3/m", "contact"),
		),
		Social: key.NewBinding(
			key.WithKeys("4", "s"),
			key.WithHelp("4/s", "social"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// panelFor maps a navigation key to its panel.
func (k KeyMap) panelFor(msg tea.KeyMsg) (island.State, bool) {
	switch {
	case key.Matches(msg, k.GitHub):
		return island.GitHub, true
	case key.Matches(msg, k.Calendar):
		return island.Calendar, true
	case key.Matches(msg, k.Contact):
		return island.Contact, true
	case key.Matches(msg, k.Social):
		return island.Social, true
	}
	return island.Closed, false
}

// stateKeys narrows the help line to the bindings that do something in the
// current state.
type stateKeys struct {
	KeyMap
	state island.State
}

func (k stateKeys) ShortHelp() []key.Binding {
	switch k.state {
	case island.Closed:
		return []key.Binding{k.Activate, k.GitHub, k.Calendar, k.Contact, k.Social, k.Quit}
	case island.Compact:
		return []key.Binding{k.GitHub, k.Calendar, k.Contact, k.Social, k.Back, k.Quit}
	case island.GitHub:
		return []key.Binding{k.Retry, k.Back, k.Close, k.Quit}
	case island.Contact:
		return []key.Binding{k.Next, k.Submit, k.Back, k.ForceQuit}
	default:
		return []key.Binding{k.Back, k.Close, k.Quit}
	}
}

func (k stateKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
