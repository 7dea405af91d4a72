// Package island implements the "dynamic island" widget: a pill-shaped control
// that expands into quick actions and content panels.
//
// Everything here is single-threaded. Deferred behavior (the expand-then-swap
// navigation, the contact success display, the idle animations) runs as tasks
// on an explicitly owned Scheduler, and side effects that need I/O are queued
// as Effects for the driver to execute.
package island

import "fmt"

// State is the widget's current view.
type State int

const (
	Closed State = iota
	Compact
	GitHub
	Calendar
	Contact
	Social
)

var stateNames = [...]string{"closed", "compact", "github", "calendar", "contact", "social"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsPanel reports whether s is one of the feature panels.
func (s State) IsPanel() bool {
	return s >= GitHub && s <= Social
}

// ParseState converts a state name back to a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Closed, fmt.Errorf("island: unknown state %q", name)
}

var stateTitles = map[State]string{
	Compact:  "Quick Actions",
	GitHub:   "Check out our GitHub!",
	Calendar: "Get in touch!",
	Contact:  "Get in touch!",
	Social:   "Connect",
}

// Title is the heading shown at the top of an expanded view.
func (s State) Title() string { return stateTitles[s] }

// Panels lists the feature panels in quick-action order.
func Panels() []State {
	return []State{GitHub, Calendar, Contact, Social}
}

// Expression is an idle animation cue shown on the closed pill.
type Expression int

const (
	Idle Expression = iota
	Blink
	Wink
	GlanceLeft
	GlanceRight
	Smirk
	Smile
	BounceInvite
)

var expressionNames = [...]string{"idle", "blink", "wink", "glanceLeft", "glanceRight", "smirk", "smile", "bounceInvite"}

func (e Expression) String() string {
	if e < 0 || int(e) >= len(expressionNames) {
		return fmt.Sprintf("Expression(%d)", int(e))
	}
	return expressionNames[e]
}

// Size is the rendered geometry of the island in a given state, in CSS pixels.
type Size struct {
	Width        int
	Height       int
	BorderRadius int
}

var sizes = map[State]Size{
	Closed:   {Width: 128, Height: 40, BorderRadius: 20},
	Compact:  {Width: 440, Height: 160, BorderRadius: 30},
	GitHub:   {Width: 420, Height: 280, BorderRadius: 30},
	Calendar: {Width: 460, Height: 300, BorderRadius: 30},
	Contact:  {Width: 420, Height: 260, BorderRadius: 30},
	Social:   {Width: 440, Height: 160, BorderRadius: 30},
}

// SizeOf returns the geometry for s.
func SizeOf(s State) Size {
	return sizes[s]
}
