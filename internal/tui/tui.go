// Package tui renders the dynamic island in a terminal and drives its state
// machine from keyboard, mouse and focus events.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexoradevlabs/site/internal/island"
	"github.com/nexoradevlabs/site/internal/logging"
	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/internal/service"
	"github.com/nexoradevlabs/site/pkg/mail"
)

const (
	tickInterval = 50 * time.Millisecond
	fetchTimeout = 30 * time.Second
)

var (
	// ErrNoRelay is reported when a contact submission has nowhere to go.
	ErrNoRelay = errors.New("contact relay not configured")
	ErrNoStats = errors.New("stats source not configured")
)

// StatsSource yields repository statistics. service.StatsCache satisfies it.
type StatsSource interface {
	Get(ctx context.Context) model.RepositoryStatistics
	Retry(ctx context.Context) model.RepositoryStatistics
}

// ContactSender relays a contact submission. relay.HTTPClient satisfies it.
type ContactSender interface {
	Submit(ctx context.Context, sub model.ContactSubmission) (*mail.Result, error)
}

// Options configures a Model.
type Options struct {
	Stats         StatsSource
	Contact       ContactSender
	Links         island.Links
	ReducedMotion bool
	// Rand drives the idle animations. Nil seeds from the clock.
	Rand *rand.Rand
}

type tickMsg time.Time

type statsMsg struct {
	gen   uint64
	stats model.RepositoryStatistics
}

type contactMsg struct {
	seq uint64
	err error
}

// Model represents the state of the TUI application.
type Model struct {
	machine *island.Machine
	stats   StatsSource
	contact ContactSender
	links   island.Links
	log     *slog.Logger

	width  int
	height int

	inputs [3]textinput.Model
	focus  int

	keys KeyMap
	help help.Model

	tick func() tea.Cmd
}

// New creates a closed island.
func New(opts Options) Model {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32))
	}
	links := opts.Links
	if links == (island.Links{}) {
		links = island.DefaultLinks()
	}

	m := Model{
		machine: island.NewMachine(island.NewScheduler(time.Now()), rng),
		stats:   opts.Stats,
		contact: opts.Contact,
		links:   links,
		log:     logging.Component("tui"),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		tick: func() tea.Cmd {
			return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
		},
	}
	if opts.ReducedMotion {
		m.machine.Animator().SetReducedMotion(true)
	}

	placeholders := [3]string{"Your name", "you@example.com", "How can we help?"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.Width = inputWidth
		m.inputs[i] = ti
	}
	m.inputs[island.FieldMessage].CharLimit = 5000
	return m
}

// Machine exposes the underlying state machine.
func (m Model) Machine() *island.Machine { return m.machine }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Nexora DevLabs"), m.tick())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.machine.Step(tickInterval)
		cmds = append(cmds, m.tick())

	case tea.FocusMsg:
		m.machine.Animator().SetVisible(true)

	case tea.BlurMsg:
		m.machine.Animator().SetVisible(false)

	case tea.MouseMsg:
		m.pointer(msg.X, msg.Y)

	case statsMsg:
		if !m.machine.StatsLoaded(msg.gen, msg.stats) {
			m.log.Debug("discarded stale stats", "generation", msg.gen)
		}

	case contactMsg:
		if m.machine.ContactResult(msg.seq, msg.err) && msg.err == nil {
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			m.setFocus(0)
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.machine.Teardown()
			return m, tea.Quit
		}
		if m.machine.State() == island.Contact {
			cmds = append(cmds, m.contactKey(msg))
			break
		}
		if key.Matches(msg, m.keys.Quit) {
			m.machine.Teardown()
			return m, tea.Quit
		}
		m.navigationKey(msg)
	}

	if m.machine.State() == island.Contact && !m.inputs[m.focus].Focused() {
		m.setFocus(m.focus)
	}
	for _, e := range m.machine.TakeEffects() {
		cmds = append(cmds, m.run(e))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) navigationKey(msg tea.KeyMsg) {
	state := m.machine.State()
	if panel, ok := m.keys.panelFor(msg); ok && (state == island.Closed || state == island.Compact) {
		_ = m.machine.Navigate(panel)
		return
	}
	switch {
	case key.Matches(msg, m.keys.Activate) && state == island.Closed:
		m.machine.Activate()
	case key.Matches(msg, m.keys.Back) && state == island.Compact:
		m.machine.Close()
	case key.Matches(msg, m.keys.Back):
		m.machine.Back()
	case key.Matches(msg, m.keys.Close):
		m.machine.Close()
	case key.Matches(msg, m.keys.Retry) && state == island.GitHub:
		m.machine.RetryStats()
	}
}

func (m *Model) contactKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		m.machine.Back()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % len(m.inputs))
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return nil
	case key.Matches(msg, m.keys.Submit),
		msg.Type == tea.KeyEnter && m.focus == len(m.inputs)-1:
		m.submit()
		return nil
	case msg.Type == tea.KeyEnter:
		m.setFocus(m.focus + 1)
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.machine.SetField(island.Field(m.focus), m.inputs[m.focus].Value())
	return cmd
}

func (m *Model) submit() {
	if err := m.machine.SubmitContact(); err != nil {
		m.log.Debug("contact submission rejected", "error", err)
	}
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// pointer feeds a mouse position, in cells, to the eyes.
func (m *Model) pointer(x, y int) {
	left, top, w, h := m.pillBox()
	hovered := x >= left && x < left+w && y >= top && y < top+h
	m.machine.SetHovered(hovered)
	cx := float64(left) + float64(w)/2
	cy := float64(top) + float64(h)/2
	m.machine.PointerMoved((float64(x)-cx)*cellWidthPx, (float64(y)-cy)*cellHeightPx)
}

func (m Model) run(e island.Effect) tea.Cmd {
	switch e.Kind {
	case island.EffectFetchStats:
		src, gen, refresh := m.stats, e.Generation, e.Refresh
		log := m.log
		return func() tea.Msg {
			if src == nil {
				return statsMsg{gen: gen, stats: service.FailedStatistics(ErrNoStats, time.Now())}
			}
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			var v model.RepositoryStatistics
			if refresh {
				v = src.Retry(ctx)
			} else {
				v = src.Get(ctx)
			}
			if v.Error {
				log.Warn("stats fetch failed", "message", v.Message)
			}
			return statsMsg{gen: gen, stats: v}
		}

	case island.EffectSubmitContact:
		sender, seq, sub := m.contact, e.Seq, e.Submission
		log := m.log
		return func() tea.Msg {
			if sender == nil {
				return contactMsg{seq: seq, err: ErrNoRelay}
			}
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			res, err := sender.Submit(ctx, sub)
			if err != nil {
				log.Warn("contact submission failed", "error", err)
				return contactMsg{seq: seq, err: err}
			}
			if res != nil {
				log.Info("contact submission sent", "id", res.ID)
			}
			return contactMsg{seq: seq}
		}
	}
	return nil
}
