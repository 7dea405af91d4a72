package island

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/internal/service"
)

const (
	// ExpandDelay separates the two steps of a closed-to-panel navigation.
	ExpandDelay = 150 * time.Millisecond
	// SuccessDisplay is how long the contact confirmation stays up.
	SuccessDisplay = 3 * time.Second
)

const (
	taskExpand       = "expand"
	taskContactReset = "contact-return"
)

var (
	ErrNotInContact     = errors.New("island: contact panel is not open")
	ErrSubmitInProgress = errors.New("island: submission already in progress")
)

// MissingFieldsError lists the empty contact fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// EffectKind names the I/O a transition asks the driver to perform.
type EffectKind int

const (
	EffectFetchStats EffectKind = iota + 1
	EffectSubmitContact
)

// Effect is a queued side effect. Results are fed back through StatsLoaded
// and ContactResult carrying the same Generation or Seq.
type Effect struct {
	Kind       EffectKind
	Generation uint64
	// Refresh asks for the cached statistics to be discarded upstream too.
	Refresh    bool
	Seq        uint64
	Submission model.ContactSubmission
}

// Field identifies a contact form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// FormStatus is the contact form lifecycle.
type FormStatus int

const (
	FormEditing FormStatus = iota
	FormSubmitting
	FormSubmitted
	FormFailed
)

// ContactForm is the state of the contact panel.
type ContactForm struct {
	Values model.ContactSubmission
	Status FormStatus
	Err    string
	seq    uint64
}

// StatsEntry is the session cache of repository statistics.
type StatsEntry struct {
	State service.CacheState
	Value model.RepositoryStatistics
	gen   uint64
}

// Machine is the widget state machine. It is not safe for concurrent use;
// the driver serialises input events, timer advances and effect results.
type Machine struct {
	sched *Scheduler
	anim  *Animator
	eyes  *Eyes

	state    State
	previous State

	expandTask TaskID
	returnTask TaskID

	stats   StatsEntry
	form    ContactForm
	effects []Effect
}

// NewMachine creates a closed widget. The ambient loops start immediately.
func NewMachine(sched *Scheduler, rng *rand.Rand) *Machine {
	m := &Machine{
		sched: sched,
		anim:  NewAnimator(sched, rng),
		eyes:  NewEyes(),
	}
	m.anim.Start()
	return m
}

// State returns the current view.
func (m *Machine) State() State { return m.state }

// Previous returns the state recorded before the last transition.
func (m *Machine) Previous() State { return m.previous }

// Size returns the geometry for the current view.
func (m *Machine) Size() Size { return SizeOf(m.state) }

// Stats returns the statistics cache entry.
func (m *Machine) Stats() StatsEntry { return m.stats }

// Form returns the contact form.
func (m *Machine) Form() ContactForm { return m.form }

// Animator exposes the ambient loops for visibility and motion changes.
func (m *Machine) Animator() *Animator { return m.anim }

// Eyes exposes the pointer tracker.
func (m *Machine) Eyes() *Eyes { return m.eyes }

// Expression is the face to draw. Only the closed pill shows expressions.
func (m *Machine) Expression() Expression {
	if m.state != Closed {
		return Idle
	}
	return m.anim.Expression()
}

// Bouncing reports whether the closed pill is playing its invite bounce.
func (m *Machine) Bouncing() bool {
	return m.state == Closed && m.anim.Bouncing()
}

// NavigationPending reports whether the second step of a two-step
// navigation is still scheduled.
func (m *Machine) NavigationPending() bool { return m.expandTask != 0 }

// Activate expands the closed pill into the quick actions.
func (m *Machine) Activate() {
	if m.state != Closed {
		return
	}
	m.cancelExpand()
	m.set(Compact)
}

// Navigate opens a panel. From closed it expands to compact first and swaps
// to the panel after ExpandDelay.
func (m *Machine) Navigate(target State) error {
	if !target.IsPanel() {
		return fmt.Errorf("island: cannot navigate to %s", target)
	}
	m.cancelExpand()
	if m.state != Closed {
		m.set(target)
		return nil
	}
	m.set(Compact)
	m.expandTask = m.sched.After(ExpandDelay, taskExpand, func() {
		m.expandTask = 0
		m.set(target)
	})
	return nil
}

// Back leaves a panel for the previous state: closed if that is where the
// panel was entered from, compact otherwise. A panel reached from the closed
// pill went through compact first, so Back lands on compact. It is a no-op
// outside panels.
func (m *Machine) Back() {
	if !m.state.IsPanel() {
		return
	}
	m.cancelExpand()
	if m.previous == Closed {
		m.set(Closed)
		return
	}
	m.set(Compact)
}

// Close collapses the widget from any state.
func (m *Machine) Close() {
	m.cancelExpand()
	if m.state == Closed {
		return
	}
	m.set(Closed)
}

func (m *Machine) set(next State) {
	if next == m.state {
		return
	}
	if m.state == Contact {
		m.sched.Cancel(m.returnTask)
		m.returnTask = 0
		if m.form.Status == FormSubmitted {
			m.form.Status = FormEditing
		}
	}
	m.previous, m.state = m.state, next
	if next != Closed {
		m.eyes.Center()
	}
	if next == GitHub && m.stats.State == service.CacheEmpty {
		m.requestStats(false)
	}
}

func (m *Machine) cancelExpand() {
	m.sched.Cancel(m.expandTask)
	m.expandTask = 0
}

func (m *Machine) requestStats(refresh bool) {
	m.stats.gen++
	m.stats.State = service.CacheLoading
	m.effects = append(m.effects, Effect{Kind: EffectFetchStats, Generation: m.stats.gen, Refresh: refresh})
}

// RetryStats discards the cached statistics and fetches again.
func (m *Machine) RetryStats() {
	m.stats.Value = model.RepositoryStatistics{}
	m.requestStats(true)
}

// StatsLoaded applies a fetch result. Results from a superseded fetch are
// dropped; it reports whether v was applied.
func (m *Machine) StatsLoaded(gen uint64, v model.RepositoryStatistics) bool {
	if gen != m.stats.gen || m.stats.State != service.CacheLoading {
		return false
	}
	m.stats.Value = v
	m.stats.State = service.StateFor(v)
	return true
}

// SetField updates a contact input.
func (m *Machine) SetField(f Field, value string) {
	switch f {
	case FieldName:
		m.form.Values.Name = value
	case FieldEmail:
		m.form.Values.Email = value
	case FieldMessage:
		m.form.Values.Message = value
	}
	if m.form.Status == FormFailed {
		m.form.Status = FormEditing
		m.form.Err = ""
	}
}

// SubmitContact validates the form and queues the submission.
func (m *Machine) SubmitContact() error {
	if m.state != Contact {
		return ErrNotInContact
	}
	if m.form.Status == FormSubmitting {
		return ErrSubmitInProgress
	}
	sub := m.form.Values.Trimmed()
	if missing := sub.MissingFields(); len(missing) > 0 {
		err := &MissingFieldsError{Fields: missing}
		m.form.Status = FormFailed
		m.form.Err = err.Error()
		return err
	}
	m.form.seq++
	m.form.Status = FormSubmitting
	m.form.Err = ""
	m.effects = append(m.effects, Effect{Kind: EffectSubmitContact, Seq: m.form.seq, Submission: sub})
	return nil
}

// ContactResult applies the outcome of submission seq. A success clears the
// form and returns to compact after SuccessDisplay, as long as the contact
// panel is still open.
func (m *Machine) ContactResult(seq uint64, err error) bool {
	if seq != m.form.seq || m.form.Status != FormSubmitting {
		return false
	}
	if err != nil {
		m.form.Status = FormFailed
		m.form.Err = err.Error()
		return true
	}
	m.form.Values = model.ContactSubmission{}
	m.form.Status = FormSubmitted
	m.form.Err = ""
	if m.state == Contact {
		m.returnTask = m.sched.After(SuccessDisplay, taskContactReset, func() {
			m.returnTask = 0
			m.set(Compact)
		})
	} else {
		m.form.Status = FormEditing
	}
	return true
}

// TakeEffects drains the queued effects.
func (m *Machine) TakeEffects() []Effect {
	out := m.effects
	m.effects = nil
	return out
}

// PointerMoved feeds the pointer delta from the pill's center. Ignored
// unless the widget is closed.
func (m *Machine) PointerMoved(dx, dy float64) {
	if m.state != Closed {
		return
	}
	m.eyes.SetPointer(dx, dy)
}

// SetHovered reports whether the pointer is over the pill.
func (m *Machine) SetHovered(hovered bool) {
	m.eyes.SetHovered(hovered)
}

// Step advances virtual time by dt, running due timers and the eye springs.
func (m *Machine) Step(dt time.Duration) {
	m.sched.AdvanceBy(dt)
	m.eyes.Step(dt)
}

// Teardown cancels every timer the widget owns.
func (m *Machine) Teardown() {
	m.anim.Stop()
	m.sched.CancelAll()
	m.expandTask, m.returnTask = 0, 0
}
