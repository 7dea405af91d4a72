package island

import (
	"math/rand/v2"
	"time"
)

// ExpressionConfig controls how often an expression appears and how long it holds.
type ExpressionConfig struct {
	Weight   int
	Duration time.Duration
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Expressions is the weighted table the idle loop draws from. Idle and
// BounceInvite have zero weight: Idle is the resting face and BounceInvite
// runs on its own loop.
var Expressions = map[Expression]ExpressionConfig{
	Idle:         {},
	Blink:        {Weight: 40, Duration: 150 * time.Millisecond, MinDelay: 2 * time.Second, MaxDelay: 8 * time.Second},
	Wink:         {Weight: 15, Duration: 300 * time.Millisecond, MinDelay: 4 * time.Second, MaxDelay: 12 * time.Second},
	GlanceLeft:   {Weight: 15, Duration: 400 * time.Millisecond, MinDelay: 3 * time.Second, MaxDelay: 10 * time.Second},
	GlanceRight:  {Weight: 15, Duration: 400 * time.Millisecond, MinDelay: 3 * time.Second, MaxDelay: 10 * time.Second},
	Smirk:        {Weight: 10, Duration: 600 * time.Millisecond, MinDelay: 5 * time.Second, MaxDelay: 15 * time.Second},
	Smile:        {Weight: 20, Duration: 800 * time.Millisecond, MinDelay: 4 * time.Second, MaxDelay: 12 * time.Second},
	BounceInvite: {Duration: 800 * time.Millisecond, MinDelay: 8 * time.Second, MaxDelay: 20 * time.Second},
}

// drawOrder fixes iteration order so a seeded source gives repeatable picks.
var drawOrder = []Expression{Blink, Wink, GlanceLeft, GlanceRight, Smirk, Smile}

const (
	delayJitter = time.Second
	minDelay    = time.Second
)

// PickExpression draws an idle expression according to the weights.
func PickExpression(rng *rand.Rand) Expression {
	total := 0
	for _, e := range drawOrder {
		total += Expressions[e].Weight
	}
	if total == 0 {
		return Blink
	}
	r := rng.IntN(total)
	for _, e := range drawOrder {
		r -= Expressions[e].Weight
		if r < 0 {
			return e
		}
	}
	return Blink
}

// RandomDelay returns a uniform delay in [lo, hi] with up to one second of
// jitter either way, never shorter than one second.
func RandomDelay(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	base := lo + time.Duration(rng.Float64()*float64(hi-lo))
	jitter := time.Duration((rng.Float64() - 0.5) * 2 * float64(delayJitter))
	return max(minDelay, base+jitter)
}

// Animator runs the two ambient loops of the closed pill: the expression
// loop and the bounce-invite loop. Both are suspended while the page is
// hidden and disabled while reduced motion is requested.
type Animator struct {
	sched *Scheduler
	rng   *rand.Rand

	expression Expression
	bouncing   bool

	running       bool
	visible       bool
	reducedMotion bool

	exprTask   TaskID
	bounceTask TaskID
}

// NewAnimator creates a stopped animator. The page is assumed visible.
func NewAnimator(sched *Scheduler, rng *rand.Rand) *Animator {
	return &Animator{sched: sched, rng: rng, visible: true}
}

// Expression returns the current face.
func (a *Animator) Expression() Expression { return a.expression }

// Bouncing reports whether the invite bounce is playing.
func (a *Animator) Bouncing() bool { return a.bouncing }

// Active reports whether the loops are currently scheduled to run.
func (a *Animator) Active() bool {
	return a.running && a.visible && !a.reducedMotion
}

// Start begins both loops (on mount).
func (a *Animator) Start() {
	a.running = true
	a.resume()
}

// Stop cancels both loops (on teardown).
func (a *Animator) Stop() {
	a.running = false
	a.halt()
}

// SetVisible suspends the loops when the document is hidden and resumes them
// when it is shown again.
func (a *Animator) SetVisible(visible bool) {
	a.visible = visible
	if visible {
		a.resume()
	} else {
		a.halt()
	}
}

// SetReducedMotion follows the user's motion preference, which can change
// during a session.
func (a *Animator) SetReducedMotion(reduced bool) {
	a.reducedMotion = reduced
	if reduced {
		a.halt()
	} else {
		a.resume()
	}
}

func (a *Animator) resume() {
	if !a.Active() {
		return
	}
	if a.exprTask == 0 {
		a.scheduleExpression()
	}
	if a.bounceTask == 0 {
		a.scheduleBounce()
	}
}

func (a *Animator) halt() {
	a.sched.Cancel(a.exprTask)
	a.sched.Cancel(a.bounceTask)
	a.exprTask, a.bounceTask = 0, 0
	a.expression = Idle
	a.bouncing = false
}

func (a *Animator) scheduleExpression() {
	e := PickExpression(a.rng)
	cfg := Expressions[e]
	delay := RandomDelay(a.rng, cfg.MinDelay, cfg.MaxDelay)
	a.exprTask = a.sched.After(delay, "expression", func() {
		a.expression = e
		a.exprTask = a.sched.After(cfg.Duration, "expression-reset", func() {
			a.expression = Idle
			a.scheduleExpression()
		})
	})
}

func (a *Animator) scheduleBounce() {
	cfg := Expressions[BounceInvite]
	delay := RandomDelay(a.rng, cfg.MinDelay, cfg.MaxDelay)
	a.bounceTask = a.sched.After(delay, "bounce", func() {
		a.bouncing = true
		a.bounceTask = a.sched.After(cfg.Duration, "bounce-reset", func() {
			a.bouncing = false
			a.scheduleBounce()
		})
	})
}
