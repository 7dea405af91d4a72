package island

import (
	"math"
	"time"
)

// Spring constants for the eye tracking. Hovering tightens the response.
const (
	restStiffness  = 300
	restDamping    = 30
	hoverStiffness = 800
	hoverDamping   = 15

	pointerRange = 200.0
	maxEyeX      = 3.0
	maxEyeY      = 2.0

	springSubstep = 4 * time.Millisecond
)

// Spring is a damped harmonic oscillator with unit mass chasing Target.
type Spring struct {
	Stiffness float64
	Damping   float64

	Value    float64
	Velocity float64
	Target   float64
}

// Step integrates the spring forward by dt.
func (s *Spring) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	steps := int(math.Ceil(float64(dt) / float64(springSubstep)))
	h := dt.Seconds() / float64(steps)
	for i := 0; i < steps; i++ {
		accel := -s.Stiffness*(s.Value-s.Target) - s.Damping*s.Velocity
		s.Velocity += accel * h
		s.Value += s.Velocity * h
	}
}

// Eyes maps the pointer position relative to the island onto a small,
// bounded pupil offset.
type Eyes struct {
	X, Y    Spring
	hovered bool
}

// NewEyes returns centered eyes with the resting spring constants.
func NewEyes() *Eyes {
	e := &Eyes{}
	e.SetHovered(false)
	return e
}

// SetPointer sets the raw pointer delta from the island's center.
func (e *Eyes) SetPointer(dx, dy float64) {
	e.X.Target = mapClamped(dx, pointerRange, maxEyeX)
	e.Y.Target = mapClamped(dy, pointerRange, maxEyeY)
}

// SetHovered switches between the resting and hovered spring constants.
func (e *Eyes) SetHovered(hovered bool) {
	e.hovered = hovered
	k, c := float64(restStiffness), float64(restDamping)
	if hovered {
		k, c = hoverStiffness, hoverDamping
	}
	e.X.Stiffness, e.X.Damping = k, c
	e.Y.Stiffness, e.Y.Damping = k, c
}

// Hovered reports whether the pointer is over the island.
func (e *Eyes) Hovered() bool { return e.hovered }

// Center sends the eyes back to the middle.
func (e *Eyes) Center() {
	e.X.Target, e.Y.Target = 0, 0
}

// Step advances both springs.
func (e *Eyes) Step(dt time.Duration) {
	e.X.Step(dt)
	e.Y.Step(dt)
}

// Offset returns the current pupil offset in pixels.
func (e *Eyes) Offset() (x, y float64) {
	return e.X.Value, e.Y.Value
}

// mapClamped maps v from [-in, in] onto [-out, out], clamping outside values.
func mapClamped(v, in, out float64) float64 {
	v = math.Max(-in, math.Min(in, v))
	return v / in * out
}
