package island

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapClamped(t *testing.T) {
	assert.InDelta(t, 1.5, mapClamped(100, 200, 3), 1e-9)
	assert.InDelta(t, -3, mapClamped(-1000, 200, 3), 1e-9)
	assert.InDelta(t, 2, mapClamped(250, 200, 2), 1e-9)
	assert.Zero(t, mapClamped(0, 200, 3))
}

func TestEyesSettleOnTarget(t *testing.T) {
	e := NewEyes()
	e.SetPointer(100, -100)
	e.Step(2 * time.Second)

	x, y := e.Offset()
	assert.InDelta(t, 1.5, x, 0.01)
	assert.InDelta(t, -1, y, 0.01)
}

func TestEyesStayBounded(t *testing.T) {
	for _, hovered := range []bool{false, true} {
		e := NewEyes()
		e.SetHovered(hovered)
		e.SetPointer(10000, 10000)
		for i := 0; i < 100; i++ {
			e.Step(50 * time.Millisecond)
			x, y := e.Offset()
			// overshoot of an underdamped spring stays well inside twice the bound
			assert.LessOrEqual(t, x, 2*maxEyeX)
			assert.LessOrEqual(t, y, 2*maxEyeY)
		}
	}
}

func TestHoverTightensSprings(t *testing.T) {
	e := NewEyes()
	assert.Equal(t, float64(restStiffness), e.X.Stiffness)
	assert.Equal(t, float64(restDamping), e.X.Damping)

	e.SetHovered(true)
	assert.True(t, e.Hovered())
	assert.Equal(t, float64(hoverStiffness), e.Y.Stiffness)
	assert.Equal(t, float64(hoverDamping), e.Y.Damping)

	rest, hover := NewEyes(), NewEyes()
	hover.SetHovered(true)
	rest.SetPointer(200, 0)
	hover.SetPointer(200, 0)
	rest.Step(30 * time.Millisecond)
	hover.Step(30 * time.Millisecond)
	rx, _ := rest.Offset()
	hx, _ := hover.Offset()
	assert.Greater(t, hx, rx)
}

func TestSpringIgnoresNonPositiveStep(t *testing.T) {
	s := Spring{Stiffness: 300, Damping: 30, Target: 1}
	s.Step(0)
	s.Step(-time.Second)
	assert.Zero(t, s.Value)
}
