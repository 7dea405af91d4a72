package island

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateRoundTrip(t *testing.T) {
	for _, s := range []State{Closed, Compact, GitHub, Calendar, Contact, Social} {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseState("expanded")
	assert.Error(t, err)
	assert.Equal(t, "State(42)", State(42).String())
}

func TestIsPanel(t *testing.T) {
	assert.False(t, Closed.IsPanel())
	assert.False(t, Compact.IsPanel())
	for _, p := range Panels() {
		assert.True(t, p.IsPanel(), p.String())
		assert.NotEmpty(t, p.Title())
	}
}

func TestSizes(t *testing.T) {
	assert.Equal(t, Size{Width: 128, Height: 40, BorderRadius: 20}, SizeOf(Closed))
	assert.Equal(t, Size{Width: 440, Height: 160, BorderRadius: 30}, SizeOf(Compact))
	assert.Equal(t, Size{Width: 460, Height: 300, BorderRadius: 30}, SizeOf(Calendar))
	assert.Equal(t, "glanceLeft", GlanceLeft.String())
}
