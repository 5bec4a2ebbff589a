package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/ui/testutil"
)

func advance(m Model, n int) Model {
	for range n {
		m, _ = m.Update(TickMsg{})
	}
	return m
}

func TestProgressAndSteps(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.Progress())
	assert.Equal(t, "Initializing SomBox TV", m.Step())

	m = advance(m, 15) // 750ms
	assert.Equal(t, 25, m.Progress())
	assert.Equal(t, "Loading Channels", m.Step())

	m = advance(m, 15)
	assert.Equal(t, 50, m.Progress())
	assert.Equal(t, "Preparing Interface", m.Step())

	m = advance(m, 15)
	assert.Equal(t, "Almost Ready...", m.Step())
	assert.False(t, m.Finished())
}

func TestFinishesAfterThreeSeconds(t *testing.T) {
	m := advance(New(), 59)
	require.False(t, m.Finished())

	m, cmd := m.Update(TickMsg{})
	assert.Equal(t, 100, m.Progress())
	assert.True(t, m.Finished())
	assert.NotNil(t, cmd)

	m2, c2 := m.Update(TickMsg{})
	assert.Nil(t, c2, "ticks after finishing are ignored")
	assert.Equal(t, m, m2)
}

func TestKeySkips(t *testing.T) {
	m := advance(New(), 3)
	m, cmd := m.Update(testutil.Key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.Finished())
	assert.Equal(t, 100, m.Progress())
	assert.Equal(t, []any{DoneMsg{}}, toAny(testutil.Exec(cmd)))
}

func TestView(t *testing.T) {
	m := advance(New(), 30)
	m.SetSize(80, 24)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "SomBox TV")
	assert.Contains(t, out, "Preparing Interface")
	assert.Contains(t, out, "50%")
	assert.LessOrEqual(t, testutil.MaxWidth(out), 80)
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
