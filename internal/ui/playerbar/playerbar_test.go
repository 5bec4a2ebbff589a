package playerbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/ui/testutil"
)

var testNow = time.Date(2026, 3, 14, 20, 10, 0, 0, time.UTC)

func testState(status player.State) State {
	return State{
		Channel: catalog.Channel{ID: "11", Name: "ESPN", Category: "Sports", Live: true},
		Number:  11,
		Total:   20,
		Status:  status,
		Volume:  80,
		Now:     testNow,
	}
}

func newScreen() *Model {
	m := New()
	m.SetSize(100, 24)
	return m
}

func TestLayout_ControlRow(t *testing.T) {
	l := Layout()
	r, _, ok := l.Region(focus.ZoneControl)
	require.True(t, ok)
	assert.Equal(t, len(Controls), r.Shape.Len)
	assert.Equal(t, focus.Horizontal, r.Axis)

	c, ok := ControlAt(1)
	require.True(t, ok)
	assert.Equal(t, ControlPlayPause, c)
	_, ok = ControlAt(len(Controls))
	assert.False(t, ok)
}

func TestShow_ArmsTimerOnlyWhilePlaying(t *testing.T) {
	m := newScreen()
	assert.Nil(t, m.Show(false))
	assert.NotNil(t, m.Show(true))
}

func TestHide_IgnoresStaleTimers(t *testing.T) {
	m := newScreen()
	m.Show(true)
	stale := HideMsg{Version: m.version}
	m.Show(true)

	assert.False(t, m.Hide(stale))
	assert.True(t, m.Visible())

	assert.True(t, m.Hide(HideMsg{Version: m.version}))
	assert.False(t, m.Visible())
	assert.False(t, m.Hide(HideMsg{Version: m.version}))
}

func TestCancel_InvalidatesTimer(t *testing.T) {
	m := newScreen()
	m.Show(true)
	pending := HideMsg{Version: m.version}
	m.Cancel()
	assert.False(t, m.Hide(pending))
	assert.True(t, m.Visible())
}

func TestReset(t *testing.T) {
	m := newScreen()
	m.ToggleFullscreen()
	m.Show(true)
	m.Hide(HideMsg{Version: m.version})

	m.Reset()
	assert.True(t, m.Visible())
	assert.False(t, m.Fullscreen())
}

func TestLabel_FollowsState(t *testing.T) {
	assert.Equal(t, "⏸ Pause", ControlPlayPause.Label(testState(player.Playing)))
	assert.Equal(t, "▶ Play", ControlPlayPause.Label(testState(player.Paused)))

	s := testState(player.Playing)
	s.Muted = true
	assert.Equal(t, "♪ Unmute", ControlMute.Label(s))
}

func TestView_Playing(t *testing.T) {
	m := newScreen()
	out := m.View(testState(player.Playing), focus.At(focus.ZoneControl, 0))

	assert.True(t, testutil.ContainsLine(out, "ESPN"))
	assert.True(t, testutil.ContainsLine(out, "CH 11/20"))
	assert.True(t, testutil.ContainsLine(out, "● LIVE"))
	assert.True(t, testutil.ContainsLine(out, "80%"))
	assert.True(t, testutil.ContainsLine(out, "◀ Back"))
	assert.True(t, testutil.ContainsLine(out, "min left"))
	assert.LessOrEqual(t, testutil.MaxWidth(out), 100)
}

func TestView_HiddenControls(t *testing.T) {
	m := newScreen()
	m.Show(true)
	m.Hide(HideMsg{Version: m.version})

	out := m.View(testState(player.Playing), focus.At(focus.ZoneControl, 0))
	assert.False(t, testutil.ContainsLine(out, "◀ Back"))
}

func TestView_FullscreenHidesInfo(t *testing.T) {
	m := newScreen()
	m.ToggleFullscreen()
	out := m.View(testState(player.Paused), focus.None)

	assert.True(t, testutil.ContainsLine(out, "ESPN"))
	assert.True(t, testutil.ContainsLine(out, "Paused"))
	assert.False(t, testutil.ContainsLine(out, "CH 11/20"))
	assert.False(t, testutil.ContainsLine(out, "min left"))
}

func TestView_Muted(t *testing.T) {
	m := newScreen()
	s := testState(player.Stopped)
	s.Muted = true
	out := m.View(s, focus.None)
	assert.True(t, testutil.ContainsLine(out, "MUTED"))
	assert.True(t, testutil.ContainsLine(out, "Stopped"))
}

func TestRenderVolume(t *testing.T) {
	assert.Equal(t, "VOL ▮▮▮▮▮▮▮▮▯▯  80%", testutil.StripANSI(RenderVolume(80, false)))
	assert.Equal(t, "VOL ▯▯▯▯▯▯▯▯▯▯   0%", testutil.StripANSI(RenderVolume(-5, false)))
	assert.Equal(t, "MUTED", testutil.StripANSI(RenderVolume(80, true)))
}

func TestRenderProgress_Narrow(t *testing.T) {
	p := catalog.Program{Start: testNow.Add(-10 * time.Minute), End: testNow.Add(20 * time.Minute)}
	out := testutil.StripANSI(RenderProgress(p, testNow, 20))
	assert.Equal(t, "20:00 – 20:30  20 min left", out)

	out = testutil.StripANSI(RenderProgress(p, testNow, 60))
	assert.Contains(t, out, "━")
	assert.Contains(t, out, "20 min left")
}

func TestNewState_ReadsBackend(t *testing.T) {
	p := player.NewMock()
	p.SetState(player.Playing)
	p.SetVolume(40)
	p.SetMuted(true)
	ch := catalog.Channel{ID: "2", Name: "Sports Central"}

	s := NewState(p, ch, 2, 9, testNow)
	assert.Equal(t, player.Playing, s.Status)
	assert.Equal(t, 40, s.Volume)
	assert.True(t, s.Muted)
	assert.Equal(t, 2, s.Number)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:05", formatDuration(5*time.Second))
	assert.Equal(t, "1:02:03", formatDuration(time.Hour+2*time.Minute+3*time.Second))
}
