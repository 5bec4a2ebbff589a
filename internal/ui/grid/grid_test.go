package grid

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/scroll"
	"github.com/llehouerou/sombox/internal/ui/testutil"
)

func card(id string) catalog.Card {
	for _, c := range catalog.HomeCards() {
		if c.ID == id {
			return c
		}
	}
	panic("unknown card " + id)
}

func newGrid(t *testing.T, columns int) *Model {
	t.Helper()
	m := New(catalog.Default(), columns)
	m.SetSize(120, 30)
	m.SetDebounce(time.Millisecond)
	m.Open(card("all"))
	return m
}

func TestOpen_CardFilter(t *testing.T) {
	m := newGrid(t, 0)
	assert.Equal(t, "All Channels", m.Title())
	assert.Len(t, m.Channels(), len(catalog.DefaultChannels))

	m.Open(card("sports"))
	assert.Equal(t, "Sports Channels", m.Title())
	require.NotEmpty(t, m.Channels())
	for _, ch := range m.Channels() {
		assert.Equal(t, "Sports", ch.Category)
	}

	m.Open(card("radio"))
	assert.Equal(t, "Radio Stations", m.Title())
	for _, ch := range m.Channels() {
		assert.True(t, ch.IsRadio())
	}
}

func TestColumns(t *testing.T) {
	m := newGrid(t, 0)
	assert.Equal(t, 4, m.Columns())

	m = newGrid(t, 3)
	assert.Equal(t, 3, m.Columns())
	r := m.Layout().Regions[0]
	assert.Equal(t, 3, r.Shape.Width)
	assert.Equal(t, len(catalog.DefaultChannels), r.Shape.Len)
}

func TestLayout_VerticalMoveByRow(t *testing.T) {
	m := newGrid(t, 4)
	c := focus.NewController()
	c.Enter(focus.ViewGrid, m.Layout())

	next, moved := c.Move(focus.Down, m.Layout())
	require.True(t, moved)
	assert.Equal(t, focus.At(focus.ZoneChannel, 4), next)

	// 20 channels in rows of 4: index 17 has no row below
	c.Focus(focus.At(focus.ZoneChannel, 17), m.Layout())
	_, moved = c.Move(focus.Down, m.Layout())
	assert.False(t, moved)
}

func TestSearch_FiltersWhileTyping(t *testing.T) {
	m := newGrid(t, 0)
	m.StartSearch()
	require.True(t, m.Searching())

	var changed bool
	for _, k := range []string{"e", "s", "p", "n"} {
		_, changed = m.Update(testutil.Key(k))
		assert.True(t, changed)
	}
	assert.Equal(t, "espn", m.Query())
	require.Len(t, m.Channels(), 1)
	assert.Equal(t, "ESPN", m.Channels()[0].Name)

	_, changed = m.Update(testutil.Key("enter"))
	assert.False(t, changed)
	assert.False(t, m.Searching())
	assert.Equal(t, "espn", m.Query())

	out := m.View(focus.At(focus.ZoneChannel, 0))
	assert.True(t, testutil.ContainsLine(out, "1 channel"))
}

func TestSearch_EscClears(t *testing.T) {
	m := newGrid(t, 0)
	m.StartSearch()
	for _, k := range []string{"q", "x", "q"} {
		m.Update(testutil.Key(k))
	}
	require.Equal(t, "qxq", m.Query())
	require.Empty(t, m.Channels())

	out := m.View(focus.None)
	assert.True(t, testutil.ContainsLine(out, "No channels found"))
	assert.True(t, testutil.ContainsLine(out, `"qxq"`))

	_, changed := m.Update(testutil.Key("esc"))
	assert.True(t, changed)
	assert.Empty(t, m.Query())
	assert.Len(t, m.Channels(), len(catalog.DefaultChannels))
}

func TestUpdate_KeysIgnoredWithoutSearch(t *testing.T) {
	m := newGrid(t, 0)
	cmd, changed := m.Update(testutil.Key("a"))
	assert.Nil(t, cmd)
	assert.False(t, changed)
}

func TestView_Cards(t *testing.T) {
	m := newGrid(t, 0)
	out := m.View(focus.At(focus.ZoneChannel, 0))

	assert.True(t, testutil.ContainsLine(out, "All Channels"))
	assert.True(t, testutil.ContainsLine(out, "20 channels"))
	assert.True(t, testutil.ContainsLine(out, "Premium Movies HD"))
	assert.True(t, testutil.ContainsLine(out, "12,847 watching"))
	assert.LessOrEqual(t, testutil.MaxWidth(out), 120)
	assert.Contains(t, testutil.StripANSI(out), "┏")
}

func TestFollow_CentersRow(t *testing.T) {
	m := newGrid(t, 4)
	assert.Nil(t, m.Follow(focus.At(focus.ZoneChannel, 0)))
	assert.NotNil(t, m.Follow(focus.At(focus.ZoneChannel, 19)))
	assert.Nil(t, m.Follow(focus.None))
}

func TestNearestIn_KeepsColumn(t *testing.T) {
	m := newGrid(t, 4)
	assert.Equal(t, 10, m.NearestIn(2, focus.At(focus.ZoneChannel, 2)))
	assert.Equal(t, 8, m.NearestIn(2, focus.None))
	assert.Equal(t, 19, m.NearestIn(9, focus.At(focus.ZoneChannel, 3)))
}

func TestWheel_SettlesOnRow(t *testing.T) {
	m := newGrid(t, 4)
	cmd, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	msgs := testutil.Exec(cmd)
	require.Len(t, msgs, 1)
	settle, ok := msgs[0].(scroll.SettleMsg)
	require.True(t, ok)

	cmd, _ = m.Update(settle)
	msgs = testutil.Exec(cmd)
	require.Len(t, msgs, 1)
	am := msgs[0].(action.Msg)
	assert.Equal(t, Source, am.Source)
	_, ok = am.Action.(FocusRow)
	assert.True(t, ok)
}
