package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeLayout() Layout {
	return NewLayout(Region{Zone: ZoneCard, Axis: Horizontal, Shape: RowsOf(4, 5)})
}

func gridLayout(n int) Layout {
	return NewLayout(Region{Zone: ZoneChannel, Shape: Grid(n, 3)})
}

func playerLayout() Layout {
	return NewLayout(Region{Zone: ZoneControl, Axis: Horizontal, Shape: List(6)})
}

func layouts(grid int) LayoutFunc {
	return func(v View) Layout {
		switch v {
		case ViewHome:
			return homeLayout()
		case ViewGuide:
			return guideLayout(8, 5)
		case ViewGrid:
			return gridLayout(grid)
		case ViewPlayer:
			return playerLayout()
		default:
			return Layout{}
		}
	}
}

func TestController_EnterDefaultsToFirst(t *testing.T) {
	c := NewController()
	assert.Equal(t, ViewLoading, c.View())
	assert.True(t, c.Current().IsNone())

	got := c.Enter(ViewGuide, guideLayout(8, 5))
	assert.Equal(t, At(ZoneCountry, 0), got)
	assert.Equal(t, ViewGuide, c.View())
}

func TestController_HomeScenario(t *testing.T) {
	c := NewController()
	c.Enter(ViewHome, homeLayout())

	for range 3 {
		c.Move(Right, homeLayout())
	}
	_, moved := c.Move(Right, homeLayout())
	assert.False(t, moved)
	assert.Equal(t, At(ZoneCard, 3), c.Current())

	act, ok := c.Activate(homeLayout())
	require.True(t, ok)
	assert.Equal(t, ViewHome, act.View)
	assert.Equal(t, 3, act.Target.Index)
}

func TestController_PublishesEveryChange(t *testing.T) {
	c := NewController()
	var got []Change
	c.Subscribe(func(ch Change) { got = append(got, ch) })

	c.Enter(ViewGuide, guideLayout(8, 5))
	c.Move(Down, guideLayout(8, 5))
	c.Move(Up, guideLayout(8, 5))
	c.Move(Up, guideLayout(8, 5)) // clamped, no change

	require.Len(t, got, 3)
	assert.Equal(t, At(ZoneCountry, 1), got[1].Target)
	assert.Equal(t, At(ZoneCountry, 0), got[2].Target)
}

func TestController_ActivateNoops(t *testing.T) {
	c := NewController()
	c.Enter(ViewGrid, gridLayout(0))
	_, ok := c.Activate(gridLayout(0))
	assert.False(t, ok, "empty collection")

	inert := NewLayout(Region{Zone: ZoneControl, Shape: List(2), Inert: true})
	c.Enter(ViewPlayer, inert)
	_, ok = c.Activate(inert)
	assert.False(t, ok, "inert zone")
}

func TestController_ActivateStaleTarget(t *testing.T) {
	c := NewController()
	c.Enter(ViewGrid, gridLayout(9))
	c.Focus(At(ZoneChannel, 8), gridLayout(9))

	_, ok := c.Activate(gridLayout(4))
	assert.False(t, ok)
}

func TestController_CancelDetailRestoresOrigin(t *testing.T) {
	c := NewController()
	lf := layouts(9)
	c.Enter(ViewGrid, lf(ViewGrid))
	c.Move(Down, lf(ViewGrid))
	c.Move(Right, lf(ViewGrid))
	require.Equal(t, At(ZoneChannel, 4), c.Current())

	c.Enter(ViewPlayer, lf(ViewPlayer))
	origin, ok := c.Origin()
	require.True(t, ok)
	assert.Equal(t, ViewGrid, origin)
	c.Move(Right, lf(ViewPlayer))

	tr := c.Cancel(lf)
	assert.Equal(t, ViewPlayer, tr.From)
	assert.Equal(t, ViewGrid, tr.To)
	assert.Equal(t, At(ZoneChannel, 4), tr.Target)
	assert.Equal(t, ViewGrid, c.View())
	assert.True(t, c.Target(ViewPlayer).IsNone(), "player target cleared")
}

func TestController_CancelRestoresFirstWhenOriginShrank(t *testing.T) {
	c := NewController()
	c.Enter(ViewGrid, gridLayout(9))
	c.Focus(At(ZoneChannel, 8), gridLayout(9))
	c.Enter(ViewPlayer, playerLayout())

	tr := c.Cancel(layouts(2))
	assert.Equal(t, At(ZoneChannel, 0), tr.Target)
}

func TestController_CancelGoesHome(t *testing.T) {
	c := NewController()
	lf := layouts(9)
	c.Enter(ViewGuide, lf(ViewGuide))
	c.Move(Down, lf(ViewGuide))

	tr := c.Cancel(lf)
	assert.Equal(t, ViewGuide, tr.From)
	assert.Equal(t, ViewHome, tr.To)
	assert.Equal(t, At(ZoneCard, 0), tr.Target)
	assert.True(t, c.Target(ViewGuide).IsNone(), "exited view cleared")
}

func TestController_EpochChangesWithView(t *testing.T) {
	c := NewController()
	e0 := c.Epoch()
	c.Enter(ViewGuide, guideLayout(8, 5))
	e1 := c.Epoch()
	assert.NotEqual(t, e0, e1)

	c.Move(Down, guideLayout(8, 5))
	assert.Equal(t, e1, c.Epoch())

	c.Enter(ViewPlayer, playerLayout())
	assert.NotEqual(t, e1, c.Epoch())
}

func TestController_Refresh(t *testing.T) {
	c := NewController()
	c.Enter(ViewGuide, guideLayout(8, 5))
	c.Focus(At(ZoneChannel, 4), guideLayout(8, 5))

	assert.Equal(t, At(ZoneChannel, 4), c.Refresh(guideLayout(8, 6)))
	assert.Equal(t, At(ZoneCountry, 0), c.Refresh(guideLayout(8, 2)))
}

func TestController_EnterAtRestores(t *testing.T) {
	c := NewController()
	got := c.EnterAt(ViewGuide, At(ZoneChannel, 3), guideLayout(8, 5))
	assert.Equal(t, At(ZoneChannel, 3), got)

	got = c.EnterAt(ViewGrid, At(ZoneChannel, 30), gridLayout(5))
	assert.Equal(t, At(ZoneChannel, 0), got)
}

func TestParseTarget(t *testing.T) {
	got, ok := ParseTarget("channel-12")
	require.True(t, ok)
	assert.Equal(t, At(ZoneChannel, 12), got)
	assert.Equal(t, "channel-12", got.String())

	_, ok = ParseTarget("channel")
	assert.False(t, ok)
	_, ok = ParseTarget("-3")
	assert.False(t, ok)
	_, ok = ParseTarget("channel-x")
	assert.False(t, ok)
}

func TestParseView(t *testing.T) {
	for _, v := range []View{ViewLoading, ViewHome, ViewGuide, ViewGrid, ViewPlayer} {
		got, ok := ParseView(v.String())
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseView("settings")
	assert.False(t, ok)
}
