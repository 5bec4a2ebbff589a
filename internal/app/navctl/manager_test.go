package navctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/state"
	"github.com/llehouerou/sombox/internal/ui/grid"
	"github.com/llehouerou/sombox/internal/ui/guide"
	"github.com/llehouerou/sombox/internal/ui/home"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	cat := catalog.Default()
	g := guide.New(cat, "")
	gr := grid.New(cat, 4)
	g.SetSize(130, 20)
	gr.SetSize(120, 30)
	g.SetDebounce(time.Millisecond)
	gr.SetDebounce(time.Millisecond)
	return New(home.New(catalog.HomeCards(), catalog.HomeRows), g, gr, playerbar.New())
}

func cardByID(id string) catalog.Card {
	for _, c := range catalog.HomeCards() {
		if c.ID == id {
			return c
		}
	}
	panic("unknown card " + id)
}

func TestLayoutFor(t *testing.T) {
	n := newManager(t)
	assert.True(t, n.LayoutFor(focus.ViewLoading).Empty())
	assert.Equal(t, focus.At(focus.ZoneCard, 0), n.LayoutFor(focus.ViewHome).First())
	assert.Equal(t, focus.At(focus.ZoneCountry, 0), n.LayoutFor(focus.ViewGuide).First())
	assert.Equal(t, focus.At(focus.ZoneControl, 0), n.LayoutFor(focus.ViewPlayer).First())
}

func TestMove_FollowsInGuide(t *testing.T) {
	n := newManager(t)
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneChannel, 0))

	moved, _ := n.Move(focus.Up)
	assert.False(t, moved)

	for range 10 {
		moved, _ = n.Move(focus.Down)
		require.True(t, moved)
	}
	assert.Equal(t, focus.At(focus.ZoneChannel, 10), n.Current())
}

func TestBack_ReturnsToOrigin(t *testing.T) {
	n := newManager(t)
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneChannel, 6))
	n.Enter(focus.ViewPlayer, focus.None)
	require.Equal(t, focus.ViewPlayer, n.View())

	tr := n.Back()
	assert.Equal(t, focus.ViewGuide, tr.To)
	assert.Equal(t, focus.At(focus.ZoneChannel, 6), n.Current())

	tr = n.Back()
	assert.Equal(t, focus.ViewHome, tr.To)
	assert.Equal(t, focus.At(focus.ZoneCard, 0), n.Current())
}

func TestReset_FocusesFirstChannel(t *testing.T) {
	n := newManager(t)
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneChannel, 8))
	n.Guide().ToggleFavoritesOnly()
	n.Reset()
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), n.Current())
}

func TestReset_EmptyListKeepsSelectedCountry(t *testing.T) {
	n := newManager(t)
	require.True(t, n.Guide().SetCountry("Germany"))
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneChannel, 1))
	require.Equal(t, focus.At(focus.ZoneChannel, 1), n.Current())

	require.True(t, n.Guide().SetCategory("Radio"))
	require.Empty(t, n.Guide().Channels())
	assert.Nil(t, n.Reset())
	assert.Equal(t, focus.At(focus.ZoneCountry, 4), n.Current())
}

func TestReset_EmptyListLeavesSidebarFocus(t *testing.T) {
	n := newManager(t)
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneCountry, 2))

	require.True(t, n.Guide().SetCategory("Radio"))
	n.Guide().SetFavoritesOnly(true)
	require.Empty(t, n.Guide().Channels())
	assert.Nil(t, n.Reset())
	assert.Equal(t, focus.At(focus.ZoneCountry, 2), n.Current())
}

func TestCapture_Player(t *testing.T) {
	n := newManager(t)
	n.Guide().SetFavoritesOnly(true)
	n.Enter(focus.ViewGuide, focus.At(focus.ZoneChannel, 0))
	n.Enter(focus.ViewPlayer, focus.None)

	snap := n.Capture()
	assert.Equal(t, "player", snap.View)
	assert.Equal(t, "control-0", snap.FocusTarget)
	assert.Equal(t, "guide", snap.OriginView)
	assert.Equal(t, "channel-0", snap.OriginTarget)
	assert.Equal(t, catalog.AllCountries, snap.GuideCountry)
	assert.True(t, snap.FavoritesOnly)
}

func TestRestore_PlayerFallsBackToOrigin(t *testing.T) {
	n := newManager(t)
	v := n.Restore(&state.NavigationState{
		View:         "player",
		FocusTarget:  "control-2",
		OriginView:   "grid",
		OriginTarget: "channel-5",
		GridCard:     "all",
	})
	assert.Equal(t, focus.ViewGrid, v)
	assert.Equal(t, focus.At(focus.ZoneChannel, 5), n.Current())
	assert.Equal(t, "all", n.Grid().Card().ID)
}

func TestRestore_Guide(t *testing.T) {
	n := newManager(t)
	v := n.Restore(&state.NavigationState{
		View:          "guide",
		FocusTarget:   "channel-1",
		GuideCountry:  "Germany",
		GuideCategory: "Sports",
	})
	assert.Equal(t, focus.ViewGuide, v)
	assert.Equal(t, "Germany", n.Guide().Country())
	assert.Equal(t, "Sports", n.Guide().Category())
}

func TestRestore_FallsBackToHome(t *testing.T) {
	tests := []struct {
		name string
		snap *state.NavigationState
	}{
		{"nothing saved", nil},
		{"unknown view", &state.NavigationState{View: "settings"}},
		{"loading", &state.NavigationState{View: "loading"}},
		{"grid without card", &state.NavigationState{View: "grid", FocusTarget: "channel-1"}},
		{"player without origin", &state.NavigationState{View: "player"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newManager(t)
			assert.Equal(t, focus.ViewHome, n.Restore(tt.snap))
			assert.Equal(t, focus.At(focus.ZoneCard, 0), n.Current())
		})
	}
}

func TestRestore_StaleTargetFallsBackToFirst(t *testing.T) {
	n := newManager(t)
	n.Grid().Open(cardByID("radio"))
	v := n.Restore(&state.NavigationState{View: "grid", FocusTarget: "channel-99", GridCard: "radio"})
	assert.Equal(t, focus.ViewGrid, v)
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), n.Current())
}
