package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/app/popupctl"
	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/config"
	"github.com/llehouerou/sombox/internal/dial"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/mpris"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/state"
	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/guide"
	"github.com/llehouerou/sombox/internal/ui/loading"
	"github.com/llehouerou/sombox/internal/ui/testutil"
)

var testNow = time.Date(2026, 3, 14, 20, 10, 0, 0, time.UTC)

type harness struct {
	m      Model
	player *player.Mock
	state  *state.Mock
	remote *mpris.Remote
}

func newHarness(t *testing.T, setup ...func(*harness)) *harness {
	t.Helper()
	h := &harness{
		player: player.NewMock(),
		state:  state.NewMock(),
		remote: mpris.NewRemote(),
	}
	for _, fn := range setup {
		fn(h)
	}
	h.m = New(&config.Config{GridColumns: 4}, Deps{
		Catalog: catalog.Default(),
		Player:  h.player,
		State:   h.state,
		Remote:  h.remote,
		Now:     func() time.Time { return testNow },
	})
	h.send(tea.WindowSizeMsg{Width: 130, Height: 30})
	h.send(loading.DoneMsg{})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.send(testutil.Key(k))
	}
	return cmd
}

// openGuide enters the guide from the Live TV card.
func (h *harness) openGuide(t *testing.T) {
	t.Helper()
	h.press("enter")
	require.Equal(t, focus.ViewGuide, h.m.ActiveView())
}

func TestNew_StartsOnLoading(t *testing.T) {
	m := New(nil, Deps{Catalog: catalog.Default(), Player: player.NewMock(), State: state.NewMock()})
	assert.Equal(t, focus.ViewLoading, m.ActiveView())
	assert.True(t, m.Focus().IsNone())
}

func TestNew_AppliesConfiguredVolume(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 80, h.player.Volume())

	h = newHarness(t, func(h *harness) {
		require.NoError(t, h.state.SaveVolume(35, true))
	})
	assert.Equal(t, 35, h.player.Volume())
	assert.True(t, h.player.Muted())
}

func TestNew_SeedsFavorites(t *testing.T) {
	h := newHarness(t)
	favs, err := h.state.Favorites()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"5", "7", "11"}, favs)
}

func TestLoading_KeySkipsAnimation(t *testing.T) {
	m := New(nil, Deps{Catalog: catalog.Default(), Player: player.NewMock(), State: state.NewMock()})
	next, cmd := m.Update(testutil.Key("x"))
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, focus.ViewLoading, m.ActiveView())

	next, _ = m.Update(loading.DoneMsg{})
	m = next.(Model)
	assert.Equal(t, focus.ViewHome, m.ActiveView())
	assert.Equal(t, focus.At(focus.ZoneCard, 0), m.Focus())
}

func TestHome_RightStopsAtRowEnd(t *testing.T) {
	h := newHarness(t)
	want := []int{1, 2, 3, 3}
	for _, i := range want {
		h.press("right")
		assert.Equal(t, focus.At(focus.ZoneCard, i), h.m.Focus())
	}

	h.press("enter")
	assert.Equal(t, focus.ViewGrid, h.m.ActiveView())
	assert.Equal(t, "sports", h.m.nav.Grid().Card().ID)
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
}

func TestHome_LiveTVOpensGuide(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	assert.Equal(t, focus.At(focus.ZoneCountry, 0), h.m.Focus())

	h.press("esc")
	assert.Equal(t, focus.ViewHome, h.m.ActiveView())
	assert.Equal(t, focus.At(focus.ZoneCard, 0), h.m.Focus())
}

func TestGuide_DialSelectsGreedily(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)

	h.press("1")
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
	assert.Equal(t, "1", h.m.dial.Digits())

	h.press("2")
	assert.Equal(t, focus.At(focus.ZoneChannel, 11), h.m.Focus())
	assert.Empty(t, h.m.dial.Digits())
}

func TestGuide_DialResetsAfterTimeout(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)

	h.press("1")
	require.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
	h.send(dial.ExpiredMsg{Version: h.m.dial.Version()})
	assert.Empty(t, h.m.dial.Digits())

	h.press("5")
	assert.Equal(t, focus.At(focus.ZoneChannel, 4), h.m.Focus())
}

func TestGuide_DigitsIgnoredElsewhere(t *testing.T) {
	h := newHarness(t)
	h.press("3")
	assert.Equal(t, focus.At(focus.ZoneCard, 0), h.m.Focus())
	assert.Empty(t, h.m.dial.Digits())
}

func TestGuide_FavoritesOnlyResetsFocus(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("9")
	require.Equal(t, focus.At(focus.ZoneChannel, 8), h.m.Focus())

	h.press("f")
	assert.True(t, h.m.nav.Guide().FavoritesOnly())
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
	assert.Len(t, h.m.nav.Guide().Channels(), 3)

	snap, ok := h.state.LastSavedNavigation()
	require.True(t, ok)
	assert.True(t, snap.FavoritesOnly)
	assert.Equal(t, "channel-0", snap.FocusTarget)
}

func TestGuide_CycleCategoryResetsFocus(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("4")

	h.press("c")
	assert.NotEmpty(t, h.m.nav.Guide().Category())
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
}

func TestGuide_CountryConfirmFilters(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("down", "down", "down", "down")
	require.Equal(t, focus.At(focus.ZoneCountry, 4), h.m.Focus())

	h.press("enter")
	assert.Equal(t, "Germany", h.m.nav.Guide().Country())
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())
	assert.Len(t, h.m.nav.Guide().Channels(), 2)
}

func TestGuide_StarPersists(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "*")

	assert.True(t, h.m.catalog.IsFavorite("1"))
	favs, err := h.state.Favorites()
	require.NoError(t, err)
	assert.Contains(t, favs, "1")

	h.press("*")
	assert.False(t, h.m.catalog.IsFavorite("1"))
	favs, err = h.state.Favorites()
	require.NoError(t, err)
	assert.NotContains(t, favs, "1")
}

func TestGuide_SettleFollowsSameZoneOnly(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	nearest := action.Msg{Source: guide.Source, Action: guide.FocusNearest{Zone: focus.ZoneChannel, Index: 7}}

	h.send(nearest)
	assert.Equal(t, focus.At(focus.ZoneCountry, 0), h.m.Focus())

	h.press("1")
	h.send(nearest)
	assert.Equal(t, focus.At(focus.ZoneChannel, 7), h.m.Focus())
}

func TestGuide_OpenPlayerAndBack(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("3", "enter")

	require.Equal(t, focus.ViewPlayer, h.m.ActiveView())
	assert.Equal(t, focus.At(focus.ZoneControl, 0), h.m.Focus())
	require.Len(t, h.player.PlayCalls(), 1)
	assert.Equal(t, "https://example.com/stream3", h.player.PlayCalls()[0].URL)
	require.Len(t, h.state.History(), 1)
	assert.Equal(t, "3", h.state.History()[0].ChannelID)
	assert.Equal(t, "Global News Network", h.remote.Snapshot().Channel.Name)

	h.press("esc")
	assert.Equal(t, focus.ViewGuide, h.m.ActiveView())
	assert.Equal(t, focus.At(focus.ZoneChannel, 2), h.m.Focus())
	assert.Equal(t, 1, h.player.StopCalls())
	assert.Nil(t, h.m.Channel())
	assert.Nil(t, h.remote.Snapshot().Channel)
}

func TestPlayer_ZapWrapsAround(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("2", "0", "enter")
	require.Equal(t, "Antena 1", h.m.Channel().Name)
	assert.True(t, h.player.PlayCalls()[0].Radio)

	h.press("pgup")
	assert.Equal(t, "Premium Movies HD", h.m.Channel().Name)

	h.press("pgdown")
	assert.Equal(t, "Antena 1", h.m.Channel().Name)
	assert.Len(t, h.player.PlayCalls(), 3)
	assert.True(t, h.remote.Snapshot().CanZap)
}

func TestPlayer_ZapStaysInFilteredCollection(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("f", "enter")
	require.Equal(t, "Documentary World", h.m.Channel().Name)

	h.press("pgdown")
	assert.Equal(t, "ESPN", h.m.Channel().Name)
}

func TestPlayer_Controls(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "enter")

	h.press(" ")
	assert.Equal(t, player.Paused, h.player.State())
	h.press(" ")
	assert.Equal(t, player.Playing, h.player.State())

	h.press("m")
	assert.True(t, h.player.Muted())
	vol, err := h.state.GetVolume()
	require.NoError(t, err)
	require.NotNil(t, vol)
	assert.True(t, vol.Muted)

	h.press("+")
	assert.Equal(t, 85, h.player.Volume())
	h.press("-", "-")
	assert.Equal(t, 75, h.player.Volume())

	h.press("right", "enter")
	assert.Equal(t, player.Paused, h.player.State())

	h.press("s")
	assert.Equal(t, player.Stopped, h.player.State())
}

func TestPlayer_Fullscreen(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "enter")

	assert.True(t, testutil.ContainsLine(h.m.View(), "CH 1/20"))
	h.press("f")
	out := h.m.View()
	assert.False(t, testutil.ContainsLine(out, "CH 1/20"))
	assert.True(t, testutil.ContainsLine(out, "Premium Movies HD"))
	assert.Equal(t, focus.ViewPlayer, h.m.ActiveView())
}

func TestPlayer_PlayErrorShowsPopup(t *testing.T) {
	h := newHarness(t)
	h.player.SetPlayError(errors.New("no route to host"))
	h.openGuide(t)
	h.press("1", "enter")

	assert.Equal(t, popupctl.Error, h.m.popups.ActivePopup())
	assert.True(t, testutil.ContainsLine(h.m.View(), "no route to host"))
	assert.Empty(t, h.state.History())

	h.press("esc")
	assert.Equal(t, popupctl.None, h.m.popups.ActivePopup())
	assert.Equal(t, focus.ViewPlayer, h.m.ActiveView())
}

func TestPlayer_EndedStreamRestarts(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "enter")

	h.player.Finish()
	h.send(PlaybackEndedMsg{Gen: h.m.playGen})
	assert.Equal(t, player.Stopped, h.remote.Snapshot().State)

	h.press(" ")
	assert.Len(t, h.player.PlayCalls(), 2)
	assert.Equal(t, player.Playing, h.player.State())
}

func TestPlayer_StaleEndIgnored(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "enter")
	gen := h.m.playGen
	h.press("pgup")

	h.send(PlaybackEndedMsg{Gen: gen})
	assert.Equal(t, player.Playing, h.remote.Snapshot().State)
}

func TestRemote_Commands(t *testing.T) {
	h := newHarness(t)
	h.send(mpris.CommandMsg{Command: mpris.CmdNext})
	assert.Empty(t, h.player.PlayCalls())

	h.openGuide(t)
	h.press("1", "enter")

	h.send(mpris.CommandMsg{Command: mpris.CmdNext})
	assert.Equal(t, "Sports Central", h.m.Channel().Name)
	h.send(mpris.CommandMsg{Command: mpris.CmdPrevious})
	assert.Equal(t, "Premium Movies HD", h.m.Channel().Name)

	h.send(mpris.CommandMsg{Command: mpris.CmdPause})
	assert.Equal(t, player.Paused, h.player.State())
	h.send(mpris.CommandMsg{Command: mpris.CmdPause})
	assert.Equal(t, player.Paused, h.player.State())
	h.send(mpris.CommandMsg{Command: mpris.CmdPlay})
	assert.Equal(t, player.Playing, h.player.State())

	h.send(mpris.CommandMsg{Command: mpris.CmdVolume, Volume: 40})
	assert.Equal(t, 40, h.player.Volume())
	assert.Equal(t, 40, h.remote.Snapshot().Volume)
}

func TestGrid_SearchRefocuses(t *testing.T) {
	h := newHarness(t)
	h.press("right", "enter")
	require.Equal(t, focus.ViewGrid, h.m.ActiveView())
	h.press("right", "right")
	require.Equal(t, focus.At(focus.ZoneChannel, 2), h.m.Focus())

	h.press("/", "e", "s", "p", "n")
	assert.Equal(t, "espn", h.m.nav.Grid().Query())
	assert.Equal(t, focus.At(focus.ZoneChannel, 0), h.m.Focus())

	// q types into the search instead of quitting
	h.press("q")
	assert.Equal(t, "espnq", h.m.nav.Grid().Query())
	h.press("backspace", "enter")
	assert.False(t, h.m.nav.Grid().Searching())

	h.press("enter")
	require.Equal(t, focus.ViewPlayer, h.m.ActiveView())
	assert.Equal(t, "ESPN", h.m.Channel().Name)
}

func TestGrid_DownMovesByRow(t *testing.T) {
	h := newHarness(t)
	h.press("right", "enter")
	h.press("down")
	assert.Equal(t, focus.At(focus.ZoneChannel, 4), h.m.Focus())
}

func TestHelp_CapturesKeys(t *testing.T) {
	h := newHarness(t)
	h.press("?")
	require.Equal(t, popupctl.Help, h.m.popups.ActivePopup())
	assert.True(t, testutil.ContainsLine(h.m.View(), "TV Navigation Guide"))

	h.press("right")
	assert.Equal(t, focus.At(focus.ZoneCard, 0), h.m.Focus())

	for _, msg := range testutil.Exec(h.press("esc")) {
		h.send(msg)
	}
	assert.Equal(t, popupctl.None, h.m.popups.ActivePopup())
	assert.Equal(t, focus.ViewHome, h.m.ActiveView())
}

func TestRestore_PlayerFallsBackToOrigin(t *testing.T) {
	h := newHarness(t, func(h *harness) {
		h.state.SetNavigation(&state.NavigationState{
			View:         "player",
			FocusTarget:  "control-1",
			OriginView:   "guide",
			OriginTarget: "channel-4",
		})
	})
	assert.Equal(t, focus.ViewGuide, h.m.ActiveView())
	assert.Equal(t, focus.At(focus.ZoneChannel, 4), h.m.Focus())
	assert.Empty(t, h.player.PlayCalls())
}

func TestNavigationSavedOnFocusChange(t *testing.T) {
	h := newHarness(t)
	h.press("right", "right")
	snap, ok := h.state.LastSavedNavigation()
	require.True(t, ok)
	assert.Equal(t, "home", snap.View)
	assert.Equal(t, "category-2", snap.FocusTarget)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1", "enter", "s")
	require.Equal(t, 1, h.player.StopCalls())

	msgs := testutil.Exec(h.press("q"))
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(tea.QuitMsg)
	assert.True(t, ok)
	assert.Equal(t, 2, h.player.StopCalls())

	snap, ok := h.state.LastSavedNavigation()
	require.True(t, ok)
	assert.Equal(t, "player", snap.View)
	assert.Equal(t, "guide", snap.OriginView)
}

func TestStderrShowsError(t *testing.T) {
	h := newHarness(t)
	h.send(StderrMsg{Line: "ALSA lib pcm.c: underrun"})
	assert.Equal(t, popupctl.Error, h.m.popups.ActivePopup())
}

func TestView_Home(t *testing.T) {
	h := newHarness(t)
	out := h.m.View()
	assert.True(t, testutil.ContainsLine(out, "Live TV"))
	assert.True(t, testutil.ContainsLine(out, "20:10"))
	assert.True(t, testutil.ContainsLine(out, "navigate"))
	assert.LessOrEqual(t, testutil.CountLines(out), 30)
}

func TestView_Guide(t *testing.T) {
	h := newHarness(t)
	h.openGuide(t)
	h.press("1")
	out := h.m.View()
	assert.True(t, testutil.ContainsLine(out, "Channel Guide"))
	assert.True(t, testutil.ContainsLine(out, "CH 1_"))
	assert.True(t, testutil.ContainsLine(out, "dial"))
}
