package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/app/handler"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/keymap"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

var directions = map[keymap.Action]focus.Direction{
	keymap.ActionUp:    focus.Up,
	keymap.ActionDown:  focus.Down,
	keymap.ActionLeft:  focus.Left,
	keymap.ActionRight: focus.Right,
}

// contexts returns the binding contexts of view v, most specific first.
func contexts(v focus.View) []string {
	switch v {
	case focus.ViewGuide:
		return []string{keymap.ContextGuide, keymap.ContextNav}
	case focus.ViewGrid:
		return []string{keymap.ContextGrid, keymap.ContextNav}
	case focus.ViewPlayer:
		return []string{keymap.ContextPlayer, keymap.ContextNav}
	case focus.ViewHome:
		return []string{keymap.ContextNav}
	case focus.ViewLoading:
	}
	return nil
}

// handleKey routes a key press. Open popups capture every key, then the
// search field while it is open, then the bindings of the active view.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	view := m.nav.View()
	if view == focus.ViewLoading {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return cmd
	}

	if handled, cmd := m.popups.HandleKey(msg); handled {
		return cmd
	}

	// Any key brings the player controls back and rearms the auto-hide.
	var show tea.Cmd
	if view == focus.ViewPlayer {
		show = m.nav.Screen().Show(m.player.State() == player.Playing)
	}

	if view == focus.ViewGrid && m.nav.Grid().Searching() {
		return m.updateGrid(msg)
	}

	key := msg.String()
	k := handler.Key{
		String: key,
		Action: m.keys.Resolve(key, contexts(view)...),
		Runes:  msg.Runes,
	}
	_, cmd := handler.Chain(k,
		m.handleGlobalKey,
		m.handleDigitKey,
		m.handleDirectionKey,
		m.handleConfirmKey,
		m.handleGuideKey,
		m.handleGridKey,
		m.handlePlayerKey,
	)
	return tea.Batch(show, cmd)
}

func (m *Model) handleGlobalKey(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionHelp:
		return handler.Handled(m.popups.ShowHelp())
	case keymap.ActionBack:
		return handler.Handled(m.back())
	}
	return handler.NotHandled
}

// handleDigitKey dials a channel number in the guide. A matching number
// moves focus to that channel as soon as it is typed.
func (m *Model) handleDigitKey(k handler.Key) handler.Result {
	d, ok := k.Digit()
	if !ok || m.nav.View() != focus.ViewGuide {
		return handler.NotHandled
	}
	idx, timer := m.dial.Digit(d, len(m.nav.Guide().Channels()))
	if idx < 0 {
		return handler.Handled(timer)
	}
	return handler.Handled(tea.Batch(timer, m.nav.FocusAt(focus.At(focus.ZoneChannel, idx))))
}

func (m *Model) handleDirectionKey(k handler.Key) handler.Result {
	dir, ok := directions[k.Action]
	if !ok {
		return handler.NotHandled
	}
	_, cmd := m.nav.Move(dir)
	return handler.Handled(cmd)
}

func (m *Model) handleConfirmKey(k handler.Key) handler.Result {
	if k.Action != keymap.ActionConfirm {
		return handler.NotHandled
	}
	return handler.Handled(m.activate())
}

func (m *Model) handleGuideKey(k handler.Key) handler.Result {
	if m.nav.View() != focus.ViewGuide {
		return handler.NotHandled
	}
	g := m.nav.Guide()
	switch k.Action {
	case keymap.ActionFavoritesOnly:
		g.ToggleFavoritesOnly()
		return handler.Handled(m.filterChanged())
	case keymap.ActionCycleCategory:
		g.CycleCategory()
		return handler.Handled(m.filterChanged())
	case keymap.ActionStar:
		if ch, ok := m.focusedChannel(); ok {
			m.toggleFavorite(ch.ID)
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleGridKey(k handler.Key) handler.Result {
	if m.nav.View() != focus.ViewGrid {
		return handler.NotHandled
	}
	switch k.Action {
	case keymap.ActionSearch:
		return handler.Handled(m.nav.Grid().StartSearch())
	case keymap.ActionStar:
		if ch, ok := m.focusedChannel(); ok {
			m.toggleFavorite(ch.ID)
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handlePlayerKey(k handler.Key) handler.Result {
	if m.nav.View() != focus.ViewPlayer {
		return handler.NotHandled
	}
	switch k.Action {
	case keymap.ActionPlayPause:
		return handler.Handled(m.togglePlayback())
	case keymap.ActionStop:
		m.stopPlayback()
		return handler.HandledNoCmd
	case keymap.ActionMute:
		m.toggleMute()
		return handler.HandledNoCmd
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
		return handler.HandledNoCmd
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
		return handler.HandledNoCmd
	case keymap.ActionFullscreen:
		m.toggleFullscreen()
		return handler.HandledNoCmd
	case keymap.ActionChannelUp:
		return handler.Handled(m.zapBy(1))
	case keymap.ActionChannelDown:
		return handler.Handled(m.zapBy(-1))
	}
	return handler.NotHandled
}

// runControl performs the player control button c.
func (m *Model) runControl(c playerbar.Control) tea.Cmd {
	switch c {
	case playerbar.ControlBack:
		return m.back()
	case playerbar.ControlPlayPause:
		return m.togglePlayback()
	case playerbar.ControlMute:
		m.toggleMute()
	case playerbar.ControlVolumeDown:
		m.changeVolume(-volumeStep)
	case playerbar.ControlVolumeUp:
		m.changeVolume(volumeStep)
	case playerbar.ControlFullscreen:
		m.toggleFullscreen()
	default:
		log.Printf("unknown player control %d", c)
	}
	return nil
}
