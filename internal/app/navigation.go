package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/headerbar"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

// activate resolves confirm on the focused element of the active view.
func (m *Model) activate() tea.Cmd {
	act, ok := m.nav.Focus().Activate(m.nav.Layout())
	if !ok {
		return nil
	}
	t := act.Target

	switch act.View {
	case focus.ViewHome:
		card, ok := m.nav.Home().Card(t.Index)
		if !ok {
			return nil
		}
		return m.openCard(card)

	case focus.ViewGuide:
		g := m.nav.Guide()
		if t.Zone == focus.ZoneCountry {
			co, ok := g.CountryAt(t.Index)
			if !ok || !g.SetCountry(co.Name) {
				return nil
			}
			return m.filterChanged()
		}
		return m.openPlayer(g.Channels(), t.Index)

	case focus.ViewGrid:
		return m.openPlayer(m.nav.Grid().Channels(), t.Index)

	case focus.ViewPlayer:
		c, ok := playerbar.ControlAt(t.Index)
		if !ok {
			return nil
		}
		return m.runControl(c)

	case focus.ViewLoading:
	}
	return nil
}

// openCard opens the screen behind a home card.
func (m *Model) openCard(card catalog.Card) tea.Cmd {
	m.dial.Cancel()
	switch card.Dest {
	case catalog.ToGuide:
		m.nav.Enter(focus.ViewGuide, focus.None)
	case catalog.ToGrid:
		m.nav.Grid().Open(card)
		m.nav.Enter(focus.ViewGrid, focus.None)
	}
	return nil
}

// back leaves the active view. Leaving the player stops playback.
func (m *Model) back() tea.Cmd {
	m.dial.Cancel()
	if m.nav.View() == focus.ViewPlayer {
		m.closePlayer()
	}
	m.nav.Back()
	return nil
}

// filterChanged refocuses the first channel after the collection of the
// active view was refiltered. Display numbers changed, so a number being
// dialled is dropped.
func (m *Model) filterChanged() tea.Cmd {
	m.dial.Cancel()
	cmd := m.nav.Reset()
	m.saveNavigation()
	return cmd
}

// focusedChannel returns the channel under the focus in the guide or grid.
func (m *Model) focusedChannel() (catalog.Channel, bool) {
	t := m.nav.Current()
	if t.Zone != focus.ZoneChannel {
		return catalog.Channel{}, false
	}
	switch m.nav.View() {
	case focus.ViewGuide:
		return m.nav.Guide().Channel(t.Index)
	case focus.ViewGrid:
		return m.nav.Grid().Channel(t.Index)
	case focus.ViewLoading, focus.ViewHome, focus.ViewPlayer:
	}
	return catalog.Channel{}, false
}

func (m *Model) quit() tea.Cmd {
	m.dial.Cancel()
	m.nav.CancelScrolling()
	m.nav.Screen().Cancel()
	if m.channel != nil {
		m.player.Stop()
		m.playGen++
	}
	if m.nav.View() != focus.ViewLoading {
		m.saveNavigation()
	}
	_ = m.notifier.Dismiss()
	return tea.Quit
}

// resize lays the screens out for the terminal size.
func (m *Model) resize() {
	w, h := m.width, m.height
	m.loading.SetSize(w, h)
	m.popups.SetSize(w, h)

	body := max(h-headerbar.Height-ui.FooterHeight, 0)
	m.nav.Home().SetSize(w, body)
	m.nav.Guide().SetSize(w, body)
	m.nav.Grid().SetSize(w, body)
	if m.nav.Screen().Fullscreen() {
		m.nav.Screen().SetSize(w, h)
	} else {
		m.nav.Screen().SetSize(w, body)
	}

	// the grid's column count follows the width
	m.nav.Refresh()
}
