package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/app/popupctl"
	"github.com/llehouerou/sombox/internal/dial"
	"github.com/llehouerou/sombox/internal/errmsg"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/mpris"
	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/grid"
	"github.com/llehouerou/sombox/internal/ui/guide"
	"github.com/llehouerou/sombox/internal/ui/helpbindings"
	"github.com/llehouerou/sombox/internal/ui/loading"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
	"github.com/llehouerou/sombox/internal/ui/scroll"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case loading.TickMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case loading.DoneMsg:
		return m, m.finishLoading()

	case ClockTickMsg:
		m.clock = time.Time(msg)
		m.publish()
		return m, clockTick(m.clock)

	case dial.ExpiredMsg:
		m.dial.Expire(msg.Version)
		return m, nil

	case playerbar.HideMsg:
		m.nav.Screen().Hide(msg)
		return m, nil

	case scroll.AnimFrameMsg, scroll.SettleMsg:
		return m, tea.Batch(m.nav.Guide().Update(msg), m.updateGrid(msg))

	case action.Msg:
		return m, m.handleAction(msg)

	case PlaybackEndedMsg:
		return m, m.handlePlaybackEnded(msg)

	case mpris.CommandMsg:
		return m, m.handleRemote(msg)

	case StderrMsg:
		log.Printf("stderr: %s", msg.Line)
		m.popups.ShowError(msg.Line)
		return m, m.listenStderr()
	}

	// Anything else belongs to the search field while it is open.
	if m.nav.View() == focus.ViewGrid && m.nav.Grid().Searching() {
		return m, m.updateGrid(msg)
	}
	return m, nil
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
	case guide.FocusNearest:
		// Only follow scrolling of the zone the focus is in; a settle from
		// the other panel must not steal focus.
		cur := m.nav.Current()
		if m.nav.View() == focus.ViewGuide && (cur.IsNone() || cur.Zone == a.Zone) {
			m.nav.FocusQuiet(focus.At(a.Zone, a.Index))
		}
	case grid.FocusRow:
		if m.nav.View() == focus.ViewGrid {
			i := m.nav.Grid().NearestIn(a.Row, m.nav.Current())
			m.nav.FocusQuiet(focus.At(focus.ZoneChannel, i))
		}
	}
	return nil
}

// updateGrid forwards msg to the grid and refocuses when the search query
// changed the collection.
func (m *Model) updateGrid(msg tea.Msg) tea.Cmd {
	cmd, changed := m.nav.Grid().Update(msg)
	if !changed || m.nav.View() != focus.ViewGrid {
		return cmd
	}
	return tea.Batch(cmd, m.filterChanged())
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.popups.ActivePopup() != popupctl.None {
		return nil
	}
	switch m.nav.View() {
	case focus.ViewGuide:
		return m.nav.Guide().Update(msg)
	case focus.ViewGrid:
		return m.updateGrid(msg)
	case focus.ViewLoading, focus.ViewHome, focus.ViewPlayer:
	}
	return nil
}

func (m *Model) finishLoading() tea.Cmd {
	snap, err := m.state.GetNavigation()
	if err != nil {
		m.showError(errmsg.OpSessionLoad, err)
		snap = nil
	}
	m.nav.Restore(snap)
	return nil
}
