package app

import (
	"log"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/errmsg"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/mpris"
	"github.com/llehouerou/sombox/internal/notify"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

const volumeStep = 5

// openPlayer shows channel i of list on the player screen and starts it.
// list becomes the collection channel up/down steps through.
func (m *Model) openPlayer(list []catalog.Channel, i int) tea.Cmd {
	if i < 0 || i >= len(list) {
		return nil
	}
	m.dial.Cancel()
	m.zap = slices.Clone(list)
	m.nav.Screen().Reset()
	m.nav.Enter(focus.ViewPlayer, focus.None)
	return m.play(i)
}

// closePlayer stops playback when the player screen is left.
func (m *Model) closePlayer() {
	m.nav.Screen().Cancel()
	m.player.Stop()
	m.playGen++
	m.channel = nil
	m.zap = nil
	m.publish()
}

// play starts channel i of the zap list.
func (m *Model) play(i int) tea.Cmd {
	ch := m.zap[i]
	m.zapIndex = i
	m.channel = &ch
	m.playGen++

	media := player.Media{URL: ch.StreamURL, Title: ch.Name, Radio: ch.IsRadio()}
	if err := m.player.Play(media); err != nil {
		m.showError(errmsg.OpPlaybackStart, err)
		m.publish()
		return m.nav.Screen().Show(false)
	}

	now := m.now()
	if err := m.state.RecordWatch(ch.ID, now); err != nil {
		log.Printf("%s: %v", errmsg.OpHistoryRecord, err)
	}
	m.nav.Home().SetLastWatched(&ch, now)
	if err := m.notifier.Send(notify.Tuned(ch, now)); err != nil {
		log.Printf("%s: %v", errmsg.OpNotify, err)
	}
	m.publish()
	return tea.Batch(
		watchDone(m.player.Done(), m.playGen),
		m.nav.Screen().Show(true),
	)
}

// zapBy switches to the channel delta steps away in the zap list, wrapping
// at both ends.
func (m *Model) zapBy(delta int) tea.Cmd {
	n := len(m.zap)
	if m.channel == nil || n < 2 {
		return nil
	}
	i := ((m.zapIndex+delta)%n + n) % n
	return m.play(i)
}

// togglePlayback pauses or resumes. A stream that ended is started again.
func (m *Model) togglePlayback() tea.Cmd {
	if m.channel == nil {
		return nil
	}
	if m.player.State() == player.Stopped {
		return m.play(m.zapIndex)
	}
	if err := m.player.Toggle(); err != nil {
		m.showError(errmsg.OpPlaybackToggle, err)
		return nil
	}
	m.publish()
	playing := m.player.State() == player.Playing
	show := m.nav.Screen().Show(playing)
	if !playing {
		return show
	}
	// resuming a live stream may rejoin it with a new process
	m.playGen++
	return tea.Batch(show, watchDone(m.player.Done(), m.playGen))
}

func (m *Model) stopPlayback() {
	if m.channel == nil {
		return
	}
	m.player.Stop()
	m.playGen++
	m.nav.Screen().Show(false)
	m.publish()
}

func (m *Model) handlePlaybackEnded(msg PlaybackEndedMsg) tea.Cmd {
	if msg.Gen != m.playGen || m.player.State() == player.Paused {
		return nil
	}
	m.nav.Screen().Show(false)
	m.publish()
	return nil
}

func (m *Model) toggleMute() {
	m.player.SetMuted(!m.player.Muted())
	m.saveVolume()
	m.publish()
}

func (m *Model) changeVolume(delta int) {
	m.setVolume(m.player.Volume() + delta)
}

func (m *Model) setVolume(level int) {
	m.player.SetVolume(level)
	m.saveVolume()
	m.publish()
}

func (m *Model) toggleFullscreen() {
	m.nav.Screen().ToggleFullscreen()
	m.resize()
}

// handleRemote applies a command from the desktop media remote.
func (m *Model) handleRemote(msg mpris.CommandMsg) tea.Cmd {
	log.Printf("remote: %s", msg.Command)
	if m.channel == nil {
		return nil
	}
	switch msg.Command {
	case mpris.CmdPlay:
		if m.player.State() != player.Playing {
			return m.togglePlayback()
		}
	case mpris.CmdPause:
		if m.player.State() == player.Playing {
			return m.togglePlayback()
		}
	case mpris.CmdPlayPause:
		return m.togglePlayback()
	case mpris.CmdStop:
		m.stopPlayback()
	case mpris.CmdNext:
		return m.zapBy(1)
	case mpris.CmdPrevious:
		return m.zapBy(-1)
	case mpris.CmdVolume:
		m.setVolume(msg.Volume)
	}
	return nil
}

// publish hands the player state to the media remote.
func (m *Model) publish() {
	if m.remote == nil {
		return
	}
	snap := mpris.Snapshot{
		State:    m.player.State(),
		Volume:   m.player.Volume(),
		Position: m.player.Position(),
		CanZap:   m.channel != nil && len(m.zap) > 1,
	}
	if m.channel != nil {
		snap.Channel = m.channel
		snap.Program = catalog.NowPlaying(*m.channel, m.clock)
	}
	m.remote.Update(snap)
}

// screenState collects what the player screen shows.
func (m *Model) screenState() playerbar.State {
	if m.channel == nil {
		return playerbar.State{Now: m.clock, Volume: m.player.Volume(), Muted: m.player.Muted()}
	}
	return playerbar.NewState(m.player, *m.channel, m.zapIndex+1, len(m.zap), m.clock)
}
