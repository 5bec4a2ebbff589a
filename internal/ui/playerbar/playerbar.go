// Package playerbar renders the player screen: the channel being watched,
// the programme progress and the control row that hides while playing.
package playerbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
)

// AutoHide is how long the controls stay up without input while playing.
const AutoHide = 3 * time.Second

// Control is a button of the control row.
type Control int

const (
	ControlBack Control = iota
	ControlPlayPause
	ControlMute
	ControlVolumeDown
	ControlVolumeUp
	ControlFullscreen
)

// Controls lists the control row in display order.
var Controls = []Control{
	ControlBack,
	ControlPlayPause,
	ControlMute,
	ControlVolumeDown,
	ControlVolumeUp,
	ControlFullscreen,
}

// ControlAt returns the control at index i of the row.
func ControlAt(i int) (Control, bool) {
	if i < 0 || i >= len(Controls) {
		return 0, false
	}
	return Controls[i], true
}

// HideMsg fires when the auto-hide delay armed by Show elapses.
type HideMsg struct {
	Version uint64
}

// Model tracks control visibility and fullscreen.
type Model struct {
	ui.Base
	visible    bool
	fullscreen bool
	version    uint64
}

// New returns a player screen with the controls shown.
func New() *Model {
	return &Model{visible: true}
}

// Layout is the single control row.
func Layout() focus.Layout {
	return focus.NewLayout(focus.Region{
		Zone:  focus.ZoneControl,
		Axis:  focus.Horizontal,
		Shape: focus.List(len(Controls)),
	})
}

// Visible reports whether the control row is shown.
func (m *Model) Visible() bool {
	return m.visible
}

// Fullscreen reports whether the screen hides the header and info.
func (m *Model) Fullscreen() bool {
	return m.fullscreen
}

// ToggleFullscreen flips fullscreen and returns the new value.
func (m *Model) ToggleFullscreen() bool {
	m.fullscreen = !m.fullscreen
	return m.fullscreen
}

// Reset shows the controls and leaves fullscreen, as on a fresh player.
func (m *Model) Reset() {
	m.visible = true
	m.fullscreen = false
	m.version++
}

// Show reveals the controls. While playing it arms the auto-hide timer;
// every call supersedes the previous timer.
func (m *Model) Show(playing bool) tea.Cmd {
	m.visible = true
	m.version++
	if !playing {
		return nil
	}
	v := m.version
	return tea.Tick(AutoHide, func(time.Time) tea.Msg {
		return HideMsg{Version: v}
	})
}

// Hide handles a HideMsg. Stale timers are ignored. It reports whether the
// controls were hidden.
func (m *Model) Hide(msg HideMsg) bool {
	if msg.Version != m.version || !m.visible {
		return false
	}
	m.visible = false
	return true
}

// Cancel drops the pending auto-hide timer.
func (m *Model) Cancel() {
	m.version++
}
