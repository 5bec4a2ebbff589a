package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// State holds everything needed to render the player screen.
type State struct {
	Channel  catalog.Channel
	Number   int // 1-based position in the collection the player was opened from
	Total    int
	Status   player.State
	Position time.Duration // time since the stream was joined
	Volume   int
	Muted    bool
	Now      time.Time
}

// NewState reads the backend into a State for ch.
func NewState(p player.Interface, ch catalog.Channel, number, total int, now time.Time) State {
	return State{
		Channel:  ch,
		Number:   number,
		Total:    total,
		Status:   p.State(),
		Position: p.Position(),
		Volume:   p.Volume(),
		Muted:    p.Muted(),
		Now:      now,
	}
}

// Label returns the button text of c for the given state.
func (c Control) Label(s State) string {
	switch c {
	case ControlBack:
		return "◀ Back"
	case ControlPlayPause:
		if s.Status == player.Playing {
			return "⏸ Pause"
		}
		return "▶ Play"
	case ControlMute:
		if s.Muted {
			return "♪ Unmute"
		}
		return "♪ Mute"
	case ControlVolumeDown:
		return "− Vol"
	case ControlVolumeUp:
		return "+ Vol"
	case ControlFullscreen:
		return "⛶ Full"
	}
	return ""
}

// View renders the screen body. target is the focused control.
func (m *Model) View(s State, target focus.Target) string {
	width, height := m.Size()
	if !m.Sized() {
		return ""
	}

	var bottom []string
	if !m.fullscreen {
		p := catalog.NowPlaying(s.Channel, s.Now)
		bottom = append(bottom, render.Center(RenderProgress(p, s.Now, min(width-4, 80)), width))
	}
	if m.visible {
		bottom = append(bottom, "", m.renderControls(s, target, width))
	}

	screenH := max(height-len(bottom), 0)
	screen := m.renderScreen(s, width, screenH)
	if len(bottom) == 0 {
		return screen
	}
	return screen + "\n" + strings.Join(bottom, "\n")
}

func (m *Model) renderScreen(s State, width, height int) string {
	st := styles.T().S()
	t := styles.T()
	ch := s.Channel

	badge := styles.Gradient(" "+ch.Initials()+" ", true, t.Primary, t.Secondary, t.Accent)
	lines := []string{badge, "", st.Title.Render(render.Truncate(ch.Name, width-4))}

	if !m.fullscreen {
		p := catalog.NowPlaying(ch, s.Now)
		info := ch.Category
		if s.Total > 0 {
			info = fmt.Sprintf("CH %d/%d · %s", s.Number, s.Total, ch.Category)
		}
		lines = append(lines,
			st.Muted.Render(render.Truncate(info, width-4)),
			"",
			st.Base.Render(render.Truncate(p.Title, width-4)),
		)
	}
	lines = append(lines, "", statusLine(s))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func statusLine(s State) string {
	st := styles.T().S()
	var status string
	switch s.Status {
	case player.Playing:
		status = st.Live.Render("● LIVE")
		if s.Position > 0 {
			status += st.Muted.Render("  " + formatDuration(s.Position))
		}
	case player.Paused:
		status = st.Warning.Render("⏸ Paused")
	default:
		status = st.Subtle.Render("■ Stopped")
	}
	if s.Channel.IsRadio() {
		status = st.Muted.Render("♪ Radio  ") + status
	}
	return status + "   " + RenderVolume(s.Volume, s.Muted)
}

func (m *Model) renderControls(s State, target focus.Target, width int) string {
	t := styles.T()
	st := t.S()
	buttons := make([]string, 0, len(Controls))
	for i, c := range Controls {
		label := c.Label(s)
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.FgMuted)
		if target.Is(focus.ZoneControl, i) {
			style = style.Background(t.BgFocus).Foreground(t.Primary).Bold(true)
		}
		buttons = append(buttons, style.Render(label))
	}
	row := strings.Join(buttons, st.Subtle.Render("│"))
	if lipgloss.Width(row) > width {
		row = clip(row, width)
	}
	return render.Center(row, width)
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func clip(s string, width int) string {
	return ansi.Truncate(s, max(width, 0), "…")
}
