package app

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui/headerbar"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

type hint struct {
	keys, label string
}

var (
	navHints    = []hint{{"↑↓←→", "navigate"}, {"enter", "select"}, {"esc", "back"}, {"?", "help"}, {"q", "quit"}}
	guideHints  = []hint{{"0-9", "dial"}, {"f", "favorites"}, {"c", "category"}, {"*", "star"}}
	gridHints   = []hint{{"/", "search"}, {"*", "star"}}
	playerHints = []hint{{"space", "play/pause"}, {"m", "mute"}, {"+/-", "volume"}, {"f", "fullscreen"}, {"pgup/pgdn", "channel"}, {"esc", "back"}}
	searchHints = []hint{{"enter", "done"}, {"esc", "clear"}}
)

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	view := m.nav.View()
	if view == focus.ViewLoading {
		return m.loading.View()
	}

	var sections []string
	fullscreen := view == focus.ViewPlayer && m.nav.Screen().Fullscreen()
	body := m.height - 1
	if !fullscreen {
		sections = append(sections, headerbar.Render(m.title(), m.clock, headerbar.DefaultWeather, m.width))
		body -= headerbar.Height
	}
	sections = append(sections,
		fitHeight(m.renderBody(), max(body, 0)),
		m.renderFooter(),
	)
	return m.popups.RenderOverlay(strings.Join(sections, "\n"))
}

func (m Model) title() string {
	switch m.nav.View() {
	case focus.ViewGuide:
		return "Channel Guide"
	case focus.ViewGrid:
		return m.nav.Grid().Title()
	case focus.ViewPlayer:
		if m.channel != nil {
			return m.channel.Name
		}
	case focus.ViewLoading, focus.ViewHome:
	}
	return ""
}

func (m Model) renderBody() string {
	t := m.nav.Current()
	switch m.nav.View() {
	case focus.ViewHome:
		return m.nav.Home().View(t, m.clock)
	case focus.ViewGuide:
		return m.nav.Guide().View(t, m.clock, m.dial.Digits())
	case focus.ViewGrid:
		return m.nav.Grid().View(t)
	case focus.ViewPlayer:
		return m.nav.Screen().View(m.screenState(), t)
	case focus.ViewLoading:
	}
	return ""
}

func (m Model) renderFooter() string {
	var hints []hint
	switch m.nav.View() {
	case focus.ViewGuide:
		hints = slices.Concat(guideHints, navHints)
	case focus.ViewGrid:
		if m.nav.Grid().Searching() {
			hints = searchHints
		} else {
			hints = slices.Concat(gridHints, navHints)
		}
	case focus.ViewPlayer:
		hints = playerHints
	case focus.ViewHome, focus.ViewLoading:
		hints = navHints
	}

	s := styles.T().S()
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = s.Key.Render(h.keys) + " " + s.Muted.Render(h.label)
	}
	line := " " + strings.Join(parts, s.Subtle.Render("  ·  "))
	return ansi.Truncate(line, m.width, "…")
}

// fitHeight pads or cuts content to exactly height lines.
func fitHeight(content string, height int) string {
	if height == 0 {
		return ""
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(content)
}
