package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// View renders the title line, the search line and the visible card rows.
func (m *Model) View(target focus.Target) string {
	width := m.Width()
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	count := fmt.Sprintf("%d channels", len(m.channels))
	if len(m.channels) == 1 {
		count = "1 channel"
	}
	lines := []string{render.Row(s.Title.Render(m.Title()), s.Muted.Render(count), width)}

	switch {
	case m.search.Active():
		lines = append(lines, m.search.View(width))
	case m.search.Value() != "":
		lines = append(lines, s.Key.Render("/ ")+s.Base.Render(m.search.Value())+
			s.Subtle.Render("  (/ edit · esc clear)"))
	default:
		lines = append(lines, s.Subtle.Render("/ search · * star · enter watch"))
	}

	if len(m.channels) == 0 {
		lines = append(lines, "", render.Center(s.Muted.Render("No channels found"), width))
		if q := m.search.Value(); q != "" {
			lines = append(lines, render.Center(s.Subtle.Render(fmt.Sprintf("Nothing matches %q", q)), width))
		}
		return strings.Join(lines, "\n")
	}

	cols := m.Columns()
	cardW := width / cols
	var content []string
	for start := 0; start < len(m.channels); start += cols {
		end := min(start+cols, len(m.channels))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCard(m.channels[i], cardW, target.Is(focus.ZoneChannel, i)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		content = append(content, strings.Split(row, "\n")...)
	}
	lines = append(lines, m.rows.Window(content)...)
	return strings.Join(lines, "\n")
}

func (m *Model) renderCard(ch catalog.Channel, width int, focused bool) string {
	s := styles.T().S()
	inner := max(width-4, 1)

	name := render.Truncate(ch.Name, inner)
	title := s.Title.Render(name)
	if focused {
		title = s.Focus.Render(name)
	}
	if ch.Live {
		title = render.Row(title, s.Live.Render("● LIVE"), inner)
	}
	if m.cat.IsFavorite(ch.ID) {
		title = clip(title, inner-2) + " " + s.Star.Render("★")
	}

	meta := s.Muted.Render(render.Truncate(ch.Category+" · "+ch.Country, inner))
	desc := s.Subtle.Render(render.Truncate(ch.Description, inner))
	stats := s.Star.Render(fmt.Sprintf("★ %.1f", ch.Rating))
	if ch.Viewers > 0 {
		stats += s.Muted.Render("  " + render.Viewers(ch.Viewers))
	}
	var badges []string
	for _, b := range ch.Badges {
		badges = append(badges, s.Badge.Render(b))
	}

	body := []string{
		clip(title, inner),
		meta,
		desc,
		clip(stats, inner),
		clip(strings.Join(badges, " "), inner),
	}
	return styles.CardStyle(focused, width).
		Height(ui.CardHeight - ui.BorderHeight).
		Render(strings.Join(body, "\n"))
}

func clip(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, max(width, 0), "…")
}
