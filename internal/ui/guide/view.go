package guide

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// View renders the three panels. dial holds the digits typed so far.
func (m *Model) View(target focus.Target, now time.Time, dial string) string {
	if !m.Sized() {
		return ""
	}
	countryW, channelW, previewW := m.panelWidths()

	panels := []string{
		m.renderCountries(target, countryW),
		m.renderChannels(target, channelW, dial),
	}
	if previewW > 0 {
		panels = append(panels, m.renderPreview(target, previewW, now))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m *Model) panel(focused bool, width int, title string, body []string) string {
	inner := max(width-2, 1)
	s := styles.T().S()
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, title, s.Subtle.Render(render.Separator(inner)))
	lines = append(lines, body...)
	for len(lines) < m.Height()-2 {
		lines = append(lines, "")
	}
	lines = lines[:max(m.Height()-2, 0)]
	for i, l := range lines {
		lines[i] = render.Pad(clip(l, inner), inner)
	}
	return styles.PanelStyle(focused).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderCountries(target focus.Target, width int) string {
	s := styles.T().S()
	inner := max(width-2, 1)

	lines := make([]string, 0, len(m.countries))
	for i, co := range m.countries {
		focused := target.Is(focus.ZoneCountry, i)
		marker := "  "
		if co.Name == m.country {
			marker = s.Focus.Render("● ")
		}
		count := strconv.Itoa(m.counts[i])
		name := render.Truncate(co.Name, max(inner-lipgloss.Width(count)-6, 1))
		left := marker + s.Number.Render(render.Fit(co.Code, 2)) + " " + name
		line := render.Row(left, s.Muted.Render(count), inner)
		if focused {
			line = lipgloss.NewStyle().Background(styles.T().BgFocus).Render(render.Pad(line, inner))
		}
		lines = append(lines, line)
	}

	title := s.Title.Render("Countries")
	return m.panel(target.Zone == focus.ZoneCountry, width, title, m.countryView.Window(lines))
}

func (m *Model) renderChannels(target focus.Target, width int, dial string) string {
	s := styles.T().S()
	inner := max(width-2, 1)

	title := s.Title.Render(m.channelTitle())
	if dial != "" {
		title = render.Row(title, s.Key.Render("CH "+dial+"_"), inner)
	}

	if len(m.channels) == 0 {
		msg := "No channels match this filter"
		hint := ""
		if m.favoritesOnly {
			hint = "Press f to show all channels"
		}
		body := []string{"", render.Center(s.Muted.Render(msg), inner)}
		if hint != "" {
			body = append(body, render.Center(s.Subtle.Render(hint), inner))
		}
		return m.panel(target.Zone == focus.ZoneChannel, width, title, body)
	}

	numW := len(strconv.Itoa(len(m.channels)))
	lines := make([]string, 0, len(m.channels)*(channelItemHeight+channelGap))
	for i, ch := range m.channels {
		if i > 0 {
			for range channelGap {
				lines = append(lines, "")
			}
		}
		lines = append(lines, m.channelLines(ch, i, numW, inner, target.Is(focus.ZoneChannel, i))...)
	}
	return m.panel(target.Zone == focus.ZoneChannel, width, title, m.channelView.Window(lines))
}

func (m *Model) channelTitle() string {
	parts := []string{"Channels"}
	if m.country != catalog.AllCountries {
		parts = append(parts, m.country)
	}
	if m.category != "" {
		parts = append(parts, m.category)
	}
	if m.favoritesOnly {
		parts = append(parts, "★ only")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) channelLines(ch catalog.Channel, i, numW, inner int, focused bool) []string {
	s := styles.T().S()

	marker := "  "
	name := s.Base.Render(render.Sanitize(ch.Name))
	if focused {
		marker = s.Focus.Render("▌ ")
		name = s.Focus.Render(render.Sanitize(ch.Name))
	}
	if m.cat.IsFavorite(ch.ID) {
		name += " " + s.Star.Render("★")
	}
	num := s.Number.Render(fmt.Sprintf("%*d", numW, i+1))

	var badges []string
	for _, b := range ch.Badges {
		badges = append(badges, s.Badge.Render(b))
	}
	right := strings.Join(badges, " ")
	left := marker + num + "  " + name
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > inner {
		right = ""
	}
	first := render.Row(left, right, inner)
	if right == "" {
		first = clip(left, inner)
	}

	detail := ch.Category
	if ch.Views > 0 {
		detail += " · " + render.Views(ch.Views)
	}
	if ch.IsRadio() {
		detail += " · radio"
	}
	indent := strings.Repeat(" ", numW+4)
	second := indent + s.Muted.Render(render.Truncate(detail, max(inner-len(indent), 1)))
	if focused {
		second = s.Focus.Render("▌ ") + second[2:]
	}
	return []string{first, second}
}

func (m *Model) previewChannel(target focus.Target) (catalog.Channel, bool) {
	if target.Zone == focus.ZoneChannel {
		if ch, ok := m.Channel(target.Index); ok {
			return ch, true
		}
	}
	return m.Channel(0)
}

func (m *Model) renderPreview(target focus.Target, width int, now time.Time) string {
	s := styles.T().S()
	inner := max(width-2, 1)

	ch, ok := m.previewChannel(target)
	if !ok {
		return m.panel(false, width, s.Title.Render("Preview"), nil)
	}

	var body []string
	body = append(body,
		s.Title.Render(render.Truncate(ch.Name, inner)),
		s.Muted.Render(render.Truncate(ch.Category+" · "+ch.Country, inner)),
	)
	stats := s.Star.Render(fmt.Sprintf("★ %.1f", ch.Rating))
	if ch.Viewers > 0 {
		stats += s.Muted.Render("  " + render.Viewers(ch.Viewers))
	}
	body = append(body, stats, "")

	p := catalog.NowPlaying(ch, now)
	live := s.Subtle.Render("NOW PLAYING")
	if ch.Live {
		live = s.Live.Render("● LIVE") + "  " + live
	}
	body = append(body,
		live,
		s.Base.Render(render.Truncate(p.Title, inner)),
		s.Muted.Render(render.Clock(p.Start)+" – "+render.Clock(p.End)),
		render.Bar(p.Progress(now), inner),
		s.Subtle.Render(render.Remaining(p.Remaining(now))),
	)
	if ch.Description != "" {
		desc := lipgloss.NewStyle().Width(inner).Render(render.Sanitize(ch.Description))
		body = append(body, "")
		body = append(body, strings.Split(s.Muted.Render(desc), "\n")...)
	}
	body = append(body, "", s.Subtle.Render(render.Truncate("enter watch · * star", inner)))

	return m.panel(false, width, s.Title.Render("Preview"), body)
}

// clip cuts a styled line to width columns.
func clip(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
