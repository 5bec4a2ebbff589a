// Package home renders the home menu: category cards in rows of 4 and 5,
// featured live channels and the last watched channel.
package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// FeaturedCount is how many featured channels the menu lists.
const FeaturedCount = 3

// Model holds the menu cards and what the footer shows.
type Model struct {
	ui.Base
	cards    []catalog.Card
	rows     []int
	counts   map[string]int
	featured []catalog.Channel

	last   *catalog.Channel
	lastAt time.Time
}

// New returns a menu of the given cards laid out in rows of rows[i] cards.
func New(cards []catalog.Card, rows []int) *Model {
	return &Model{
		cards:  cards,
		rows:   rows,
		counts: make(map[string]int),
	}
}

// Layout is a single card zone made of uneven horizontal rows.
func (m *Model) Layout() focus.Layout {
	return focus.NewLayout(focus.Region{
		Zone:  focus.ZoneCard,
		Axis:  focus.Horizontal,
		Shape: focus.RowsOf(m.rows...),
	})
}

// Card returns card i.
func (m *Model) Card(i int) (catalog.Card, bool) {
	if i < 0 || i >= len(m.cards) {
		return catalog.Card{}, false
	}
	return m.cards[i], true
}

// Cards returns the menu cards in display order.
func (m *Model) Cards() []catalog.Card {
	return m.cards
}

// SetCount sets the channel count shown on a card.
func (m *Model) SetCount(cardID string, n int) {
	m.counts[cardID] = n
}

// SetFeatured sets the channels of the featured line.
func (m *Model) SetFeatured(channels []catalog.Channel) {
	m.featured = channels
}

// SetLastWatched sets the footer channel. A nil channel hides it.
func (m *Model) SetLastWatched(ch *catalog.Channel, at time.Time) {
	m.last = ch
	m.lastAt = at
}

// View renders the menu body. target is the focused card.
func (m *Model) View(target focus.Target, now time.Time) string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	var sections []string
	sections = append(sections, "", render.Center(s.Muted.Render("What would you like to watch?"), width), "")

	start := 0
	for _, n := range m.rows {
		end := min(start+n, len(m.cards))
		if start >= end {
			break
		}
		sections = append(sections, m.renderRow(start, end, n, target))
		start = end
	}

	if f := m.renderFeatured(now, width); f != "" {
		sections = append(sections, "", f)
	}
	if m.last != nil {
		line := s.Subtle.Render("Last watched  ") +
			s.Title.Render(render.Sanitize(m.last.Name)) +
			s.Muted.Render(" · "+render.Ago(m.lastAt, now))
		sections = append(sections, "", render.Center(line, width))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if h := m.Height(); h > 0 {
		body = lipgloss.NewStyle().MaxHeight(h).Render(body)
	}
	return body
}

func (m *Model) renderRow(start, end, n int, target focus.Target) string {
	width := m.Width() / n
	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cells = append(cells, m.renderCard(i, width, target.Is(focus.ZoneCard, i)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return render.Center(row, m.Width())
}

func (m *Model) renderCard(i, width int, focused bool) string {
	s := styles.T().S()
	c := m.cards[i]
	inner := max(width-4, 1)

	title := s.Title.Render(render.Truncate(c.Icon+" "+c.Title, inner))
	if focused {
		title = s.Focus.Render(render.Truncate(c.Icon+" "+c.Title, inner))
	}
	sub := s.Muted.Render(render.Truncate(c.Subtitle, inner))
	count := ""
	if n, ok := m.counts[c.ID]; ok {
		count = s.Subtle.Render(render.Truncate(channelCount(c, n), inner))
	}
	return styles.CardStyle(focused, width).Render(strings.Join([]string{title, sub, count}, "\n"))
}

func (m *Model) renderFeatured(now time.Time, width int) string {
	if len(m.featured) == 0 {
		return ""
	}
	s := styles.T().S()
	parts := make([]string, 0, len(m.featured))
	for _, ch := range m.featured {
		p := catalog.NowPlaying(ch, now)
		parts = append(parts, s.Live.Render("●")+" "+s.Base.Render(render.Sanitize(ch.Name))+
			s.Muted.Render(" · "+p.Title))
	}
	line := s.Subtle.Render("Featured  ") + strings.Join(parts, s.Subtle.Render("   "))
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return render.Center(line, width)
}

func channelCount(c catalog.Card, n int) string {
	unit := "channels"
	if c.Filter.Kind != nil && *c.Filter.Kind == catalog.KindRadio {
		unit = "stations"
	}
	if n == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s", n, unit)
}
