// Package grid renders the channel grid opened from a home card: channel
// cards in rows of fixed width, with an inline search.
package grid

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/scroll"
	"github.com/llehouerou/sombox/internal/ui/textinput"
)

// Source identifies grid actions.
const Source = "grid"

// rows above the cards: title line and search line
const chromeHeight = 2

// FocusRow asks the app to focus a channel of the row manual scrolling
// settled on.
type FocusRow struct {
	Row int
}

// ActionType implements action.Action.
func (FocusRow) ActionType() string { return "grid.focus_row" }

// Model is the grid state: the card it was opened with, the search query and
// the row viewport.
type Model struct {
	ui.Base
	cat        *catalog.Catalog
	card       catalog.Card
	configured int // fixed column count, 0 derives it from the width

	search   textinput.Model
	channels []catalog.Channel
	rows     *scroll.Viewport
}

// New returns an empty grid. columns fixes the row width when positive.
func New(cat *catalog.Catalog, columns int) *Model {
	m := &Model{
		cat:        cat,
		configured: columns,
		search:     textinput.New(),
		rows:       scroll.New("grid-rows", ui.CardHeight, 0),
	}
	m.Refresh()
	return m
}

// SetDebounce sets how long manual scrolling must pause before focus follows.
func (m *Model) SetDebounce(d time.Duration) {
	m.rows.SetDebounce(d)
}

// Open shows the channels of a home card and clears the search.
func (m *Model) Open(card catalog.Card) {
	m.card = card
	m.search = textinput.New()
	m.Refresh()
}

// Card returns the home card the grid was opened with.
func (m *Model) Card() catalog.Card {
	return m.card
}

// Filter returns the card filter narrowed by the search query.
func (m *Model) Filter() catalog.Filter {
	f := m.card.Filter
	f.Query = m.search.Value()
	return f
}

// Title names the collection, e.g. "Sports Channels".
func (m *Model) Title() string {
	return m.card.Filter.Title()
}

// Query returns the search text.
func (m *Model) Query() string {
	return m.search.Value()
}

// Refresh recomputes the channels. Call it after the favorites changed.
func (m *Model) Refresh() {
	m.channels = m.cat.Filter(m.Filter())
	m.rows.SetCount(m.rowCount())
}

// Channels returns the filtered channels.
func (m *Model) Channels() []catalog.Channel {
	return m.channels
}

// Channel returns channel i.
func (m *Model) Channel(i int) (catalog.Channel, bool) {
	if i < 0 || i >= len(m.channels) {
		return catalog.Channel{}, false
	}
	return m.channels[i], true
}

// Columns returns the number of cards per row.
func (m *Model) Columns() int {
	return ui.GridColumns(m.Width(), m.configured)
}

// Layout is a single row-major grid of channels.
func (m *Model) Layout() focus.Layout {
	return focus.NewLayout(focus.Region{
		Zone:  focus.ZoneChannel,
		Axis:  focus.Horizontal,
		Shape: focus.Grid(len(m.channels), m.Columns()),
	})
}

// SetSize resizes the grid. The column count may change with the width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.rows.SetHeight(max(height-chromeHeight, 0))
	m.rows.SetCount(m.rowCount())
}

// Searching reports whether the search field captures keys.
func (m *Model) Searching() bool {
	return m.search.Active()
}

// StartSearch opens the search field.
func (m *Model) StartSearch() tea.Cmd {
	return m.search.Start(m.search.Value())
}

// Follow scrolls so the row holding t is centered.
func (m *Model) Follow(t focus.Target) tea.Cmd {
	if t.Zone != focus.ZoneChannel || t.IsNone() {
		return nil
	}
	return m.rows.CenterOn(t.Index / m.Columns())
}

// Jump centers the row holding t without animating.
func (m *Model) Jump(t focus.Target) {
	if t.Zone == focus.ZoneChannel && !t.IsNone() {
		m.rows.JumpTo(t.Index / m.Columns())
	}
}

// Cancel stops the animation and drops pending settle timers.
func (m *Model) Cancel() {
	m.rows.Cancel()
}

// Update handles search input, scroll animation and the mouse wheel. The
// returned bool reports whether the search query changed.
func (m *Model) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case scroll.AnimFrameMsg:
		return m.rows.Frame(msg), false
	case scroll.SettleMsg:
		if row, ok := m.rows.Settle(msg); ok {
			return action.Cmd(Source, FocusRow{Row: row}), false
		}
		return nil, false
	case tea.MouseMsg:
		return m.handleMouse(msg), false
	}

	if !m.search.Active() {
		return nil, false
	}
	before := m.search.Value()
	cmd := m.search.Update(msg)
	if m.search.Value() != before {
		m.Refresh()
		return cmd, true
	}
	return cmd, false
}

// NearestIn returns the channel of row that keeps the column of cur,
// clamped to the last channel.
func (m *Model) NearestIn(row int, cur focus.Target) int {
	cols := m.Columns()
	col := 0
	if cur.Zone == focus.ZoneChannel && cur.Index >= 0 {
		col = cur.Index % cols
	}
	return min(row*cols+col, len(m.channels)-1)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button { //nolint:exhaustive // only wheel events scroll
	case tea.MouseButtonWheelUp:
		return m.rows.Scroll(-ui.CardHeight)
	case tea.MouseButtonWheelDown:
		return m.rows.Scroll(ui.CardHeight)
	}
	return nil
}

func (m *Model) rowCount() int {
	cols := m.Columns()
	return (len(m.channels) + cols - 1) / cols
}
