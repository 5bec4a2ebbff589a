// Package guide renders the channel guide: a country sidebar, the numbered
// channel list and a preview of the focused channel.
package guide

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/scroll"
)

// Source identifies guide actions.
const Source = "guide"

// Item geometry in rows.
const (
	countryItemHeight = 1
	countryGap        = 0
	channelItemHeight = 2
	channelGap        = 1
)

// Panel widths.
const (
	countryPanelWidth = 26
	previewPanelWidth = 38
	minChannelWidth   = 30
)

// FocusNearest asks the app to focus the item manual scrolling settled on.
type FocusNearest struct {
	Zone  focus.Zone
	Index int
}

// ActionType implements action.Action.
func (FocusNearest) ActionType() string { return "guide.focus_nearest" }

// Model is the guide state: filters, the filtered line-up and the two list
// viewports.
type Model struct {
	ui.Base
	cat *catalog.Catalog

	countries []catalog.Country
	counts    []int
	channels  []catalog.Channel

	country       string
	category      string
	favoritesOnly bool

	countryView *scroll.Viewport
	channelView *scroll.Viewport
}

// New returns a guide over cat filtered to country.
func New(cat *catalog.Catalog, country string) *Model {
	m := &Model{
		cat:         cat,
		countryView: scroll.New("guide-countries", countryItemHeight, countryGap),
		channelView: scroll.New("guide-channels", channelItemHeight, channelGap),
	}
	m.country = m.knownCountry(country)
	m.Refresh()
	return m
}

// SetDebounce sets how long manual scrolling must pause before focus follows.
func (m *Model) SetDebounce(d time.Duration) {
	m.countryView.SetDebounce(d)
	m.channelView.SetDebounce(d)
}

// Refresh recomputes the country counts and the filtered channels. Call it
// after the catalog or the favorites changed.
func (m *Model) Refresh() {
	m.countries = m.cat.Countries()
	m.counts = make([]int, len(m.countries))
	for i, co := range m.countries {
		m.counts[i] = m.cat.CountryCount(co.Name)
	}
	m.channels = m.cat.Filter(m.Filter())
	m.countryView.SetCount(len(m.countries))
	m.channelView.SetCount(len(m.channels))
}

// Filter returns the active channel filter.
func (m *Model) Filter() catalog.Filter {
	return catalog.Filter{
		Country:       m.country,
		Category:      m.category,
		FavoritesOnly: m.favoritesOnly,
	}
}

// Country returns the selected country name.
func (m *Model) Country() string { return m.country }

// Category returns the category filter, empty for all.
func (m *Model) Category() string { return m.category }

// FavoritesOnly reports whether only starred channels are listed.
func (m *Model) FavoritesOnly() bool { return m.favoritesOnly }

// SetCountry selects a country filter. Unknown countries select
// AllCountries. It reports whether the filter changed.
func (m *Model) SetCountry(name string) bool {
	name = m.knownCountry(name)
	if name == m.country {
		return false
	}
	m.country = name
	m.Refresh()
	return true
}

// SetCategory sets the category filter. Unknown categories clear it.
func (m *Model) SetCategory(name string) bool {
	if name != "" && !slices.Contains(m.cat.Categories(), name) {
		name = ""
	}
	if name == m.category {
		return false
	}
	m.category = name
	m.Refresh()
	return true
}

func (m *Model) knownCountry(name string) string {
	if slices.ContainsFunc(m.cat.Countries(), func(co catalog.Country) bool {
		return co.Name == name
	}) {
		return name
	}
	return catalog.AllCountries
}

// CycleCategory steps the category filter through all categories and back
// to none.
func (m *Model) CycleCategory() {
	cats := m.cat.Categories()
	next := ""
	switch i := slices.Index(cats, m.category); {
	case m.category == "" && len(cats) > 0:
		next = cats[0]
	case i >= 0 && i+1 < len(cats):
		next = cats[i+1]
	}
	m.category = next
	m.Refresh()
}

// SetFavoritesOnly sets the favorites-only filter.
func (m *Model) SetFavoritesOnly(on bool) {
	m.favoritesOnly = on
	m.Refresh()
}

// ToggleFavoritesOnly flips the favorites-only filter.
func (m *Model) ToggleFavoritesOnly() {
	m.SetFavoritesOnly(!m.favoritesOnly)
}

// Channels returns the filtered channels. A channel's number is its index
// plus one.
func (m *Model) Channels() []catalog.Channel {
	return m.channels
}

// Channel returns channel i of the filtered list.
func (m *Model) Channel(i int) (catalog.Channel, bool) {
	if i < 0 || i >= len(m.channels) {
		return catalog.Channel{}, false
	}
	return m.channels[i], true
}

// CountryAt returns entry i of the sidebar.
func (m *Model) CountryAt(i int) (catalog.Country, bool) {
	if i < 0 || i >= len(m.countries) {
		return catalog.Country{}, false
	}
	return m.countries[i], true
}

// CountryIndex returns the sidebar index of the selected country.
func (m *Model) CountryIndex() int {
	for i, co := range m.countries {
		if co.Name == m.country {
			return i
		}
	}
	return 0
}

// Layout lists the country sidebar then the channel list.
func (m *Model) Layout() focus.Layout {
	return focus.NewLayout(
		focus.Region{Zone: focus.ZoneCountry, Axis: focus.Vertical, Shape: focus.List(len(m.countries))},
		focus.Region{Zone: focus.ZoneChannel, Axis: focus.Vertical, Shape: focus.List(len(m.channels))},
	)
}

// Follow scrolls the list holding t so that t is centered.
func (m *Model) Follow(t focus.Target) tea.Cmd {
	if vp := m.viewport(t.Zone); vp != nil && !t.IsNone() {
		return vp.CenterOn(t.Index)
	}
	return nil
}

// Jump centers t without animating.
func (m *Model) Jump(t focus.Target) {
	if vp := m.viewport(t.Zone); vp != nil && !t.IsNone() {
		vp.JumpTo(t.Index)
	}
}

// Cancel stops running animations and drops pending settle timers.
func (m *Model) Cancel() {
	m.countryView.Cancel()
	m.channelView.Cancel()
}

// SetSize lays the panels out and resizes the viewports.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	h := listHeight(height)
	m.countryView.SetHeight(h)
	m.channelView.SetHeight(h)
}

// Update handles scroll animation, settle and mouse wheel messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scroll.AnimFrameMsg:
		if vp := m.viewportByID(msg.ID); vp != nil {
			return vp.Frame(msg)
		}
	case scroll.SettleMsg:
		vp := m.viewportByID(msg.ID)
		if vp == nil {
			return nil
		}
		if i, ok := vp.Settle(msg); ok {
			return action.Cmd(Source, FocusNearest{Zone: m.zoneOf(vp), Index: i})
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	var dir int
	switch msg.Button { //nolint:exhaustive // only wheel events scroll
	case tea.MouseButtonWheelUp:
		dir = -1
	case tea.MouseButtonWheelDown:
		dir = 1
	default:
		return nil
	}
	countryW, channelW, _ := m.panelWidths()
	switch {
	case msg.X < countryW:
		return m.countryView.Scroll(dir * (countryItemHeight + countryGap))
	case msg.X < countryW+channelW:
		return m.channelView.Scroll(dir * (channelItemHeight + channelGap))
	}
	return nil
}

func (m *Model) viewport(z focus.Zone) *scroll.Viewport {
	switch z { //nolint:exhaustive // other zones have no guide list
	case focus.ZoneCountry:
		return m.countryView
	case focus.ZoneChannel:
		return m.channelView
	}
	return nil
}

func (m *Model) viewportByID(id string) *scroll.Viewport {
	switch id {
	case m.countryView.ID():
		return m.countryView
	case m.channelView.ID():
		return m.channelView
	}
	return nil
}

func (m *Model) zoneOf(vp *scroll.Viewport) focus.Zone {
	if vp == m.countryView {
		return focus.ZoneCountry
	}
	return focus.ZoneChannel
}

// panelWidths splits the width between the three panels. The preview is
// dropped first on narrow terminals.
func (m *Model) panelWidths() (country, channel, preview int) {
	w := m.Width()
	country = min(countryPanelWidth, w/3)
	preview = previewPanelWidth
	if w-country-preview < minChannelWidth {
		preview = 0
	}
	channel = max(w-country-preview, 0)
	return country, channel, preview
}

// listHeight is the viewport height inside a panel: border and title row.
func listHeight(height int) int {
	return max(height-ui.BorderHeight-2, 0)
}
