// Package helpbindings provides the "TV Navigation Guide" popup listing the
// key bindings by section.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sombox/internal/keymap"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/popup"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Title is the popup heading.
const Title = "TV Navigation Guide"

// Entry is one line of a section.
type Entry struct {
	Keys        string
	Description string
}

// Section is a page of the guide.
type Section struct {
	Title   string
	Entries []Entry
}

// Sections builds the guide pages from the key bindings.
func Sections() []Section {
	basic := Section{Title: "Basic Navigation"}
	basic.Entries = append(basic.Entries, entries(keymap.ByContext(keymap.ContextNav))...)
	basic.Entries = append(basic.Entries, entries(only(keymap.ByContext(keymap.ContextGlobal), keymap.ActionBack))...)

	playerSection := Section{Title: "Video Player Controls"}
	playerSection.Entries = entries(keymap.ByContext(keymap.ContextPlayer))

	quick := Section{Title: "Quick Actions"}
	quick.Entries = append(quick.Entries, Entry{Keys: "0-9", Description: "Dial a channel number"})
	quick.Entries = append(quick.Entries, entries(keymap.ByContext(keymap.ContextGuide))...)
	quick.Entries = append(quick.Entries, entries(only(keymap.ByContext(keymap.ContextGrid), keymap.ActionSearch))...)
	quick.Entries = append(quick.Entries,
		entries(only(keymap.ByContext(keymap.ContextGlobal), keymap.ActionHelp, keymap.ActionQuit))...)

	return []Section{basic, playerSection, quick}
}

func only(bindings []keymap.Binding, actions ...keymap.Action) []keymap.Binding {
	var out []keymap.Binding
	for _, b := range bindings {
		for _, a := range actions {
			if b.Action == a {
				out = append(out, b)
			}
		}
	}
	return out
}

func entries(bindings []keymap.Binding) []Entry {
	out := make([]Entry, 0, len(bindings))
	for _, b := range bindings {
		keys := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			keys[i] = keyName(k)
		}
		out = append(out, Entry{Keys: strings.Join(keys, ", "), Description: b.Description})
	}
	return out
}

func keyName(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	sections     []Section
	section      int
	scrollOffset int
}

// New creates a help popup on its first section.
func New() Model {
	return Model{sections: Sections()}
}

// Section returns the index of the shown section.
func (m *Model) Section() int {
	return m.section
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup. Every key is consumed.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "right", "l", "tab":
		m.section = (m.section + 1) % len(m.sections)
		m.scrollOffset = 0
	case "left", "h", "shift+tab":
		m.section = (m.section + len(m.sections) - 1) % len(m.sections)
		m.scrollOffset = 0
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := m.sectionLines()
	width := lipgloss.Width(m.tabs())
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(lines))
	visible := lines[min(m.scrollOffset, len(lines)):end]

	var b strings.Builder
	b.WriteString(s.Title.Render(Title))
	b.WriteString("\n\n")
	b.WriteString(m.tabs())
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	for i, l := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l)
	}
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m *Model) tabs() string {
	s := styles.T().S()
	parts := make([]string, len(m.sections))
	for i, sec := range m.sections {
		if i == m.section {
			parts[i] = s.Focus.Render("[" + sec.Title + "]")
		} else {
			parts[i] = s.Muted.Render(" " + sec.Title + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) sectionLines() []string {
	s := styles.T().S()
	sec := m.sections[m.section]

	keyWidth := 0
	for _, e := range sec.Entries {
		keyWidth = max(keyWidth, lipgloss.Width(e.Keys))
	}
	lines := make([]string, 0, len(sec.Entries))
	for _, e := range sec.Entries {
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.Keys))
		lines = append(lines, s.Key.Render(e.Keys+pad)+"  "+s.Base.Render(e.Description))
	}
	return lines
}

func (m *Model) footer() string {
	if m.maxScroll() > 0 {
		return "←/→ section · j/k scroll · ?/esc close"
	}
	return "←/→ section · ?/esc close"
}

func (m *Model) visibleHeight() int {
	// title, tabs, rule, footer and popup chrome
	return max(m.Height()-12, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.sections[m.section].Entries)-m.visibleHeight(), 0)
}
