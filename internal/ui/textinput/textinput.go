// Package textinput is the inline search field of the channel grid.
package textinput

import (
	"github.com/charmbracelet/bubbles/cursor"
	bubbletext "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// Source identifies search field actions.
const Source = "textinput"

// Model wraps a bubbles text input. Every edit reports the new text so the
// grid can filter while typing.
type Model struct {
	input  bubbletext.Model
	active bool
}

// New creates an inactive search field.
func New() Model {
	in := bubbletext.New()
	in.Prompt = "/ "
	in.Placeholder = "Search channels"
	in.CharLimit = 64
	in.Cursor.SetMode(cursor.CursorStatic)
	t := styles.T()
	in.PromptStyle = t.S().Key
	in.TextStyle = t.S().Base
	in.PlaceholderStyle = t.S().Subtle
	return Model{input: in}
}

// Start activates the field with text preselected.
func (m *Model) Start(text string) tea.Cmd {
	m.active = true
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Stop deactivates the field and keeps its text.
func (m *Model) Stop() {
	m.active = false
	m.input.Blur()
}

// Active reports whether the field captures keys.
func (m *Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Update handles a message while the field is active. Enter keeps the text,
// esc clears it; both close the field.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.Stop()
			return resultCmd(Result{Text: m.Value()})
		case "esc":
			m.Stop()
			changed := m.Value() != ""
			m.input.SetValue("")
			if changed {
				return tea.Batch(resultCmd(Changed{}), resultCmd(Result{Canceled: true}))
			}
			return resultCmd(Result{Canceled: true})
		}
	}

	before := m.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.Value(); after != before {
		return tea.Batch(cmd, resultCmd(Changed{Text: after}))
	}
	return cmd
}

// View renders the field on one line of width columns.
func (m *Model) View(width int) string {
	m.input.Width = max(width-3, 1)
	return render.Pad(m.input.View(), width)
}
