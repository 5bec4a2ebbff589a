// Package popupctl owns the modal overlays: the navigation guide and the
// error box. Whichever is visible captures every key.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/ui/helpbindings"
	"github.com/llehouerou/sombox/internal/ui/popup"
)

// Manager manages the modal popups.
type Manager struct {
	popups   map[Type]popup.Popup
	errorMsg string
	width    int
	height   int
}

// New creates a Manager with nothing shown.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop as t, sized to the terminal.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes popup t.
func (p *Manager) Hide(t Type) {
	if t == Error {
		p.errorMsg = ""
		return
	}
	delete(p.popups, t)
}

// ShowHelp opens the navigation guide on its first section.
func (p *Manager) ShowHelp() tea.Cmd {
	m := helpbindings.New()
	return p.Show(Help, &m)
}

// ShowError displays msg until dismissed. A newer error replaces the shown one.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the shown error, or "".
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes msg to the active popup. It reports false when no popup
// is open.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	switch active {
	case None:
		return false, nil
	case Error:
		switch msg.String() {
		case "enter", "esc", " ":
			p.errorMsg = ""
		}
		return true, nil
	case Help:
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders visible popups on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		if t == Error {
			base = popup.Compose(base, popup.Error(p.errorMsg).Render(p.width, p.height), p.width)
			continue
		}
		base = popup.Compose(base, popup.Bordered(p.popups[t].View(), p.width, p.height), p.width)
	}
	return base
}
