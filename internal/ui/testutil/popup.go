package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/ui/popup"
)

// PopupHarness drives a popup with keys and keeps the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the underlying popup for type assertion when needed.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// Send delivers msg and returns the resulting command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends each key in order.
func (h *PopupHarness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(Key(k))
	}
}

// LastMsgs runs the most recent command and returns its messages.
func (h *PopupHarness) LastMsgs() []tea.Msg {
	if len(h.cmds) == 0 {
		return nil
	}
	return Exec(h.cmds[len(h.cmds)-1])
}
