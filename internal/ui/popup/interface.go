package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component that captures input while open.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without the frame.
	View() string
	SetSize(width, height int)
}
