package textinput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/ui/action"
)

// Changed reports the text after an edit.
type Changed struct {
	Text string
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "textinput.changed" }

// Result reports how the field was closed.
type Result struct {
	Text     string
	Canceled bool // esc clears the text
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }

func resultCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
