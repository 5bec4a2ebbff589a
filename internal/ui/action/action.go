// Package action defines how view components report user intents to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an intent raised by a component. ActionType names it for logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the component that raised it.
type Msg struct {
	Source string // "guide", "grid", "player", "helpbindings", ...
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

var _ tea.Msg = Msg{}
