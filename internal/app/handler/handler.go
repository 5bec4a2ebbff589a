// Package handler chains key handlers. Each handler sees the raw key and
// the action it resolved to in the active view, and either claims the key or
// passes it on.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/keymap"
)

// Key is a key press as the handlers see it.
type Key struct {
	String string        // as reported by tea.KeyMsg.String
	Action keymap.Action // "" when unbound in the active view
	Runes  []rune
}

// Digit returns the pressed digit, if the key is one.
func (k Key) Digit() (rune, bool) {
	if len(k.Runes) != 1 || k.Runes[0] < '0' || k.Runes[0] > '9' {
		return 0, false
	}
	return k.Runes[0], true
}

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle k.
type Handler func(k Key) Result

// Chain runs handlers in order until one handles k.
func Chain(k Key, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(k); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
