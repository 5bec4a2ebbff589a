package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockTickMsg refreshes the time shown in the header, once a minute.
type ClockTickMsg time.Time

// PlaybackEndedMsg reports that the stream of play generation Gen ended on
// its own.
type PlaybackEndedMsg struct {
	Gen uint64
}

// StderrMsg carries a line captured from C-library output.
type StderrMsg struct {
	Line string
}

// clockTick fires at the start of the next minute.
func clockTick(now time.Time) tea.Cmd {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// watchDone waits for the current stream to end.
func watchDone(done <-chan struct{}, gen uint64) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return PlaybackEndedMsg{Gen: gen}
	}
}

func (m Model) listenStderr() tea.Cmd {
	if m.stderr == nil {
		return nil
	}
	ch := m.stderr
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
