// Package loading renders the start-up splash with its progress animation.
package loading

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

const (
	tickInterval = 50 * time.Millisecond
	duration     = 3 * time.Second
	finishDelay  = 500 * time.Millisecond
	barWidth     = 40
)

var steps = []string{
	"Initializing SomBox TV",
	"Loading Channels",
	"Preparing Interface",
	"Almost Ready...",
}

// TickMsg advances the animation.
type TickMsg struct{}

// DoneMsg is sent once the splash has finished.
type DoneMsg struct{}

// Model is the splash state.
type Model struct {
	ui.Base
	ticks    int
	finished bool
}

// New creates the splash at 0%.
func New() Model {
	return Model{}
}

// Init starts the animation.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

func finish(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return DoneMsg{} })
}

// Progress is the shown percentage, 0-100.
func (m Model) Progress() int {
	total := int(duration / tickInterval)
	return min(m.ticks*100/total, 100)
}

// Step is the caption for the current progress.
func (m Model) Step() string {
	return steps[min(m.Progress()/25, len(steps)-1)]
}

// Finished reports whether DoneMsg has been scheduled.
func (m Model) Finished() bool {
	return m.finished
}

// Update advances on ticks. Any key skips the rest of the animation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	switch msg.(type) {
	case TickMsg:
		m.ticks++
		if m.Progress() >= 100 {
			m.finished = true
			return m, finish(finishDelay)
		}
		return m, tick()
	case tea.KeyMsg:
		m.ticks = int(duration / tickInterval)
		m.finished = true
		return m, finish(0)
	}
	return m, nil
}

// View renders the centered logo, caption and bar.
func (m Model) View() string {
	s := styles.T().S()
	width := min(barWidth, max(m.Width()-4, 10))
	filled := width * m.Progress() / 100

	bar := lipgloss.NewStyle().Foreground(styles.T().Primary).Render(strings.Repeat("━", filled)) +
		s.Subtle.Render(strings.Repeat("─", width-filled))

	lines := []string{
		styles.Logo(),
		s.Muted.Render("Your world of live television"),
		"",
		s.Base.Render(m.Step()),
		bar,
		s.Muted.Render(fmt.Sprintf("%d%%", m.Progress())),
	}
	for i, l := range lines {
		lines[i] = render.Center(l, m.Width())
	}

	body := strings.Join(lines, "\n")
	top := max((m.Height()-len(lines))/2, 0)
	return strings.Repeat("\n", top) + body
}
