// Package popup renders modal boxes centered over a view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// Dialog is a titled box with content and a footer hint.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width, 0 = fit content
	Border  lipgloss.Color
}

// New creates a dialog with the default border.
func New() *Dialog {
	return &Dialog{Border: styles.T().Border}
}

// Error creates a dialog reporting a failure.
func Error(message string) *Dialog {
	return &Dialog{
		Title:   "Something went wrong",
		Content: message,
		Footer:  "enter/esc dismiss",
		Border:  styles.T().Error,
	}
}

// Render returns the box centered in a termWidth x termHeight area.
func (d *Dialog) Render(termWidth, termHeight int) string {
	s := styles.T().S()

	width := d.Width
	if width == 0 {
		width = max(lineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	}
	width = min(width, max(termWidth-6, 10))

	var lines []string
	if d.Title != "" {
		lines = append(lines, render.Center(s.Title.Render(d.Title), width), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines = append(lines, render.Pad(line, width))
	}
	if d.Footer != "" {
		lines = append(lines, "", render.Center(s.Subtle.Render(d.Footer), width))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return Center(box, termWidth, termHeight)
}

// Bordered frames pre-rendered content and centers it.
func Bordered(content string, termWidth, termHeight int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Render(content)
	return Center(box, termWidth, termHeight)
}

func lineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center places content in the middle of the area, padding with blank
// lines above and spaces to the left.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	top := max((termHeight-len(lines))/2, 0)
	left := max((termWidth-lineWidth(content))/2, 0)

	var b strings.Builder
	for range top {
		b.WriteString("\n")
	}
	pad := strings.Repeat(" ", left)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}

// Compose draws overlay on top of base. Blank overlay cells let the base
// show through at the start and end of each line. ANSI styling on both
// sides is preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			// a wide rune straddled the edge
			prefix += strings.Repeat(" ", start-w)
		}
		out := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			}
			out += suffix
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}
