// Package styles holds the SomBox TV palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand colors, used by the logo gradient and focus rings
	Primary   lipgloss.Color // cyan
	Secondary lipgloss.Color // violet
	Accent    lipgloss.Color // pink

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase  lipgloss.Color
	BgFocus lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Live    lipgloss.Color // red dot of live channels
	Star    lipgloss.Color // favorites
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Focus  lipgloss.Style // text of the focused element
	Number lipgloss.Style // channel numbers
	Badge  lipgloss.Style
	Live   lipgloss.Style
	Star   lipgloss.Style
	Key    lipgloss.Style // key names in hints and help

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#22d3ee"),
	Secondary: lipgloss.Color("#8b5cf6"),
	Accent:    lipgloss.Color("#ec4899"),

	FgBase:   lipgloss.Color("#e5e7eb"),
	FgMuted:  lipgloss.Color("#9ca3af"),
	FgSubtle: lipgloss.Color("#4b5563"),

	BgBase:  lipgloss.Color("#0f172a"),
	BgFocus: lipgloss.Color("#1e293b"),

	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#22d3ee"),

	Live:    lipgloss.Color("#ef4444"),
	Star:    lipgloss.Color("#facc15"),
	Success: lipgloss.Color("#22c55e"),
	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#f59e0b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Focus: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Number: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.FgMuted).
			Padding(0, 1),
		Live:    lipgloss.NewStyle().Foreground(t.Live).Bold(true),
		Star:    lipgloss.NewStyle().Foreground(t.Star),
		Key:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
