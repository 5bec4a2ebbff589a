package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle is the rounded frame of guide panels. The focused zone's panel
// gets the accent border.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// CardStyle frames a card of the given outer width. The focused card gets a
// thick border, which keeps the size identical so layouts do not shift.
func CardStyle(focused bool, width int) lipgloss.Style {
	t := T()
	style := lipgloss.NewStyle().
		Width(max(width-2, 1)).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	if focused {
		style = style.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocus).
			Background(t.BgFocus)
	}
	return style
}
