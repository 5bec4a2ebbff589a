package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sombox/internal/ui/styles"
)

// Bar renders a progress bar of width columns filled to ratio.
func Bar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	ratio = min(max(ratio, 0), 1)
	filled := min(int(float64(width)*ratio), width)
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("─", width-filled))
}
