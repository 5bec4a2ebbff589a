package playerbar

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/ui"
	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// RenderProgress renders the programme progress line.
// Format: 20:00  ━━━━━─────  21:00  12 min left
func RenderProgress(p catalog.Program, now time.Time, width int) string {
	s := styles.T().S()

	start := render.Clock(p.Start)
	end := render.Clock(p.End)
	left := s.Muted.Render(render.Remaining(p.Remaining(now)))

	fixed := lipgloss.Width(start) + lipgloss.Width(end) + lipgloss.Width(left) + 6
	barWidth := width - fixed
	if barWidth < ui.MinProgressBarWidth {
		return s.Muted.Render(start+" – "+end) + "  " + left
	}
	return s.Muted.Render(start) + "  " + render.Bar(p.Progress(now), barWidth) + "  " +
		s.Muted.Render(end) + "  " + left
}
