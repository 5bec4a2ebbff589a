package playerbar

import (
	"fmt"
	"strings"

	"github.com/llehouerou/sombox/internal/ui/styles"
)

// volumeSteps is the width of the volume gauge.
const volumeSteps = 10

// RenderVolume renders the volume gauge.
// Format: "VOL ▮▮▮▮▮▮▮▮▯▯  80%" or "MUTED" in the warning color.
func RenderVolume(volume int, muted bool) string {
	s := styles.T().S()
	if muted {
		return s.Warning.Render("MUTED")
	}
	volume = min(max(volume, 0), 100)
	filled := (volume*volumeSteps + 50) / 100
	gauge := strings.Repeat("▮", filled) + strings.Repeat("▯", volumeSteps-filled)
	return s.Muted.Render("VOL ") + s.Focus.Render(gauge) + s.Muted.Render(fmt.Sprintf(" %3d%%", volume))
}
