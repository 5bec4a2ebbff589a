// Package headerbar renders the top line shared by every view: logo,
// section title, weather and clock.
package headerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sombox/internal/ui/render"
	"github.com/llehouerou/sombox/internal/ui/styles"
)

// Height is the header line plus the rule under it.
const Height = 2

// Weather is the condition shown next to the clock.
type Weather struct {
	TempC     int
	Condition string
}

// DefaultWeather is shown until a real source exists.
var DefaultWeather = Weather{TempC: 24, Condition: "Cloudy"}

var conditionIcons = map[string]string{
	"Sunny":  "☀",
	"Cloudy": "☁",
	"Rain":   "☂",
	"Snow":   "❄",
}

// String formats the weather as "☁ 24°".
func (w Weather) String() string {
	icon, ok := conditionIcons[w.Condition]
	if !ok {
		icon = "·"
	}
	return fmt.Sprintf("%s %d°", icon, w.TempC)
}

// Render returns the header for the given width. title may be empty.
func Render(title string, now time.Time, w Weather, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	left := styles.Logo()
	if title != "" {
		left += s.Subtle.Render("  │  ") + s.Title.Render(title)
	}
	right := s.Muted.Render(w.String()) + "  " +
		s.Title.Render(render.Clock(now)) + "  " +
		s.Muted.Render(render.Date(now))

	// Drop the date, then the weather, before the line overflows.
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = s.Muted.Render(w.String()) + "  " + s.Title.Render(render.Clock(now))
	}
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = s.Title.Render(render.Clock(now))
	}

	line := render.Row(left, right, width)
	return line + "\n" + s.Subtle.Render(render.Separator(width))
}
