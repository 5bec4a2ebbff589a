package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Logo renders the product name with the brand gradient.
func Logo() string {
	t := T()
	return Gradient("SomBox TV", true, t.Primary, t.Secondary, t.Accent)
}

// Gradient renders text with a horizontal gradient through the given stops.
func Gradient(text string, bold bool, stops ...lipgloss.Color) string {
	if text == "" || len(stops) == 0 {
		return text
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := Blend(len(clusters), stops...)
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(colors[i])))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend spreads n colors across the stops in HCL space.
func Blend(n int, stops ...lipgloss.Color) []color.Color {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	points := make([]colorful.Color, len(stops))
	for i, s := range stops {
		points[i] = parse(s)
	}
	out := make([]color.Color, n)
	if n == 1 || len(points) == 1 {
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	segments := float64(len(points) - 1)
	for i := range n {
		pos := float64(i) / float64(n-1) * segments
		seg := min(int(pos), len(points)-2)
		out[i] = points[seg].BlendHcl(points[seg+1], pos-float64(seg)).Clamped()
	}
	return out
}

// parse reads a #rrggbb color; ANSI palette indices fall back to gray.
func parse(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}

func hex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
