// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the views.
const (
	// HeaderHeight is the clock/weather header line plus its rule.
	HeaderHeight = 2

	// FooterHeight is the key hint line at the bottom of each view.
	FooterHeight = 1

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// CardHeight is the outer height of a grid channel card.
	CardHeight = 7

	// MinCardWidth is the narrowest grid card before a column is dropped.
	MinCardWidth = 28

	// MaxGridColumns caps derived grid columns on wide terminals.
	MaxGridColumns = 5

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)

// GridColumns derives how many cards fit across width. A positive
// configured value wins.
func GridColumns(width, configured int) int {
	if configured > 0 {
		return configured
	}
	return max(min(width/MinCardWidth, MaxGridColumns), 1)
}
