// Package focus implements remote-control style focus navigation.
//
// Every screen exposes its focusable collections as a Layout of regions.
// Directional input moves a single logical Target (zone + index) across that
// layout; the presentation layer only reads the current target to decide
// which element to highlight.
package focus

// View identifies the active screen. Exactly one view is active at a time.
type View int

const (
	ViewLoading View = iota
	ViewHome
	ViewGuide
	ViewGrid
	ViewPlayer
)

var viewNames = map[View]string{
	ViewLoading: "loading",
	ViewHome:    "home",
	ViewGuide:   "guide",
	ViewGrid:    "grid",
	ViewPlayer:  "player",
}

// String returns the view name used for persistence and key contexts.
func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseView is the inverse of View.String.
func ParseView(s string) (View, bool) {
	for v, name := range viewNames {
		if name == s {
			return v, true
		}
	}
	return ViewLoading, false
}

// IsDetail reports whether the view is opened on top of another view and
// returns to it on cancel.
func (v View) IsDetail() bool {
	return v == ViewPlayer
}
