package ui

// Base provides size management for view components.
// Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    channels []catalog.Channel
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Sized reports whether the component has been given room to render.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
