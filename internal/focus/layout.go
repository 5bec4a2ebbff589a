package focus

// Axis is the orientation of a flat list.
type Axis int

const (
	// Vertical lists move with up/down; left/right switch zones.
	Vertical Axis = iota
	// Horizontal rows move with left/right; up/down switch zones.
	Horizontal
)

// Shape describes the collection behind a zone: a flat length, a length
// plus a fixed row width for row-major grids, or a set of rows of uneven
// length (menus laid out as 4 + 5 cards, for instance).
type Shape struct {
	Len   int
	Width int
	Rows  []int
}

// List returns the shape of a flat list of n items.
func List(n int) Shape {
	return Shape{Len: max(n, 0)}
}

// Grid returns the shape of n items laid out in rows of width items.
func Grid(n, width int) Shape {
	if width <= 0 {
		return List(n)
	}
	return Shape{Len: max(n, 0), Width: width}
}

// RowsOf returns the shape of consecutive rows with the given lengths.
// Indices run row-major across all rows.
func RowsOf(lens ...int) Shape {
	s := Shape{}
	for _, n := range lens {
		if n > 0 {
			s.Rows = append(s.Rows, n)
			s.Len += n
		}
	}
	return s
}

// IsGrid reports whether the shape is a fixed-width grid.
func (s Shape) IsGrid() bool {
	return s.Width > 0
}

// IsRows reports whether the shape is made of uneven rows.
func (s Shape) IsRows() bool {
	return len(s.Rows) > 0
}

// locate returns the row and column of index i in a rows shape.
func (s Shape) locate(i int) (row, col int) {
	for r, n := range s.Rows {
		if i < n {
			return r, i
		}
		i -= n
	}
	return -1, -1
}

// index is the inverse of locate; it returns -1 when the cell does not exist.
func (s Shape) index(row, col int) int {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= s.Rows[row] {
		return -1
	}
	i := col
	for _, n := range s.Rows[:row] {
		i += n
	}
	return i
}

// Contains reports whether i is a valid index.
func (s Shape) Contains(i int) bool {
	return i >= 0 && i < s.Len
}

// RowCount returns the number of rows the shape occupies (1 per item for
// lists).
func (s Shape) RowCount() int {
	switch {
	case s.IsRows():
		return len(s.Rows)
	case s.IsGrid():
		return (s.Len + s.Width - 1) / s.Width
	default:
		return s.Len
	}
}

// Region is one focusable zone of a view.
type Region struct {
	Zone  Zone
	Axis  Axis
	Shape Shape
	// Inert regions take focus but never resolve to a selectable item.
	Inert bool
}

// Layout lists a view's regions in cross-axis order: left to right for
// vertical lists, top to bottom for horizontal rows.
type Layout struct {
	Regions []Region
}

// NewLayout builds a layout from regions.
func NewLayout(regions ...Region) Layout {
	return Layout{Regions: regions}
}

// Region returns the region for zone z and its position in the layout.
func (l Layout) Region(z Zone) (Region, int, bool) {
	for i, r := range l.Regions {
		if r.Zone == z {
			return r, i, true
		}
	}
	return Region{}, -1, false
}

// Valid reports whether t points at an existing element.
func (l Layout) Valid(t Target) bool {
	if t.IsNone() {
		return false
	}
	r, _, ok := l.Region(t.Zone)
	return ok && r.Shape.Contains(t.Index)
}

// First returns index 0 of the first non-empty region, or None.
func (l Layout) First() Target {
	for _, r := range l.Regions {
		if r.Shape.Len > 0 {
			return At(r.Zone, 0)
		}
	}
	return None
}

// Empty reports whether no region has any element.
func (l Layout) Empty() bool {
	return l.First().IsNone()
}
