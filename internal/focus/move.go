package focus

// Direction is a directional key.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Move returns the target reached from cur by one step in dir, and whether
// the step changed anything. Out-of-range steps are no-ops: nothing wraps and
// nothing snaps to a partial row.
//
// A current target that no longer points at an element (none, or an index
// past a shrunken collection) wakes up on the first element of the layout.
func Move(l Layout, cur Target, dir Direction) (Target, bool) {
	if !l.Valid(cur) {
		first := l.First()
		if first.IsNone() || first == cur {
			return cur, false
		}
		return first, true
	}

	r, pos, _ := l.Region(cur.Zone)
	switch {
	case r.Shape.IsGrid():
		return moveGrid(r, cur, dir)
	case r.Shape.IsRows():
		return moveRows(r, cur, dir)
	}

	along, across := deltas(r.Axis, dir)
	if along != 0 {
		next := cur.Index + along
		if !r.Shape.Contains(next) {
			return cur, false
		}
		return At(cur.Zone, next), true
	}
	return switchZone(l, cur, pos+across)
}

// moveGrid steps within a row-major grid. Left/right walk the flat order;
// up/down jump a whole row and refuse to leave the collection.
func moveGrid(r Region, cur Target, dir Direction) (Target, bool) {
	next := cur.Index
	switch dir {
	case Left:
		next--
	case Right:
		next++
	case Up:
		next -= r.Shape.Width
	case Down:
		next += r.Shape.Width
	}
	if !r.Shape.Contains(next) {
		return cur, false
	}
	return At(cur.Zone, next), true
}

// moveRows steps within uneven rows. Left/right stop at the row ends;
// up/down keep the column and refuse to land past a shorter row.
func moveRows(r Region, cur Target, dir Direction) (Target, bool) {
	row, col := r.Shape.locate(cur.Index)
	switch dir {
	case Left:
		col--
	case Right:
		col++
	case Up:
		row--
	case Down:
		row++
	}
	next := r.Shape.index(row, col)
	if next < 0 {
		return cur, false
	}
	return At(cur.Zone, next), true
}

// switchZone moves laterally to the region at position pos. The sub-index
// resets to 0; empty or missing neighbours make it a no-op.
func switchZone(l Layout, cur Target, pos int) (Target, bool) {
	if pos < 0 || pos >= len(l.Regions) {
		return cur, false
	}
	r := l.Regions[pos]
	if r.Shape.Len == 0 {
		return cur, false
	}
	return At(r.Zone, 0), true
}

// deltas splits a direction into a step along the list and a step across
// regions for a list with the given axis.
func deltas(axis Axis, dir Direction) (along, across int) {
	var primary, secondary int
	switch dir {
	case Up:
		primary, secondary = -1, 0
	case Down:
		primary, secondary = 1, 0
	case Left:
		primary, secondary = 0, -1
	case Right:
		primary, secondary = 0, 1
	}
	if axis == Vertical {
		return primary, secondary
	}
	return secondary, primary
}
