// Package scroll keeps the focused item of a vertical list centered in its
// viewport, and maps manual scrolling back to the item nearest the center.
//
// Geometry is measured in terminal rows. Items have a fixed height and are
// separated by a fixed gap.
package scroll

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is how long scrolling must pause before focus follows it.
const DefaultDebounce = 150 * time.Millisecond

// FrameInterval is the delay between animation frames.
const FrameInterval = 30 * time.Millisecond

// AnimFrameMsg advances a centering animation.
type AnimFrameMsg struct {
	ID      string
	Version uint64
}

// SettleMsg fires once manual scrolling has paused for the debounce period.
type SettleMsg struct {
	ID      string
	Version uint64
}

// Viewport is the scroll state of one list.
type Viewport struct {
	id         string
	itemHeight int
	gap        int
	count      int
	height     int
	debounce   time.Duration

	offset    int // first visible row
	target    int // where the running animation ends
	animating bool
	version   uint64
}

// New returns a viewport for items of itemHeight rows separated by gap rows.
// The id routes animation and settle messages back to it.
func New(id string, itemHeight, gap int) *Viewport {
	return &Viewport{
		id:         id,
		itemHeight: max(itemHeight, 1),
		gap:        max(gap, 0),
		debounce:   DefaultDebounce,
	}
}

// ID returns the viewport identifier.
func (v *Viewport) ID() string { return v.id }

// Offset returns the first visible content row.
func (v *Viewport) Offset() int { return v.offset }

// Height returns the viewport height in rows.
func (v *Viewport) Height() int { return v.height }

// Count returns the number of items.
func (v *Viewport) Count() int { return v.count }

// Animating reports whether a centering animation is in flight.
func (v *Viewport) Animating() bool { return v.animating }

// SetDebounce changes the settle delay. Non-positive values are ignored.
func (v *Viewport) SetDebounce(d time.Duration) {
	if d > 0 {
		v.debounce = d
	}
}

// SetCount updates the number of items and clamps the offset.
func (v *Viewport) SetCount(n int) {
	v.count = max(n, 0)
	v.clampOffsets()
}

// SetHeight updates the viewport height and clamps the offset.
func (v *Viewport) SetHeight(h int) {
	v.height = max(h, 0)
	v.clampOffsets()
}

// ContentHeight is the total height of all items and gaps.
func (v *Viewport) ContentHeight() int {
	if v.count == 0 {
		return 0
	}
	return v.count*v.itemHeight + (v.count-1)*v.gap
}

// MaxOffset is the largest offset that still fills the viewport.
func (v *Viewport) MaxOffset() int {
	return max(v.ContentHeight()-v.height, 0)
}

// ItemTop returns the first content row of item i.
func (v *Viewport) ItemTop(i int) int {
	return i * (v.itemHeight + v.gap)
}

// CenterOffset returns the offset that puts the center of item i at the
// center of the viewport, clamped to [0, MaxOffset].
func (v *Viewport) CenterOffset(i int) int {
	center := v.ItemTop(i) + v.itemHeight/2
	return clamp(center-v.height/2, v.MaxOffset())
}

// CenterOn starts an animated scroll that centers item i. It cancels any
// pending settle and returns the first frame command, or nil when already
// there.
func (v *Viewport) CenterOn(i int) tea.Cmd {
	v.version++
	v.target = v.CenterOffset(i)
	if v.target == v.offset {
		v.animating = false
		return nil
	}
	v.animating = true
	return v.frame()
}

// JumpTo centers item i without animating.
func (v *Viewport) JumpTo(i int) {
	v.version++
	v.offset = v.CenterOffset(i)
	v.target = v.offset
	v.animating = false
}

// Frame advances the animation by one eased step. Messages for another
// viewport or an older animation are ignored.
func (v *Viewport) Frame(msg AnimFrameMsg) tea.Cmd {
	if msg.ID != v.id || msg.Version != v.version || !v.animating {
		return nil
	}
	diff := v.target - v.offset
	step := diff / 3
	if step == 0 {
		step = sign(diff)
	}
	v.offset += step
	if v.offset == v.target {
		v.animating = false
		return nil
	}
	return v.frame()
}

// Scroll moves the viewport by delta rows, as a mouse wheel does. Any
// animation stops, and the returned command reports when scrolling settles.
func (v *Viewport) Scroll(delta int) tea.Cmd {
	v.version++
	v.animating = false
	v.offset = clamp(v.offset+delta, v.MaxOffset())
	v.target = v.offset
	ver := v.version
	id := v.id
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return SettleMsg{ID: id, Version: ver}
	})
}

// Settle handles a settle message and returns the item nearest the center.
// It reports false for stale messages or an empty list.
func (v *Viewport) Settle(msg SettleMsg) (int, bool) {
	if msg.ID != v.id || msg.Version != v.version {
		return -1, false
	}
	i := v.Nearest()
	return i, i >= 0
}

// Nearest returns the item whose center is closest to the viewport center.
// Ties go to the earlier item. It returns -1 for an empty list.
func (v *Viewport) Nearest() int {
	if v.count == 0 {
		return -1
	}
	// doubled coordinates keep odd heights exact
	mid := 2*v.offset + v.height
	best, bestDist := -1, 0
	for i := range v.count {
		d := abs(2*v.ItemTop(i) + v.itemHeight - mid)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Cancel stops the animation and invalidates pending messages.
func (v *Viewport) Cancel() {
	v.version++
	v.animating = false
	v.target = v.offset
}

// VisibleRange returns the half-open range of items that intersect the
// viewport.
func (v *Viewport) VisibleRange() (start, end int) {
	if v.count == 0 || v.height == 0 {
		return 0, 0
	}
	stride := v.itemHeight + v.gap
	start = v.offset / stride
	end = min((v.offset+v.height-1)/stride+1, v.count)
	return start, end
}

// Window cuts the visible rows out of the fully rendered content and pads
// the result to the viewport height.
func (v *Viewport) Window(lines []string) []string {
	out := make([]string, 0, v.height)
	for row := v.offset; row < v.offset+v.height; row++ {
		if row >= 0 && row < len(lines) {
			out = append(out, lines[row])
		} else {
			out = append(out, "")
		}
	}
	return out
}

func (v *Viewport) frame() tea.Cmd {
	ver := v.version
	id := v.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return AnimFrameMsg{ID: id, Version: ver}
	})
}

func (v *Viewport) clampOffsets() {
	v.offset = clamp(v.offset, v.MaxOffset())
	v.target = clamp(v.target, v.MaxOffset())
	if v.offset == v.target {
		v.animating = false
	}
}

func clamp(n, hi int) int {
	if n > hi {
		n = hi
	}
	if n < 0 {
		n = 0
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
