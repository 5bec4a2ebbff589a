// Package navctl ties the focus controller to the screens it navigates:
// it knows the layout of every view and keeps the scroll viewports in step
// with the focus.
package navctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/ui/grid"
	"github.com/llehouerou/sombox/internal/ui/guide"
	"github.com/llehouerou/sombox/internal/ui/home"
	"github.com/llehouerou/sombox/internal/ui/playerbar"
)

// Manager owns the focus controller and the navigable screens.
type Manager struct {
	focus  *focus.Controller
	home   *home.Model
	guide  *guide.Model
	grid   *grid.Model
	screen *playerbar.Model
}

// New creates a Manager on the loading view.
func New(h *home.Model, g *guide.Model, gr *grid.Model, s *playerbar.Model) *Manager {
	return &Manager{
		focus:  focus.NewController(),
		home:   h,
		guide:  g,
		grid:   gr,
		screen: s,
	}
}

// --- Accessors ---

// Focus returns the focus controller.
func (n *Manager) Focus() *focus.Controller { return n.focus }

// Home returns the home menu.
func (n *Manager) Home() *home.Model { return n.home }

// Guide returns the channel guide.
func (n *Manager) Guide() *guide.Model { return n.guide }

// Grid returns the channel grid.
func (n *Manager) Grid() *grid.Model { return n.grid }

// Screen returns the player screen.
func (n *Manager) Screen() *playerbar.Model { return n.screen }

// View returns the active view.
func (n *Manager) View() focus.View { return n.focus.View() }

// Current returns the focus target of the active view.
func (n *Manager) Current() focus.Target { return n.focus.Current() }

// --- Layouts ---

// LayoutFor returns the current layout of view v.
func (n *Manager) LayoutFor(v focus.View) focus.Layout {
	switch v {
	case focus.ViewHome:
		return n.home.Layout()
	case focus.ViewGuide:
		return n.guide.Layout()
	case focus.ViewGrid:
		return n.grid.Layout()
	case focus.ViewPlayer:
		return playerbar.Layout()
	case focus.ViewLoading:
	}
	return focus.NewLayout()
}

// Layout returns the layout of the active view.
func (n *Manager) Layout() focus.Layout {
	return n.LayoutFor(n.focus.View())
}

// --- Transitions ---

// Enter switches to v focused on t, falling back to the first element.
// Scrolling of the view that is left is cancelled and the new view is
// centered on its focus without animation.
func (n *Manager) Enter(v focus.View, t focus.Target) focus.Target {
	if v != n.focus.View() {
		n.CancelScrolling()
	}
	t = n.focus.EnterAt(v, t, n.LayoutFor(v))
	n.jump(v, t)
	return t
}

// Back cancels out of the active view. It returns the transition made.
func (n *Manager) Back() focus.Transition {
	n.CancelScrolling()
	tr := n.focus.Cancel(n.LayoutFor)
	n.jump(tr.To, tr.Target)
	return tr
}

// Move applies a directional step and scrolls the focused element into the
// center.
func (n *Manager) Move(dir focus.Direction) (bool, tea.Cmd) {
	t, moved := n.focus.Move(dir, n.Layout())
	if !moved {
		return false, nil
	}
	return true, n.Follow(t)
}

// FocusAt moves focus to t in the active view and centers it.
func (n *Manager) FocusAt(t focus.Target) tea.Cmd {
	if !n.focus.Focus(t, n.Layout()) {
		return nil
	}
	return n.Follow(t)
}

// FocusQuiet moves focus to t without scrolling. Used when scrolling itself
// picked the element.
func (n *Manager) FocusQuiet(t focus.Target) bool {
	return n.focus.Focus(t, n.Layout())
}

// Reset focuses the first channel of the active view after its collection
// was refiltered, and recenters on it.
func (n *Manager) Reset() tea.Cmd {
	l := n.Layout()
	t := focus.At(focus.ZoneChannel, 0)
	if !l.Valid(t) {
		// nothing to focus in the list; the guide keeps the sidebar on the
		// selected country
		if n.focus.View() == focus.ViewGuide && !l.Valid(n.Current()) {
			n.focus.Focus(focus.At(focus.ZoneCountry, n.guide.CountryIndex()), l)
			return nil
		}
		n.focus.Refresh(l)
		return nil
	}
	// focus may already be there; the list under it changed regardless
	n.focus.Focus(t, l)
	return n.Follow(t)
}

// Refresh revalidates the focus after the collection behind the active view
// changed without a filter change, e.g. an unstarred favorite.
func (n *Manager) Refresh() {
	n.focus.Refresh(n.Layout())
}

// --- Scrolling ---

// Follow centers t in the active view's viewport.
func (n *Manager) Follow(t focus.Target) tea.Cmd {
	switch n.focus.View() {
	case focus.ViewGuide:
		return n.guide.Follow(t)
	case focus.ViewGrid:
		return n.grid.Follow(t)
	case focus.ViewLoading, focus.ViewHome, focus.ViewPlayer:
	}
	return nil
}

// CancelScrolling stops animations and drops pending settle timers.
func (n *Manager) CancelScrolling() {
	n.guide.Cancel()
	n.grid.Cancel()
}

func (n *Manager) jump(v focus.View, t focus.Target) {
	switch v {
	case focus.ViewGuide:
		n.guide.Jump(focus.At(focus.ZoneCountry, n.guide.CountryIndex()))
		n.guide.Jump(t)
	case focus.ViewGrid:
		n.grid.Jump(t)
	case focus.ViewLoading, focus.ViewHome, focus.ViewPlayer:
	}
}
