package focus

// Change is published after every focus or view change.
type Change struct {
	View   View
	Target Target
}

// Activation is emitted when confirm resolves to a selectable element.
type Activation struct {
	View   View
	Target Target
}

// Transition describes the result of a cancel.
type Transition struct {
	From   View
	To     View
	Target Target
}

// LayoutFunc returns the current layout of a view.
type LayoutFunc func(View) Layout

// Controller owns the active view and one focus target per view.
//
// Targets of views that are exited are cleared, except the target of the
// view a detail view was opened from: cancelling the detail view returns to
// exactly that element.
type Controller struct {
	view    View
	targets map[View]Target
	origin  View
	hasOrig bool
	epoch   uint64
	subs    []func(Change)
}

// NewController returns a controller on the loading view with no focus.
func NewController() *Controller {
	return &Controller{
		view:    ViewLoading,
		targets: make(map[View]Target),
	}
}

// View returns the active view.
func (c *Controller) View() View {
	return c.view
}

// Current returns the focus target of the active view, or None.
func (c *Controller) Current() Target {
	return c.Target(c.view)
}

// Target returns the remembered target of view v, or None.
func (c *Controller) Target(v View) Target {
	if t, ok := c.targets[v]; ok {
		return t
	}
	return None
}

// Origin returns the view the active detail view was opened from.
func (c *Controller) Origin() (View, bool) {
	return c.origin, c.hasOrig
}

// Epoch changes every time the active view changes. Delayed callbacks
// capture it and are dropped when it no longer matches.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Subscribe registers fn to receive every published change.
func (c *Controller) Subscribe(fn func(Change)) {
	c.subs = append(c.subs, fn)
}

// Enter makes v the active view with focus on the first element of l.
func (c *Controller) Enter(v View, l Layout) Target {
	return c.EnterAt(v, None, l)
}

// EnterAt makes v the active view with focus on t, or on the first element
// of l when t does not resolve.
func (c *Controller) EnterAt(v View, t Target, l Layout) Target {
	from := c.view
	switch {
	case v.IsDetail() && !from.IsDetail() && from != v:
		c.origin, c.hasOrig = from, true
	case v.IsDetail():
		// detail to detail keeps the original origin
	default:
		c.clearExcept(v)
		c.hasOrig = false
	}
	if v != from {
		if from.IsDetail() || !v.IsDetail() {
			delete(c.targets, from)
		}
		c.epoch++
	}
	c.view = v

	if !l.Valid(t) {
		t = l.First()
	}
	c.set(t)
	return t
}

// Move applies one directional step to the active view. It reports whether
// the focus changed.
func (c *Controller) Move(dir Direction, l Layout) (Target, bool) {
	next, ok := Move(l, c.Current(), dir)
	if !ok {
		return c.Current(), false
	}
	c.set(next)
	return next, true
}

// Focus moves the focus of the active view directly to t. Invalid targets
// are ignored.
func (c *Controller) Focus(t Target, l Layout) bool {
	if !l.Valid(t) {
		return false
	}
	if t == c.Current() {
		return false
	}
	c.set(t)
	return true
}

// Refresh revalidates the current target after the collection behind l
// changed. A target that no longer resolves falls back to the first element.
func (c *Controller) Refresh(l Layout) Target {
	cur := c.Current()
	if l.Valid(cur) {
		return cur
	}
	next := l.First()
	if next != cur {
		c.set(next)
	}
	return next
}

// Activate resolves the current target. It fails for none, stale and inert
// targets.
func (c *Controller) Activate(l Layout) (Activation, bool) {
	t := c.Current()
	if !l.Valid(t) {
		return Activation{}, false
	}
	if r, _, _ := l.Region(t.Zone); r.Inert {
		return Activation{}, false
	}
	return Activation{View: c.view, Target: t}, true
}

// Cancel closes a detail view and returns to the element it was opened
// from. From any other view it returns to home, focused on its first
// element.
func (c *Controller) Cancel(layoutFor LayoutFunc) Transition {
	from := c.view
	if from.IsDetail() && c.hasOrig {
		to := c.origin
		t := c.EnterAt(to, c.Target(to), layoutFor(to))
		return Transition{From: from, To: to, Target: t}
	}
	t := c.Enter(ViewHome, layoutFor(ViewHome))
	return Transition{From: from, To: ViewHome, Target: t}
}

func (c *Controller) clearExcept(keep View) {
	for v := range c.targets {
		if v != keep {
			delete(c.targets, v)
		}
	}
}

func (c *Controller) set(t Target) {
	if t.IsNone() {
		delete(c.targets, c.view)
	} else {
		c.targets[c.view] = t
	}
	ch := Change{View: c.view, Target: c.Current()}
	for _, fn := range c.subs {
		fn(ch)
	}
}
