package navctl

import (
	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/focus"
	"github.com/llehouerou/sombox/internal/state"
)

// Capture returns the navigation snapshot to persist.
func (n *Manager) Capture() state.NavigationState {
	c := n.focus
	snap := state.NavigationState{
		View:          c.View().String(),
		FocusTarget:   c.Current().String(),
		GuideCountry:  n.guide.Country(),
		GuideCategory: n.guide.Category(),
		FavoritesOnly: n.guide.FavoritesOnly(),
		GridCard:      n.grid.Card().ID,
	}
	if origin, ok := c.Origin(); ok && c.View().IsDetail() {
		snap.OriginView = origin.String()
		snap.OriginTarget = c.Target(origin).String()
	}
	return snap
}

// Restore applies a saved snapshot and enters the saved view. The player is
// never restored: its origin view is entered instead. Anything that no
// longer resolves lands on home. It returns the view entered.
func (n *Manager) Restore(snap *state.NavigationState) focus.View {
	if snap == nil {
		n.Enter(focus.ViewHome, focus.None)
		return focus.ViewHome
	}

	if snap.GuideCountry != "" {
		n.guide.SetCountry(snap.GuideCountry)
	}
	n.guide.SetCategory(snap.GuideCategory)
	n.guide.SetFavoritesOnly(snap.FavoritesOnly)

	gridOK := false
	if card, ok := n.card(snap.GridCard); ok && card.Dest == catalog.ToGrid {
		n.grid.Open(card)
		gridOK = true
	}

	view, ok := focus.ParseView(snap.View)
	target, _ := focus.ParseTarget(snap.FocusTarget)
	if ok && view.IsDetail() {
		view, ok = focus.ParseView(snap.OriginView)
		target, _ = focus.ParseTarget(snap.OriginTarget)
	}
	if !ok || view == focus.ViewLoading || view.IsDetail() || (view == focus.ViewGrid && !gridOK) {
		view, target = focus.ViewHome, focus.None
	}

	n.Enter(view, target)
	return view
}

func (n *Manager) card(id string) (catalog.Card, bool) {
	for _, c := range n.home.Cards() {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Card{}, false
}
