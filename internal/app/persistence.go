package app

import (
	"log"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/errmsg"
	"github.com/llehouerou/sombox/internal/ui/home"
)

// saveNavigation persists the navigation snapshot. The store collapses
// bursts into one write.
func (m *Model) saveNavigation() {
	m.state.SaveNavigation(m.nav.Capture())
}

// loadFavorites seeds the store with the catalog's built-in favorites on
// first run and loads the stored set into the catalog.
func (m *Model) loadFavorites() error {
	ids, err := m.state.InitFavorites(m.catalog.Favorites())
	if err != nil {
		return err
	}
	m.catalog.SetFavorites(ids)
	m.nav.Guide().Refresh()
	m.nav.Grid().Refresh()
	return nil
}

// toggleFavorite stars or unstars a channel and persists the change.
func (m *Model) toggleFavorite(id string) {
	on, err := m.catalog.ToggleFavorite(id)
	if err != nil {
		m.showError(errmsg.OpFavoriteToggle, err)
		return
	}
	if err := m.state.SetFavorite(id, on); err != nil {
		// keep the catalog in line with what is stored
		_, _ = m.catalog.ToggleFavorite(id)
		m.showError(errmsg.OpFavoriteToggle, err)
		return
	}
	m.nav.Guide().Refresh()
	m.nav.Grid().Refresh()
	m.nav.Refresh()
	m.refreshHome()
}

// restoreVolume applies the saved volume, or the configured one on first run.
func (m *Model) restoreVolume() {
	vol, err := m.state.GetVolume()
	if err != nil {
		log.Printf("load volume: %v", err)
	}
	if vol == nil {
		m.player.SetVolume(m.cfg.GetPlayerConfig().Volume)
		return
	}
	m.player.SetVolume(vol.Volume)
	m.player.SetMuted(vol.Muted)
}

func (m *Model) saveVolume() {
	if err := m.state.SaveVolume(m.player.Volume(), m.player.Muted()); err != nil {
		log.Printf("%s: %v", errmsg.OpVolumeSave, err)
	}
}

// refreshHome recomputes the card counts, featured channels and the last
// watched line of the home menu.
func (m *Model) refreshHome() {
	h := m.nav.Home()
	for _, c := range h.Cards() {
		n := m.catalog.Len()
		if c.Dest == catalog.ToGrid {
			n = len(m.catalog.Filter(c.Filter))
		}
		h.SetCount(c.ID, n)
	}
	h.SetFeatured(m.catalog.Featured(home.FeaturedCount))

	last, err := m.state.LastWatched()
	if err != nil {
		log.Printf("load watch history: %v", err)
		return
	}
	if last == nil {
		return
	}
	ch, err := m.catalog.ByID(last.ChannelID)
	if err != nil {
		// the playlist changed since
		return
	}
	h.SetLastWatched(&ch, last.WatchedAt)
}
