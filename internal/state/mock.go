// internal/state/mock.go
package state

import (
	"database/sql"
	"slices"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	navState  *NavigationState
	saved     []NavigationState
	favorites []string
	seeded    bool
	history   []WatchEntry
	volume    *VolumeState
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.saved = append(m.saved, state)
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) InitFavorites(seed []string) ([]string, error) {
	if !m.seeded {
		m.seeded = true
		for _, id := range seed {
			if !slices.Contains(m.favorites, id) {
				m.favorites = append(m.favorites, id)
			}
		}
	}
	return slices.Clone(m.favorites), nil
}

func (m *Mock) Favorites() ([]string, error) {
	return slices.Clone(m.favorites), nil
}

func (m *Mock) SetFavorite(channelID string, on bool) error {
	i := slices.Index(m.favorites, channelID)
	switch {
	case on && i < 0:
		m.favorites = append(m.favorites, channelID)
	case !on && i >= 0:
		m.favorites = slices.Delete(m.favorites, i, i+1)
	}
	return nil
}

func (m *Mock) RecordWatch(channelID string, at time.Time) error {
	m.history = append(m.history, WatchEntry{ChannelID: channelID, WatchedAt: at})
	return nil
}

func (m *Mock) RecentWatched(limit int) ([]WatchEntry, error) {
	var out []WatchEntry
	for i := len(m.history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.history[i])
	}
	return out, nil
}

func (m *Mock) LastWatched() (*WatchEntry, error) {
	if len(m.history) == 0 {
		return nil, nil //nolint:nilnil // empty history is valid
	}
	e := m.history[len(m.history)-1]
	return &e, nil
}

func (m *Mock) GetVolume() (*VolumeState, error) {
	return m.volume, nil
}

func (m *Mock) SaveVolume(volume int, muted bool) error {
	m.volume = &VolumeState{Volume: volume, Muted: muted}
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

// LastSavedNavigation returns the most recent snapshot passed to
// SaveNavigation.
func (m *Mock) LastSavedNavigation() (NavigationState, bool) {
	if len(m.saved) == 0 {
		return NavigationState{}, false
	}
	return m.saved[len(m.saved)-1], true
}

func (m *Mock) History() []WatchEntry { return slices.Clone(m.history) }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
