// internal/state/interface.go
package state

import (
	"database/sql"
	"time"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	InitFavorites(seed []string) ([]string, error)
	Favorites() ([]string, error)
	SetFavorite(channelID string, on bool) error
	RecordWatch(channelID string, at time.Time) error
	RecentWatched(limit int) ([]WatchEntry, error)
	LastWatched() (*WatchEntry, error)
	GetVolume() (*VolumeState, error)
	SaveVolume(volume int, muted bool) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
