// Package state persists user state in a SQLite database under the XDG data
// directory.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/sombox/internal/db"
)

const (
	dbRelPath    = "sombox/sombox.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the sqlite-backed state store.
type Manager struct {
	db  *sql.DB
	nav *navWriter
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.FromSlash(dbRelPath))
	if err != nil {
		return nil, fmt.Errorf("locate state database: %w", err)
	}
	return OpenPath(path)
}

// OpenPath opens the database at path, creating it and its directory.
func OpenPath(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Manager{db: db, nav: &navWriter{db: db, delay: saveDebounce}}, nil
}

// Close writes a pending navigation snapshot and closes the database.
func (m *Manager) Close() error {
	var flushErr error
	if m.nav != nil {
		flushErr = m.nav.flush()
	}
	return errors.Join(flushErr, m.db.Close())
}

// GetNavigation returns the saved snapshot, or nil on first run.
func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// DB exposes the database handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveNavigation schedules a write of the navigation snapshot. Bursts of
// focus changes collapse into one write.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.nav.schedule(state)
}

// navWriter delays snapshot writes until focus has settled.
type navWriter struct {
	db    *sql.DB
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *NavigationState
}

func (w *navWriter) schedule(state NavigationState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = &state
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		if err := w.flush(); err != nil {
			log.Printf("save navigation: %v", err)
		}
	})
}

// flush writes the pending snapshot now, if any.
func (w *navWriter) flush() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending == nil {
		return nil
	}
	return saveNavigation(w.db, *pending)
}
