package state

import (
	"database/sql"
	"errors"
	"time"
)

// historyLimit is the number of watch history rows kept.
const historyLimit = 100

// WatchEntry is one row of the watch history.
type WatchEntry struct {
	ChannelID string
	WatchedAt time.Time
}

// RecordWatch appends a history entry and trims old rows.
func (m *Manager) RecordWatch(channelID string, at time.Time) error {
	if _, err := m.db.Exec(`
		INSERT INTO watch_history (channel_id, watched_at) VALUES (?, ?)
	`, channelID, at.Unix()); err != nil {
		return err
	}
	_, err := m.db.Exec(`
		DELETE FROM watch_history WHERE id NOT IN (
			SELECT id FROM watch_history ORDER BY watched_at DESC, id DESC LIMIT ?
		)
	`, historyLimit)
	return err
}

// RecentWatched returns up to limit entries, newest first.
func (m *Manager) RecentWatched(limit int) ([]WatchEntry, error) {
	rows, err := m.db.Query(`
		SELECT channel_id, watched_at FROM watch_history
		ORDER BY watched_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []WatchEntry
	for rows.Next() {
		var e WatchEntry
		var ts int64
		if err := rows.Scan(&e.ChannelID, &ts); err != nil {
			return nil, err
		}
		e.WatchedAt = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastWatched returns the most recent entry, or nil when the history is
// empty.
func (m *Manager) LastWatched() (*WatchEntry, error) {
	var e WatchEntry
	var ts int64
	err := m.db.QueryRow(`
		SELECT channel_id, watched_at FROM watch_history
		ORDER BY watched_at DESC, id DESC LIMIT 1
	`).Scan(&e.ChannelID, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // empty history is valid
	}
	if err != nil {
		return nil, err
	}
	e.WatchedAt = time.Unix(ts, 0)
	return &e, nil
}
