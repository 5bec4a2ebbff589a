package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/sombox/internal/db"
)

// InitFavorites returns the stored favorites. On the first run the table is
// seeded with seed; later runs ignore it so unstarred defaults stay unstarred.
func (m *Manager) InitFavorites(seed []string) ([]string, error) {
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		var seeded bool
		err := tx.QueryRow(`SELECT favorites_seeded FROM settings WHERE id = 1`).Scan(&seeded)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if seeded {
			return nil
		}

		now := time.Now().Unix()
		for _, id := range seed {
			if _, err := tx.Exec(`
				INSERT OR IGNORE INTO favorites (channel_id, added_at) VALUES (?, ?)
			`, id, now); err != nil {
				return err
			}
		}

		_, err = tx.Exec(`
			INSERT INTO settings (id, favorites_seeded) VALUES (1, 1)
			ON CONFLICT(id) DO UPDATE SET favorites_seeded = 1
		`)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m.Favorites()
}

// Favorites returns the starred channel ids in the order they were added.
func (m *Manager) Favorites() ([]string, error) {
	rows, err := m.db.Query(`SELECT channel_id FROM favorites ORDER BY added_at, channel_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetFavorite stars or unstars a channel.
func (m *Manager) SetFavorite(channelID string, on bool) error {
	if !on {
		_, err := m.db.Exec(`DELETE FROM favorites WHERE channel_id = ?`, channelID)
		return err
	}
	_, err := m.db.Exec(`
		INSERT OR IGNORE INTO favorites (channel_id, added_at) VALUES (?, ?)
	`, channelID, time.Now().Unix())
	return err
}
