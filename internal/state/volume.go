package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/sombox/internal/db"
)

// VolumeState represents the saved volume state.
type VolumeState struct {
	Volume int // 0-100
	Muted  bool
}

// GetVolume returns the saved volume state, or nil if none was saved.
func (m *Manager) GetVolume() (*VolumeState, error) {
	var volume sql.NullInt64
	var muted bool

	row := m.db.QueryRow(`SELECT volume, muted FROM settings WHERE id = 1`)
	err := row.Scan(&volume, &muted)
	if err == sql.ErrNoRows {
		return nil, nil //nolint:nilnil // caller applies the configured default
	}
	if err != nil {
		return nil, err
	}

	v := dbutil.IntPtr(volume)
	if v == nil {
		return nil, nil //nolint:nilnil // row exists but volume was never saved
	}
	return &VolumeState{Volume: *v, Muted: muted}, nil
}

// SaveVolume persists the volume level to the database.
func (m *Manager) SaveVolume(volume int, muted bool) error {
	_, err := m.db.Exec(`
		INSERT INTO settings (id, volume, muted)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted
	`, volume, muted)
	return err
}
