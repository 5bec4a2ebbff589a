package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			view TEXT NOT NULL,
			focus_target TEXT,
			origin_view TEXT,
			origin_target TEXT,
			guide_country TEXT,
			favorites_only INTEGER NOT NULL DEFAULT 0,
			grid_card TEXT
		);

		CREATE TABLE IF NOT EXISTS favorites (
			channel_id TEXT PRIMARY KEY,
			added_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS watch_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			channel_id TEXT NOT NULL,
			watched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_watch_history_watched_at ON watch_history(watched_at DESC);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			volume INTEGER,
			muted INTEGER NOT NULL DEFAULT 0,
			favorites_seeded INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add guide_category column if missing
	_, _ = db.Exec(`ALTER TABLE navigation_state ADD COLUMN guide_category TEXT`)

	return nil
}
