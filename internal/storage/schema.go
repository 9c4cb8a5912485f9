// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for metric readings and the singleton user profile.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		value REAL NOT NULL,
		unit TEXT NOT NULL,
		source TEXT NOT NULL,
		raw_label TEXT,
		recorded_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		birth_year INTEGER NOT NULL,
		gender TEXT,
		height_cm REAL,
		weight_kg REAL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_readings_kind ON readings(kind);
	CREATE INDEX IF NOT EXISTS idx_readings_recorded ON readings(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_readings_kind_recorded ON readings(kind, recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
