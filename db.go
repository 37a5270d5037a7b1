package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

func initDB() (*sql.DB, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	dbDir := filepath.Join(configDir, "dps-airlines-overlay")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	return openDB(filepath.Join(dbDir, "tracker_history.db"))
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS tracker_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		flight_id INTEGER,
		flight_number TEXT,
		pos_x REAL,
		pos_y REAL,
		pos_z REAL,
		heading REAL,
		speed REAL,
		altitude REAL,
		fuel_level REAL,
		phase INTEGER
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return db, nil
}
