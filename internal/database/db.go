// Package database persists the application snapshot in SQLite. The whole
// snapshot is the unit of persistence: Save replaces every table inside a
// single transaction and Load rebuilds the snapshot from scratch, so the
// file always holds exactly one consistent state.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"daykeeper/internal/store"
)

// Database is the SQLite-backed store.
type Database struct {
	DB *sql.DB
}

var _ store.Store = (*Database)(nil)

// Open opens (or creates) the database file and ensures the schema.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", "database", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapErr("open", "database", path, err)
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS reminders (
			id TEXT PRIMARY KEY,
			day_key TEXT NOT NULL,
			text TEXT NOT NULL,
			time TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			recurrence TEXT,
			completed_dates TEXT,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS day_checklist (
			id TEXT PRIMARY KEY,
			day_key TEXT NOT NULL,
			text TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS day_notes (
			day_key TEXT PRIMARY KEY,
			note_id TEXT NOT NULL,
			content TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS day_recurring_done (
			day_key TEXT NOT NULL,
			item_id TEXT NOT NULL,
			PRIMARY KEY (day_key, item_id)
		);`,
		`CREATE TABLE IF NOT EXISTS recurring_items (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			recurrence TEXT NOT NULL,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS period_checklist (
			id TEXT PRIMARY KEY,
			scope TEXT NOT NULL,
			period_key TEXT NOT NULL,
			text TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS period_notes (
			scope TEXT NOT NULL,
			period_key TEXT NOT NULL,
			note_id TEXT NOT NULL,
			content TEXT NOT NULL,
			PRIMARY KEY (scope, period_key)
		);`,
		`CREATE TABLE IF NOT EXISTS alarms (
			id TEXT PRIMARY KEY,
			time TEXT NOT NULL,
			label TEXT,
			days TEXT,
			enabled INTEGER DEFAULT 1,
			one_time INTEGER DEFAULT 0,
			target_date TEXT,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS timers (
			id TEXT PRIMARY KEY,
			label TEXT,
			initial INTEGER NOT NULL,
			remaining INTEGER NOT NULL,
			status TEXT NOT NULL,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS notebook_pages (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT,
			created_at TEXT,
			updated_at TEXT,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.Exec(query); err != nil {
			return wrapErr("create", "schema", "", fmt.Errorf("%w in %q", err, query))
		}
	}
	return nil
}
