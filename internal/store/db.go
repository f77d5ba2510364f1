package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the SQLite archive of generated prompts.
type DB struct {
	*sql.DB
}

func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Background writes from concurrent requests share one connection so
	// SQLite never reports "database is locked".
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &DB{db}
	if err := database.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return database, nil
}

func (db *DB) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS prompt_records (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			mood TEXT NOT NULL DEFAULT '',
			palette TEXT NOT NULL DEFAULT '',
			fonts TEXT NOT NULL DEFAULT '',
			custom_requirement TEXT NOT NULL DEFAULT '',
			generated_text TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_prompt_records_created_at ON prompt_records (created_at);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
