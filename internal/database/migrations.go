package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start; each statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		credits INTEGER NOT NULL DEFAULT 0,
		hours INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	// requires_id is not a foreign key: a prerequisite may name a subject
	// that has not been imported yet, which the validator reports as missing
	`CREATE TABLE IF NOT EXISTS prerequisites (
		subject_id TEXT NOT NULL,
		requires_id TEXT NOT NULL,
		PRIMARY KEY (subject_id, requires_id),
		FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS board_columns (
		id TEXT PRIMARY KEY,
		board_id TEXT NOT NULL,
		title TEXT NOT NULL,
		position INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		UNIQUE (board_id, position)
	)`,

	// The primary key enforces that a subject is placed at most once per board
	`CREATE TABLE IF NOT EXISTS placements (
		board_id TEXT NOT NULL,
		column_id TEXT NOT NULL,
		subject_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (board_id, subject_id),
		UNIQUE (column_id, position),
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		FOREIGN KEY (column_id) REFERENCES board_columns(id) ON DELETE CASCADE,
		FOREIGN KEY (subject_id) REFERENCES subjects(id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_placements_subject ON placements(subject_id)`,

	// Undo snapshots of a board as JSON, newest has the highest seq
	`CREATE TABLE IF NOT EXISTS board_history (
		board_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		snapshot TEXT NOT NULL,
		PRIMARY KEY (board_id, seq),
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS tracks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		current_step INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS track_steps (
		track_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		board_id TEXT,
		PRIMARY KEY (track_id, position),
		FOREIGN KEY (track_id) REFERENCES tracks(id) ON DELETE CASCADE,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE SET NULL
	)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
