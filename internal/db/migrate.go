package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the session schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		position     INTEGER NOT NULL,
		title        TEXT NOT NULL CHECK (trim(title) <> ''),
		is_completed INTEGER NOT NULL DEFAULT 0 CHECK (is_completed IN (0, 1)),
		priority     TEXT NOT NULL DEFAULT 'do'
		             CHECK (priority IN ('do', 'schedule', 'delegate', 'delete')),
		due_date     TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS subtasks (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		title        TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0 CHECK (is_completed IN (0, 1))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id, position)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL CHECK (trim(title) <> ''),
		start_ns    INTEGER NOT NULL,
		end_ns      INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		CHECK (end_ns > start_ns)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_ns)`,
	`CREATE TABLE IF NOT EXISTS messages (
		seq       INTEGER PRIMARY KEY AUTOINCREMENT,
		id        TEXT NOT NULL UNIQUE,
		role      TEXT NOT NULL CHECK (role IN ('user', 'model', 'system')),
		content   TEXT NOT NULL,
		timestamp TEXT NOT NULL
	)`,
	`CREATE TRIGGER IF NOT EXISTS messages_no_update BEFORE UPDATE ON messages
	BEGIN
		SELECT RAISE(ABORT, 'messages are append-only');
	END`,
	`CREATE TRIGGER IF NOT EXISTS messages_no_delete BEFORE DELETE ON messages
	BEGIN
		SELECT RAISE(ABORT, 'messages are append-only');
	END`,
}
