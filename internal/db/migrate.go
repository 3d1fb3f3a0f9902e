package db

import (
	"context"
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		duration     INTEGER NOT NULL DEFAULT 0 CHECK(duration >= 0),
		study_hours  INTEGER NOT NULL DEFAULT 0 CHECK(study_hours >= 0),
		observations TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_date ON reports(date)`,

	// Singleton rows are pinned to id 'default'.
	`CREATE TABLE IF NOT EXISTS goals (
		id              TEXT PRIMARY KEY DEFAULT 'default' CHECK(id = 'default'),
		monthly_minutes INTEGER NOT NULL DEFAULT 0 CHECK(monthly_minutes >= 0),
		updated_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	)`,
	`CREATE TABLE IF NOT EXISTS personal_info (
		id         TEXT PRIMARY KEY DEFAULT 'default' CHECK(id = 'default'),
		name       TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	)`,
	`CREATE TABLE IF NOT EXISTS work_days (
		day_of_week INTEGER PRIMARY KEY CHECK(day_of_week BETWEEN 0 AND 6),
		is_selected INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	)`,
}

// seeds restore the default singleton rows and the seven weekday rows.
// They are idempotent.
var seeds = []string{
	`INSERT OR IGNORE INTO goals (id, monthly_minutes) VALUES ('default', 0)`,
	`INSERT OR IGNORE INTO personal_info (id, name, email) VALUES ('default', '', '')`,
	`INSERT OR IGNORE INTO work_days (day_of_week, is_selected) VALUES (0, 0), (1, 0), (2, 0), (3, 0), (4, 0), (5, 0), (6, 0)`,
}

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// SeedDefaults inserts default rows that are missing.
func SeedDefaults(ctx context.Context, conn DBTX) error {
	for i, stmt := range seeds {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed %d: %w", i, err)
		}
	}
	return nil
}
