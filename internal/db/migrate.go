package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list re-runs on every startup.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                TEXT PRIMARY KEY,
		email             TEXT NOT NULL UNIQUE,
		name              TEXT NOT NULL,
		current_role      TEXT NOT NULL DEFAULT '',
		life_phase        TEXT NOT NULL DEFAULT '',
		focus_areas       TEXT NOT NULL DEFAULT '[]',
		insight_style     TEXT NOT NULL DEFAULT 'gentle'
		                  CHECK(insight_style IN ('gentle','practical','analytical')),
		ai_enabled        INTEGER NOT NULL DEFAULT 1,
		reminders_enabled INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		entry_date      TEXT NOT NULL,
		entry_type      TEXT NOT NULL DEFAULT 'anytime'
		                CHECK(entry_type IN ('morning','evening','anytime')),
		what_happened   TEXT NOT NULL DEFAULT '',
		wins            TEXT NOT NULL DEFAULT '[]',
		challenges      TEXT NOT NULL DEFAULT '[]',
		gratitude       TEXT NOT NULL DEFAULT '[]',
		lessons_learned TEXT NOT NULL DEFAULT '',
		mood_score      INTEGER NOT NULL DEFAULT 0 CHECK(mood_score BETWEEN 0 AND 10),
		energy_level    INTEGER NOT NULL DEFAULT 0 CHECK(energy_level BETWEEN 0 AND 10),
		tags            TEXT NOT NULL DEFAULT '[]',
		private         INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_date ON journal_entries(user_id, entry_date)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		goal_type  TEXT NOT NULL
		           CHECK(goal_type IN ('weekly','monthly','yearly')),
		category   TEXT NOT NULL
		           CHECK(category IN ('Health','Career','Learning','Mindset','Relationships','Personal')),
		why        TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','completed','paused','archived')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_user_status ON goals(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS weekly_insights (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		week_start     TEXT NOT NULL,
		week_end       TEXT NOT NULL,
		journal_count  INTEGER NOT NULL DEFAULT 0,
		reflection     TEXT NOT NULL,
		goal_summaries TEXT NOT NULL DEFAULT '[]',
		suggestion     TEXT NOT NULL DEFAULT '',
		generated_at   TEXT NOT NULL,
		source_version INTEGER NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_weekly_insights_user_week ON weekly_insights(user_id, week_start)`,
}
