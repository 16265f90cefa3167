// ABOUTME: Versioned SQLite schema expressed as ordered additive migrations.
// ABOUTME: Each collection stores its full record as JSON plus indexed query columns.
package storage

import "fmt"

// migration is one additive schema step. Shipped steps are never mutated or
// dropped; new versions only add collections and indexes. Records written
// under an old version stay valid because new fields are optional with
// defined defaults.
type migration struct {
	version int
	name    string
	stmts   string
}

var migrations = []migration{
	{
		version: 1,
		name:    "core wellness collections",
		stmts: `
		CREATE TABLE IF NOT EXISTS mood_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_mood_logs_date ON mood_logs(date);

		CREATE TABLE IF NOT EXISTS anxiety_episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_anxiety_episodes_date ON anxiety_episodes(date);

		CREATE TABLE IF NOT EXISTS bp_readings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			anxiety_related INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_bp_readings_date ON bp_readings(date);

		CREATE TABLE IF NOT EXISTS planned_activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			time_block TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_planned_activities_date ON planned_activities(date);
		CREATE INDEX IF NOT EXISTS idx_planned_activities_category ON planned_activities(category);

		CREATE TABLE IF NOT EXISTS activity_library (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			is_default INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_activity_library_category ON activity_library(category);

		CREATE TABLE IF NOT EXISTS thought_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			emotion TEXT NOT NULL,
			is_complete INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_thought_records_date ON thought_records(date);

		CREATE TABLE IF NOT EXISTS behavioral_experiments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_behavioral_experiments_date ON behavioral_experiments(date);

		CREATE TABLE IF NOT EXISTS anxiety_hierarchy (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			current_distress INTEGER NOT NULL,
			is_complete INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS mindfulness_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			practice_type TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_mindfulness_sessions_date ON mindfulness_sessions(date);

		CREATE TABLE IF NOT EXISTS user_profile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			data TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			data TEXT NOT NULL
		);
		`,
	},
	{
		version: 2,
		name:    "energy, task, routine, and interest collections",
		stmts: `
		CREATE TABLE IF NOT EXISTS energy_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_energy_logs_date ON energy_logs(date);

		CREATE TABLE IF NOT EXISTS task_breakdowns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			status TEXT NOT NULL,
			is_template INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_task_breakdowns_status ON task_breakdowns(status);

		CREATE TABLE IF NOT EXISTS routine_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			is_default INTEGER NOT NULL DEFAULT 0,
			times_used INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_routine_templates_times_used ON routine_templates(times_used);

		CREATE TABLE IF NOT EXISTS special_interests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			currently_active INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_special_interests_category ON special_interests(category);

		CREATE TABLE IF NOT EXISTS interest_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			interest_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			session_type TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_interest_sessions_interest ON interest_sessions(interest_id);
		CREATE INDEX IF NOT EXISTS idx_interest_sessions_date ON interest_sessions(date);
		`,
	},
}

// migrateSchema applies pending migrations in order, tracked by the SQLite
// user_version pragma.
func (d *DB) migrateSchema() error {
	var current int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := d.db.Exec(m.stmts); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := d.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			return fmt.Errorf("set schema version %d: %w", m.version, err)
		}
	}
	return nil
}

// SchemaVersion returns the currently applied schema version.
func (d *DB) SchemaVersion() (int, error) {
	var v int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}
