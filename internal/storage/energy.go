// ABOUTME: Energy log and task breakdown persistence (schema v2 collections).
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateEnergyLog stores a new energy check-in and assigns its id.
func (d *DB) CreateEnergyLog(l *models.EnergyLog) error {
	return d.insertRecord("energy_logs",
		[]string{"date", "timestamp"},
		[]any{l.Date, l.Timestamp.Format(time.RFC3339)},
		func(id int64) ([]byte, error) {
			l.ID = id
			return json.Marshal(l)
		})
}

// ListEnergyLogs returns logs within an inclusive date range.
func (d *DB) ListEnergyLogs(start, end string) ([]models.EnergyLog, error) {
	return queryRecords[models.EnergyLog](d,
		"SELECT data FROM energy_logs WHERE date >= ? AND date <= ? ORDER BY date", start, end)
}

// LatestEnergyLog returns the most recent energy log, or ErrNotFound when
// none exist.
func (d *DB) LatestEnergyLog() (*models.EnergyLog, error) {
	logs, err := queryRecords[models.EnergyLog](d,
		"SELECT data FROM energy_logs ORDER BY timestamp DESC LIMIT 1")
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("latest energy log: %w", ErrNotFound)
	}
	return &logs[0], nil
}

// CreateTaskBreakdown stores a new task breakdown and assigns its id.
func (d *DB) CreateTaskBreakdown(t *models.TaskBreakdown) error {
	return d.insertRecord("task_breakdowns",
		[]string{"created_at", "status", "is_template"},
		[]any{t.CreatedAt.Format(time.RFC3339), string(t.Status), boolInt(t.IsTemplate)},
		func(id int64) ([]byte, error) {
			t.ID = id
			return json.Marshal(t)
		})
}

// GetTaskBreakdown loads a task breakdown by id.
func (d *DB) GetTaskBreakdown(id int64) (*models.TaskBreakdown, error) {
	return getRecord[models.TaskBreakdown](d, "task_breakdowns", id)
}

// UpdateTaskBreakdown rewrites an existing task breakdown. Steps are
// replaced wholesale; callers pass a new steps slice rather than mutating
// the stored one.
func (d *DB) UpdateTaskBreakdown(t *models.TaskBreakdown) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal task breakdown %d: %w", t.ID, err)
	}
	return d.updateRecord("task_breakdowns", t.ID,
		[]string{"status"}, []any{string(t.Status)}, data)
}

// ListTaskBreakdowns returns task breakdowns, optionally filtered by status,
// most recent first.
func (d *DB) ListTaskBreakdowns(status *models.TaskStatus) ([]models.TaskBreakdown, error) {
	if status != nil {
		return queryRecords[models.TaskBreakdown](d,
			"SELECT data FROM task_breakdowns WHERE status = ? ORDER BY created_at DESC", string(*status))
	}
	return queryRecords[models.TaskBreakdown](d,
		"SELECT data FROM task_breakdowns ORDER BY created_at DESC")
}
