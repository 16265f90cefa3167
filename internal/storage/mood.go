// ABOUTME: Mood log persistence and date-range queries.
// ABOUTME: Query helpers select rows; aggregation lives in the stats package.
package storage

import (
	"encoding/json"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateMoodLog stores a new mood log and assigns its id.
func (d *DB) CreateMoodLog(m *models.MoodLog) error {
	return d.insertRecord("mood_logs",
		[]string{"date", "timestamp"},
		[]any{m.Date, m.Timestamp.Format(time.RFC3339)},
		func(id int64) ([]byte, error) {
			m.ID = id
			return json.Marshal(m)
		})
}

// ListMoodLogs returns logs within an inclusive date range, ordered by
// timestamp ascending.
func (d *DB) ListMoodLogs(start, end string) ([]models.MoodLog, error) {
	return queryRecords[models.MoodLog](d,
		"SELECT data FROM mood_logs WHERE date >= ? AND date <= ? ORDER BY timestamp", start, end)
}

// MoodLogsOn returns the logs recorded on a single calendar date.
func (d *DB) MoodLogsOn(date string) ([]models.MoodLog, error) {
	return queryRecords[models.MoodLog](d,
		"SELECT data FROM mood_logs WHERE date = ? ORDER BY timestamp", date)
}

// DeleteMoodLog removes a mood log by id.
func (d *DB) DeleteMoodLog(id int64) error {
	return d.deleteRecord("mood_logs", id)
}
