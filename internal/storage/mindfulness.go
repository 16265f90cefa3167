// ABOUTME: Mindfulness session persistence and range queries.
package storage

import (
	"encoding/json"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateMindfulnessSession stores a new session and assigns its id.
func (d *DB) CreateMindfulnessSession(s *models.MindfulnessSession) error {
	return d.insertRecord("mindfulness_sessions",
		[]string{"date", "timestamp", "practice_type", "completed"},
		[]any{s.Date, s.Timestamp.Format(time.RFC3339), string(s.PracticeType), boolInt(s.Completed)},
		func(id int64) ([]byte, error) {
			s.ID = id
			return json.Marshal(s)
		})
}

// ListMindfulnessSessions returns sessions within an inclusive date range.
func (d *DB) ListMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error) {
	return queryRecords[models.MindfulnessSession](d,
		"SELECT data FROM mindfulness_sessions WHERE date >= ? AND date <= ? ORDER BY timestamp", start, end)
}

// CompletedMindfulnessSessions returns completed sessions within a range.
func (d *DB) CompletedMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error) {
	return queryRecords[models.MindfulnessSession](d,
		"SELECT data FROM mindfulness_sessions WHERE date >= ? AND date <= ? AND completed = 1 ORDER BY timestamp",
		start, end)
}
