// ABOUTME: Special interest and interest session persistence (schema v2 collections).
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateSpecialInterest stores a new special interest and assigns its id.
func (d *DB) CreateSpecialInterest(i *models.SpecialInterest) error {
	return d.insertRecord("special_interests",
		[]string{"name", "category", "currently_active", "created_at"},
		[]any{i.Name, i.Category, boolInt(i.CurrentlyActive), i.CreatedAt.Format(time.RFC3339)},
		func(id int64) ([]byte, error) {
			i.ID = id
			return json.Marshal(i)
		})
}

// GetSpecialInterest loads a special interest by id.
func (d *DB) GetSpecialInterest(id int64) (*models.SpecialInterest, error) {
	return getRecord[models.SpecialInterest](d, "special_interests", id)
}

// UpdateSpecialInterest rewrites an existing special interest.
func (d *DB) UpdateSpecialInterest(i *models.SpecialInterest) error {
	data, err := json.Marshal(i)
	if err != nil {
		return fmt.Errorf("marshal special interest %d: %w", i.ID, err)
	}
	return d.updateRecord("special_interests", i.ID,
		[]string{"name", "category", "currently_active"},
		[]any{i.Name, i.Category, boolInt(i.CurrentlyActive)}, data)
}

// ListSpecialInterests returns interests, newest first. When activeOnly is
// set, paused interests are skipped.
func (d *DB) ListSpecialInterests(activeOnly bool) ([]models.SpecialInterest, error) {
	if activeOnly {
		return queryRecords[models.SpecialInterest](d,
			"SELECT data FROM special_interests WHERE currently_active = 1 ORDER BY created_at DESC, id DESC")
	}
	return queryRecords[models.SpecialInterest](d,
		"SELECT data FROM special_interests ORDER BY created_at DESC, id DESC")
}

// CreateInterestSession stores a new interest session and assigns its id.
func (d *DB) CreateInterestSession(s *models.InterestSession) error {
	return d.insertRecord("interest_sessions",
		[]string{"interest_id", "date", "timestamp", "session_type"},
		[]any{s.InterestID, s.Date, s.Timestamp.Format(time.RFC3339), string(s.SessionType)},
		func(id int64) ([]byte, error) {
			s.ID = id
			return json.Marshal(s)
		})
}

// ListInterestSessions returns one interest's sessions within an inclusive
// date range, most recent first.
func (d *DB) ListInterestSessions(interestID int64, start, end string) ([]models.InterestSession, error) {
	return queryRecords[models.InterestSession](d,
		`SELECT data FROM interest_sessions WHERE interest_id = ? AND date >= ? AND date <= ?
		 ORDER BY timestamp DESC, id DESC`, interestID, start, end)
}

// ListAllInterestSessions returns sessions across all interests within an
// inclusive date range, most recent first.
func (d *DB) ListAllInterestSessions(start, end string) ([]models.InterestSession, error) {
	return queryRecords[models.InterestSession](d,
		`SELECT data FROM interest_sessions WHERE date >= ? AND date <= ?
		 ORDER BY timestamp DESC, id DESC`, start, end)
}
