// ABOUTME: Mood log operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// CreateMoodLog stores a new mood log and assigns its id.
func (s *Store) CreateMoodLog(m *models.MoodLog) error {
	id, err := s.nextID(moodPrefix)
	if err != nil {
		return err
	}
	m.ID = id
	return s.put(recordKey(moodPrefix, id), m)
}

// ListMoodLogs returns logs within an inclusive date range, ordered by
// timestamp ascending.
func (s *Store) ListMoodLogs(start, end string) ([]models.MoodLog, error) {
	all, err := listPrefix[models.MoodLog](s, moodPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.MoodLog
	for _, l := range all {
		if inRange(l.Date, start, end) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// MoodLogsOn returns the logs recorded on a single calendar date.
func (s *Store) MoodLogsOn(date string) ([]models.MoodLog, error) {
	return s.ListMoodLogs(date, date)
}

// DeleteMoodLog removes a mood log by id.
func (s *Store) DeleteMoodLog(id int64) error {
	return s.deleteKey(recordKey(moodPrefix, id))
}
