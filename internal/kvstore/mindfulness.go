// ABOUTME: Mindfulness session operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// CreateMindfulnessSession stores a new session and assigns its id.
func (s *Store) CreateMindfulnessSession(m *models.MindfulnessSession) error {
	id, err := s.nextID(mindfulnessPrefix)
	if err != nil {
		return err
	}
	m.ID = id
	return s.put(recordKey(mindfulnessPrefix, id), m)
}

func (s *Store) listSessions(start, end string, completedOnly bool) ([]models.MindfulnessSession, error) {
	all, err := listPrefix[models.MindfulnessSession](s, mindfulnessPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.MindfulnessSession
	for _, m := range all {
		if !inRange(m.Date, start, end) {
			continue
		}
		if completedOnly && !m.Completed {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// ListMindfulnessSessions returns sessions within an inclusive date range.
func (s *Store) ListMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error) {
	return s.listSessions(start, end, false)
}

// CompletedMindfulnessSessions returns completed sessions within a range.
func (s *Store) CompletedMindfulnessSessions(start, end string) ([]models.MindfulnessSession, error) {
	return s.listSessions(start, end, true)
}
