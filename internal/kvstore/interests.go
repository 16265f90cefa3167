// ABOUTME: Special interest and interest session operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// CreateSpecialInterest stores a new special interest and assigns its id.
func (s *Store) CreateSpecialInterest(i *models.SpecialInterest) error {
	id, err := s.nextID(interestPrefix)
	if err != nil {
		return err
	}
	i.ID = id
	return s.put(recordKey(interestPrefix, id), i)
}

// GetSpecialInterest loads a special interest by id.
func (s *Store) GetSpecialInterest(id int64) (*models.SpecialInterest, error) {
	return getRecord[models.SpecialInterest](s, recordKey(interestPrefix, id))
}

// UpdateSpecialInterest rewrites an existing special interest.
func (s *Store) UpdateSpecialInterest(i *models.SpecialInterest) error {
	if _, err := s.GetSpecialInterest(i.ID); err != nil {
		return err
	}
	return s.put(recordKey(interestPrefix, i.ID), i)
}

// ListSpecialInterests returns interests, newest first. When activeOnly is
// set, paused interests are skipped.
func (s *Store) ListSpecialInterests(activeOnly bool) ([]models.SpecialInterest, error) {
	all, err := listPrefix[models.SpecialInterest](s, interestPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.SpecialInterest
	for _, i := range all {
		if activeOnly && !i.CurrentlyActive {
			continue
		}
		out = append(out, i)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateInterestSession stores a new interest session and assigns its id.
func (s *Store) CreateInterestSession(v *models.InterestSession) error {
	id, err := s.nextID(interestSessionPrefix)
	if err != nil {
		return err
	}
	v.ID = id
	return s.put(recordKey(interestSessionPrefix, id), v)
}

func sortSessionsDesc(sessions []models.InterestSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
}

// ListInterestSessions returns one interest's sessions within an inclusive
// date range, most recent first.
func (s *Store) ListInterestSessions(interestID int64, start, end string) ([]models.InterestSession, error) {
	all, err := listPrefix[models.InterestSession](s, interestSessionPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.InterestSession
	for _, v := range all {
		if v.InterestID == interestID && inRange(v.Date, start, end) {
			out = append(out, v)
		}
	}
	sortSessionsDesc(out)
	return out, nil
}

// ListAllInterestSessions returns sessions across all interests within an
// inclusive date range, most recent first.
func (s *Store) ListAllInterestSessions(start, end string) ([]models.InterestSession, error) {
	all, err := listPrefix[models.InterestSession](s, interestSessionPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.InterestSession
	for _, v := range all {
		if inRange(v.Date, start, end) {
			out = append(out, v)
		}
	}
	sortSessionsDesc(out)
	return out, nil
}
