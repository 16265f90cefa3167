// ABOUTME: Blood pressure reading operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// CreateBPReading stores a new BP reading and assigns its id.
func (s *Store) CreateBPReading(r *models.BPReading) error {
	id, err := s.nextID(bpPrefix)
	if err != nil {
		return err
	}
	r.ID = id
	return s.put(recordKey(bpPrefix, id), r)
}

func (s *Store) listBP(start, end string, anxietyOnly bool) ([]models.BPReading, error) {
	all, err := listPrefix[models.BPReading](s, bpPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.BPReading
	for _, r := range all {
		if !inRange(r.Date, start, end) {
			continue
		}
		if anxietyOnly && !r.IsAnxietyRelated {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// ListBPReadings returns readings within an inclusive date range, ordered by
// timestamp ascending.
func (s *Store) ListBPReadings(start, end string) ([]models.BPReading, error) {
	return s.listBP(start, end, false)
}

// AnxietyRelatedBPReadings returns readings flagged as anxiety-related
// within an inclusive date range.
func (s *Store) AnxietyRelatedBPReadings(start, end string) ([]models.BPReading, error) {
	return s.listBP(start, end, true)
}
