// ABOUTME: Anxiety episode operations for the key-value backend.
package kvstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
)

// CreateEpisode stores a new anxiety episode and assigns its id.
func (s *Store) CreateEpisode(e *models.AnxietyEpisode) error {
	id, err := s.nextID(episodePrefix)
	if err != nil {
		return err
	}
	e.ID = id
	return s.put(recordKey(episodePrefix, id), e)
}

// GetEpisode loads an episode by id.
func (s *Store) GetEpisode(id int64) (*models.AnxietyEpisode, error) {
	return getRecord[models.AnxietyEpisode](s, recordKey(episodePrefix, id))
}

// EndEpisode closes an ongoing episode, recording its outcome. Fails with
// storage.ErrNotFound for a missing id and rejects end times before the start.
func (s *Store) EndEpisode(id int64, end time.Time, outcome storage.EpisodeOutcome) error {
	e, err := s.GetEpisode(id)
	if err != nil {
		return err
	}
	if end.Before(e.StartTime) {
		return fmt.Errorf("end episode %d: end time %s precedes start %s",
			id, end.Format(time.RFC3339), e.StartTime.Format(time.RFC3339))
	}

	e.EndTime = &end
	e.InterventionsUsed = append(e.InterventionsUsed, outcome.InterventionsUsed...)
	for iv, rating := range outcome.InterventionEffectiveness {
		if e.InterventionEffectiveness == nil {
			e.InterventionEffectiveness = make(map[models.InterventionType]int)
		}
		e.InterventionEffectiveness[iv] = rating
	}
	if outcome.PeakAnxietyLevel != nil {
		e.PeakAnxietyLevel = outcome.PeakAnxietyLevel
	}
	if outcome.PostEpisodeMood != nil {
		e.PostEpisodeMood = outcome.PostEpisodeMood
	}
	if outcome.PostEpisodeAnxiety != nil {
		e.PostEpisodeAnxiety = outcome.PostEpisodeAnxiety
	}
	if outcome.Notes != nil {
		e.Notes = outcome.Notes
	}
	return s.put(recordKey(episodePrefix, id), e)
}

// AddEpisodeBPReading appends an embedded BP snapshot to an ongoing episode.
func (s *Store) AddEpisodeBPReading(id int64, reading models.EpisodeBPReading) error {
	e, err := s.GetEpisode(id)
	if err != nil {
		return err
	}

	readings := make([]models.EpisodeBPReading, 0, len(e.BPReadings)+1)
	readings = append(readings, e.BPReadings...)
	readings = append(readings, reading)
	e.BPReadings = readings

	return s.put(recordKey(episodePrefix, id), e)
}

func sortEpisodesDesc(episodes []models.AnxietyEpisode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].StartTime.After(episodes[j].StartTime)
	})
}

// ListEpisodes returns episodes within an inclusive date range, most recent
// first.
func (s *Store) ListEpisodes(start, end string) ([]models.AnxietyEpisode, error) {
	all, err := listPrefix[models.AnxietyEpisode](s, episodePrefix)
	if err != nil {
		return nil, err
	}
	var out []models.AnxietyEpisode
	for _, e := range all {
		if inRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	sortEpisodesDesc(out)
	return out, nil
}

// RecentEpisodes returns episodes on or after the given date, most recent
// first.
func (s *Store) RecentEpisodes(since string) ([]models.AnxietyEpisode, error) {
	all, err := listPrefix[models.AnxietyEpisode](s, episodePrefix)
	if err != nil {
		return nil, err
	}
	var out []models.AnxietyEpisode
	for _, e := range all {
		if e.Date >= since {
			out = append(out, e)
		}
	}
	sortEpisodesDesc(out)
	return out, nil
}
