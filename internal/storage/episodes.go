// ABOUTME: Anxiety episode persistence with start/end lifecycle.
// ABOUTME: Duration is derived from start/end times, never stored.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// EpisodeOutcome carries the fields recorded when an episode ends.
type EpisodeOutcome struct {
	InterventionsUsed         []models.InterventionType
	InterventionEffectiveness map[models.InterventionType]int
	PeakAnxietyLevel          *int
	PostEpisodeMood           *int
	PostEpisodeAnxiety        *int
	Notes                     *string
}

// CreateEpisode stores a new anxiety episode and assigns its id.
func (d *DB) CreateEpisode(e *models.AnxietyEpisode) error {
	var end any
	if e.EndTime != nil {
		end = e.EndTime.Format(time.RFC3339)
	}
	return d.insertRecord("anxiety_episodes",
		[]string{"date", "start_time", "end_time"},
		[]any{e.Date, e.StartTime.Format(time.RFC3339), end},
		func(id int64) ([]byte, error) {
			e.ID = id
			return json.Marshal(e)
		})
}

// GetEpisode loads an episode by id.
func (d *DB) GetEpisode(id int64) (*models.AnxietyEpisode, error) {
	return getRecord[models.AnxietyEpisode](d, "anxiety_episodes", id)
}

// EndEpisode closes an ongoing episode, recording its outcome. Fails with
// ErrNotFound for a missing id and rejects end times before the start.
func (d *DB) EndEpisode(id int64, end time.Time, outcome EpisodeOutcome) error {
	e, err := d.GetEpisode(id)
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

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal episode %d: %w", id, err)
	}
	return d.updateRecord("anxiety_episodes", id,
		[]string{"end_time"}, []any{end.Format(time.RFC3339)}, data)
}

// AddEpisodeBPReading appends an embedded BP snapshot to an ongoing episode.
func (d *DB) AddEpisodeBPReading(id int64, reading models.EpisodeBPReading) error {
	e, err := d.GetEpisode(id)
	if err != nil {
		return err
	}

	// Copy-on-write: never mutate the loaded slice in place.
	readings := make([]models.EpisodeBPReading, 0, len(e.BPReadings)+1)
	readings = append(readings, e.BPReadings...)
	readings = append(readings, reading)
	e.BPReadings = readings

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal episode %d: %w", id, err)
	}
	return d.updateRecord("anxiety_episodes", id, nil, nil, data)
}

// ListEpisodes returns episodes within an inclusive date range, most recent
// first.
func (d *DB) ListEpisodes(start, end string) ([]models.AnxietyEpisode, error) {
	return queryRecords[models.AnxietyEpisode](d,
		"SELECT data FROM anxiety_episodes WHERE date >= ? AND date <= ? ORDER BY start_time DESC", start, end)
}

// RecentEpisodes returns episodes on or after the given date, most recent
// first.
func (d *DB) RecentEpisodes(since string) ([]models.AnxietyEpisode, error) {
	return queryRecords[models.AnxietyEpisode](d,
		"SELECT data FROM anxiety_episodes WHERE date >= ? ORDER BY start_time DESC", since)
}
