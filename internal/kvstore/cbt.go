// ABOUTME: Thought record, experiment, and exposure hierarchy operations for
// ABOUTME: the key-value backend.
package kvstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
)

// CreateThoughtRecord stores a new thought record and assigns its id.
func (s *Store) CreateThoughtRecord(r *models.ThoughtRecord) error {
	id, err := s.nextID(thoughtPrefix)
	if err != nil {
		return err
	}
	r.ID = id
	return s.put(recordKey(thoughtPrefix, id), r)
}

// GetThoughtRecord loads a thought record by id.
func (s *Store) GetThoughtRecord(id int64) (*models.ThoughtRecord, error) {
	return getRecord[models.ThoughtRecord](s, recordKey(thoughtPrefix, id))
}

// UpdateThoughtRecord rewrites an existing thought record. IsComplete may
// only be set once every required step is filled.
func (s *Store) UpdateThoughtRecord(r *models.ThoughtRecord) error {
	if r.IsComplete && !r.RequiredStepsFilled() {
		return fmt.Errorf("thought record %d: cannot mark complete with required steps missing", r.ID)
	}
	if _, err := s.GetThoughtRecord(r.ID); err != nil {
		return err
	}
	return s.put(recordKey(thoughtPrefix, r.ID), r)
}

func sortThoughtsDesc(records []models.ThoughtRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}

// ListThoughtRecords returns records within an inclusive date range, most
// recent first.
func (s *Store) ListThoughtRecords(start, end string) ([]models.ThoughtRecord, error) {
	all, err := listPrefix[models.ThoughtRecord](s, thoughtPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.ThoughtRecord
	for _, r := range all {
		if inRange(r.Date, start, end) {
			out = append(out, r)
		}
	}
	sortThoughtsDesc(out)
	return out, nil
}

// IncompleteThoughtRecords returns records still missing required steps.
func (s *Store) IncompleteThoughtRecords() ([]models.ThoughtRecord, error) {
	all, err := listPrefix[models.ThoughtRecord](s, thoughtPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.ThoughtRecord
	for _, r := range all {
		if !r.IsComplete {
			out = append(out, r)
		}
	}
	sortThoughtsDesc(out)
	return out, nil
}

// CreateExperiment stores a new behavioral experiment and assigns its id.
func (s *Store) CreateExperiment(e *models.BehavioralExperiment) error {
	id, err := s.nextID(experimentPrefix)
	if err != nil {
		return err
	}
	e.ID = id
	return s.put(recordKey(experimentPrefix, id), e)
}

// GetExperiment loads an experiment by id.
func (s *Store) GetExperiment(id int64) (*models.BehavioralExperiment, error) {
	return getRecord[models.BehavioralExperiment](s, recordKey(experimentPrefix, id))
}

// CompleteExperiment records an experiment's outcome and revised belief
// strength. Fails with storage.ErrNotFound for a missing id.
func (s *Store) CompleteExperiment(id int64, outcome storage.ExperimentOutcome) error {
	e, err := s.GetExperiment(id)
	if err != nil {
		return err
	}

	now := time.Now()
	e.Completed = true
	e.CompletedAt = &now
	e.ActualOutcome = &outcome.ActualOutcome
	e.Learnings = outcome.Learnings
	after := outcome.BeliefStrengthAfter
	e.BeliefStrengthAfter = &after

	return s.put(recordKey(experimentPrefix, id), e)
}

func sortExperimentsDesc(experiments []models.BehavioralExperiment) {
	sort.SliceStable(experiments, func(i, j int) bool {
		return experiments[i].Date > experiments[j].Date
	})
}

// ListExperiments returns experiments within an inclusive date range, most
// recent first.
func (s *Store) ListExperiments(start, end string) ([]models.BehavioralExperiment, error) {
	all, err := listPrefix[models.BehavioralExperiment](s, experimentPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.BehavioralExperiment
	for _, e := range all {
		if inRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	sortExperimentsDesc(out)
	return out, nil
}

// IncompleteExperiments returns experiments not yet run.
func (s *Store) IncompleteExperiments() ([]models.BehavioralExperiment, error) {
	all, err := listPrefix[models.BehavioralExperiment](s, experimentPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.BehavioralExperiment
	for _, e := range all {
		if !e.Completed {
			out = append(out, e)
		}
	}
	sortExperimentsDesc(out)
	return out, nil
}

// CreateHierarchyItem stores a new exposure hierarchy item and assigns its id.
func (s *Store) CreateHierarchyItem(item *models.AnxietyHierarchyItem) error {
	id, err := s.nextID(hierarchyPrefix)
	if err != nil {
		return err
	}
	item.ID = id
	return s.put(recordKey(hierarchyPrefix, id), item)
}

// GetHierarchyItem loads a hierarchy item by id.
func (s *Store) GetHierarchyItem(id int64) (*models.AnxietyHierarchyItem, error) {
	return getRecord[models.AnxietyHierarchyItem](s, recordKey(hierarchyPrefix, id))
}

// ListHierarchy returns all hierarchy items ordered by current distress,
// highest first.
func (s *Store) ListHierarchy() ([]models.AnxietyHierarchyItem, error) {
	all, err := listPrefix[models.AnxietyHierarchyItem](s, hierarchyPrefix)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CurrentDistress > all[j].CurrentDistress
	})
	return all, nil
}

// AddExposureAttempt appends an attempt to a hierarchy item, updates the
// current distress from the attempt's post-exposure rating, and marks the
// item complete once distress reaches its target. Returns the updated item,
// or storage.ErrNotFound for a missing id.
func (s *Store) AddExposureAttempt(id int64, attempt models.ExposureAttempt) (*models.AnxietyHierarchyItem, error) {
	item, err := s.GetHierarchyItem(id)
	if err != nil {
		return nil, err
	}

	attempts := make([]models.ExposureAttempt, 0, len(item.ExposureAttempts)+1)
	attempts = append(attempts, item.ExposureAttempts...)
	attempts = append(attempts, attempt)

	item.ExposureAttempts = attempts
	item.CurrentDistress = attempt.DistressAfter
	if item.CurrentDistress <= item.Target() {
		item.IsComplete = true
	}

	if err := s.put(recordKey(hierarchyPrefix, id), item); err != nil {
		return nil, err
	}
	return item, nil
}
