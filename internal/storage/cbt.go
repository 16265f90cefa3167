// ABOUTME: Persistence for CBT tools: thought records, experiments, exposure hierarchy.
// ABOUTME: Exposure attempts append copy-on-write and re-evaluate item completion.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateThoughtRecord stores a new thought record and assigns its id.
func (d *DB) CreateThoughtRecord(r *models.ThoughtRecord) error {
	return d.insertRecord("thought_records",
		[]string{"date", "timestamp", "emotion", "is_complete"},
		[]any{r.Date, r.Timestamp.Format(time.RFC3339), string(r.Emotion), boolInt(r.IsComplete)},
		func(id int64) ([]byte, error) {
			r.ID = id
			return json.Marshal(r)
		})
}

// GetThoughtRecord loads a thought record by id.
func (d *DB) GetThoughtRecord(id int64) (*models.ThoughtRecord, error) {
	return getRecord[models.ThoughtRecord](d, "thought_records", id)
}

// UpdateThoughtRecord rewrites an existing thought record. IsComplete may
// only be set once every required step is filled.
func (d *DB) UpdateThoughtRecord(r *models.ThoughtRecord) error {
	if r.IsComplete && !r.RequiredStepsFilled() {
		return fmt.Errorf("thought record %d: cannot mark complete with required steps missing", r.ID)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal thought record %d: %w", r.ID, err)
	}
	return d.updateRecord("thought_records", r.ID,
		[]string{"is_complete"}, []any{boolInt(r.IsComplete)}, data)
}

// ListThoughtRecords returns records within an inclusive date range, most
// recent first.
func (d *DB) ListThoughtRecords(start, end string) ([]models.ThoughtRecord, error) {
	return queryRecords[models.ThoughtRecord](d,
		"SELECT data FROM thought_records WHERE date >= ? AND date <= ? ORDER BY timestamp DESC", start, end)
}

// IncompleteThoughtRecords returns records still missing required steps.
func (d *DB) IncompleteThoughtRecords() ([]models.ThoughtRecord, error) {
	return queryRecords[models.ThoughtRecord](d,
		"SELECT data FROM thought_records WHERE is_complete = 0 ORDER BY timestamp DESC")
}

// CreateExperiment stores a new behavioral experiment and assigns its id.
func (d *DB) CreateExperiment(e *models.BehavioralExperiment) error {
	return d.insertRecord("behavioral_experiments",
		[]string{"date", "completed"},
		[]any{e.Date, boolInt(e.Completed)},
		func(id int64) ([]byte, error) {
			e.ID = id
			return json.Marshal(e)
		})
}

// GetExperiment loads an experiment by id.
func (d *DB) GetExperiment(id int64) (*models.BehavioralExperiment, error) {
	return getRecord[models.BehavioralExperiment](d, "behavioral_experiments", id)
}

// ExperimentOutcome carries the fields recorded when an experiment is run.
type ExperimentOutcome struct {
	ActualOutcome       string
	Learnings           *string
	BeliefStrengthAfter int
}

// CompleteExperiment records an experiment's outcome and revised belief
// strength. Fails with ErrNotFound for a missing id.
func (d *DB) CompleteExperiment(id int64, outcome ExperimentOutcome) error {
	e, err := d.GetExperiment(id)
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

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal experiment %d: %w", id, err)
	}
	return d.updateRecord("behavioral_experiments", id,
		[]string{"completed"}, []any{1}, data)
}

// ListExperiments returns experiments within an inclusive date range, most
// recent first.
func (d *DB) ListExperiments(start, end string) ([]models.BehavioralExperiment, error) {
	return queryRecords[models.BehavioralExperiment](d,
		"SELECT data FROM behavioral_experiments WHERE date >= ? AND date <= ? ORDER BY date DESC", start, end)
}

// IncompleteExperiments returns experiments not yet run.
func (d *DB) IncompleteExperiments() ([]models.BehavioralExperiment, error) {
	return queryRecords[models.BehavioralExperiment](d,
		"SELECT data FROM behavioral_experiments WHERE completed = 0 ORDER BY date DESC")
}

// CreateHierarchyItem stores a new exposure hierarchy item and assigns its id.
func (d *DB) CreateHierarchyItem(item *models.AnxietyHierarchyItem) error {
	return d.insertRecord("anxiety_hierarchy",
		[]string{"current_distress", "is_complete"},
		[]any{item.CurrentDistress, boolInt(item.IsComplete)},
		func(id int64) ([]byte, error) {
			item.ID = id
			return json.Marshal(item)
		})
}

// GetHierarchyItem loads a hierarchy item by id.
func (d *DB) GetHierarchyItem(id int64) (*models.AnxietyHierarchyItem, error) {
	return getRecord[models.AnxietyHierarchyItem](d, "anxiety_hierarchy", id)
}

// ListHierarchy returns all hierarchy items ordered by current distress,
// highest first.
func (d *DB) ListHierarchy() ([]models.AnxietyHierarchyItem, error) {
	return queryRecords[models.AnxietyHierarchyItem](d,
		"SELECT data FROM anxiety_hierarchy ORDER BY current_distress DESC")
}

// AddExposureAttempt appends an attempt to a hierarchy item, updates the
// current distress from the attempt's post-exposure rating, and marks the
// item complete once distress reaches its target. The attempts slice is
// replaced, never mutated in place, so concurrent readers keep a stable
// view. Returns the updated item, or ErrNotFound for a missing id.
func (d *DB) AddExposureAttempt(id int64, attempt models.ExposureAttempt) (*models.AnxietyHierarchyItem, error) {
	item, err := d.GetHierarchyItem(id)
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

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal hierarchy item %d: %w", id, err)
	}
	if err := d.updateRecord("anxiety_hierarchy", id,
		[]string{"current_distress", "is_complete"},
		[]any{item.CurrentDistress, boolInt(item.IsComplete)}, data); err != nil {
		return nil, err
	}
	return item, nil
}
