// ABOUTME: Energy log and task breakdown operations for the key-value backend.
package kvstore

import (
	"fmt"
	"sort"

	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
)

// CreateEnergyLog stores a new energy check-in and assigns its id.
func (s *Store) CreateEnergyLog(l *models.EnergyLog) error {
	id, err := s.nextID(energyPrefix)
	if err != nil {
		return err
	}
	l.ID = id
	return s.put(recordKey(energyPrefix, id), l)
}

// ListEnergyLogs returns logs within an inclusive date range.
func (s *Store) ListEnergyLogs(start, end string) ([]models.EnergyLog, error) {
	all, err := listPrefix[models.EnergyLog](s, energyPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.EnergyLog
	for _, l := range all {
		if inRange(l.Date, start, end) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

// LatestEnergyLog returns the most recent energy log, or storage.ErrNotFound
// when none exist.
func (s *Store) LatestEnergyLog() (*models.EnergyLog, error) {
	all, err := listPrefix[models.EnergyLog](s, energyPrefix)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("latest energy log: %w", storage.ErrNotFound)
	}
	latest := all[0]
	for _, l := range all[1:] {
		if l.Timestamp.After(latest.Timestamp) {
			latest = l
		}
	}
	return &latest, nil
}

// CreateTaskBreakdown stores a new task breakdown and assigns its id.
func (s *Store) CreateTaskBreakdown(t *models.TaskBreakdown) error {
	id, err := s.nextID(taskPrefix)
	if err != nil {
		return err
	}
	t.ID = id
	return s.put(recordKey(taskPrefix, id), t)
}

// GetTaskBreakdown loads a task breakdown by id.
func (s *Store) GetTaskBreakdown(id int64) (*models.TaskBreakdown, error) {
	return getRecord[models.TaskBreakdown](s, recordKey(taskPrefix, id))
}

// UpdateTaskBreakdown rewrites an existing task breakdown.
func (s *Store) UpdateTaskBreakdown(t *models.TaskBreakdown) error {
	if _, err := s.GetTaskBreakdown(t.ID); err != nil {
		return err
	}
	return s.put(recordKey(taskPrefix, t.ID), t)
}

// ListTaskBreakdowns returns task breakdowns, optionally filtered by status,
// most recent first.
func (s *Store) ListTaskBreakdowns(status *models.TaskStatus) ([]models.TaskBreakdown, error) {
	all, err := listPrefix[models.TaskBreakdown](s, taskPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.TaskBreakdown
	for _, t := range all {
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
