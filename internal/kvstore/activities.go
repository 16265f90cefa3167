// ABOUTME: Planned activity and activity library operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

func blockOrder(b models.TimeBlock) int {
	switch b {
	case models.BlockMorning:
		return 0
	case models.BlockAfternoon:
		return 1
	default:
		return 2
	}
}

// CreatePlannedActivity stores a new planned activity and assigns its id.
func (s *Store) CreatePlannedActivity(a *models.PlannedActivity) error {
	id, err := s.nextID(activityPrefix)
	if err != nil {
		return err
	}
	a.ID = id
	return s.put(recordKey(activityPrefix, id), a)
}

// GetPlannedActivity loads a planned activity by id.
func (s *Store) GetPlannedActivity(id int64) (*models.PlannedActivity, error) {
	return getRecord[models.PlannedActivity](s, recordKey(activityPrefix, id))
}

// PlannedActivitiesOn returns the activities planned for one date, ordered
// by time block.
func (s *Store) PlannedActivitiesOn(date string) ([]models.PlannedActivity, error) {
	out, err := s.ListPlannedActivities(date, date)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return blockOrder(out[i].TimeBlock) < blockOrder(out[j].TimeBlock)
	})
	return out, nil
}

// ListPlannedActivities returns activities within an inclusive date range.
func (s *Store) ListPlannedActivities(start, end string) ([]models.PlannedActivity, error) {
	all, err := listPrefix[models.PlannedActivity](s, activityPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.PlannedActivity
	for _, a := range all {
		if inRange(a.Date, start, end) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return blockOrder(out[i].TimeBlock) < blockOrder(out[j].TimeBlock)
	})
	return out, nil
}

// ActivitiesByCategory returns activities in one category within a range.
func (s *Store) ActivitiesByCategory(category models.ActivityCategory, start, end string) ([]models.PlannedActivity, error) {
	all, err := s.ListPlannedActivities(start, end)
	if err != nil {
		return nil, err
	}
	var out []models.PlannedActivity
	for _, a := range all {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

// CompleteActivity marks an activity done with its completion ratings and
// updates the activity library entry of the same name when one exists.
func (s *Store) CompleteActivity(id int64, done models.ActivityCompletion) error {
	a, err := s.GetPlannedActivity(id)
	if err != nil {
		return err
	}

	a.Completed = true
	completedAt := done.CompletedAt
	a.CompletedAt = &completedAt
	a.ActualDuration = done.ActualDuration
	a.Enjoyment = done.Enjoyment
	a.Mastery = done.Mastery
	a.MoodBefore = done.MoodBefore
	a.MoodAfter = done.MoodAfter

	if err := s.put(recordKey(activityPrefix, id), a); err != nil {
		return err
	}

	s.recordLibraryUse(a)
	return nil
}

// recordLibraryUse bumps completion stats on the library entry matching the
// finished activity. A missing entry is not an error; ad-hoc activities have
// no library counterpart.
func (s *Store) recordLibraryUse(a *models.PlannedActivity) {
	items, err := listPrefix[models.ActivityLibraryItem](s, libraryPrefix)
	if err != nil {
		return
	}
	for i := range items {
		item := items[i]
		if item.Name != a.Activity || item.Category != a.Category {
			continue
		}
		item.TimesCompleted++
		item.LastUsed = &a.Date
		if a.Enjoyment != nil {
			item.AverageEnjoyment = foldAverage(item.AverageEnjoyment, item.TimesCompleted, *a.Enjoyment)
		}
		if a.Mastery != nil {
			item.AverageMastery = foldAverage(item.AverageMastery, item.TimesCompleted, *a.Mastery)
		}
		_ = s.put(recordKey(libraryPrefix, item.ID), &item)
		return
	}
}

// foldAverage folds one new rating into a running average over n samples.
func foldAverage(avg *float64, n int, rating int) *float64 {
	next := float64(rating)
	if avg != nil && n > 1 {
		next = (*avg*float64(n-1) + float64(rating)) / float64(n)
	}
	return &next
}

// AddActivityLibraryItem stores a library entry and assigns its id.
func (s *Store) AddActivityLibraryItem(item *models.ActivityLibraryItem) error {
	id, err := s.nextID(libraryPrefix)
	if err != nil {
		return err
	}
	item.ID = id
	return s.put(recordKey(libraryPrefix, id), item)
}

// ListActivityLibrary returns library entries, optionally filtered by
// category. An empty category returns everything.
func (s *Store) ListActivityLibrary(category string) ([]models.ActivityLibraryItem, error) {
	all, err := listPrefix[models.ActivityLibraryItem](s, libraryPrefix)
	if err != nil {
		return nil, err
	}
	var out []models.ActivityLibraryItem
	for _, item := range all {
		if category != "" && string(item.Category) != category {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// CountActivityLibrary reports how many library entries exist.
func (s *Store) CountActivityLibrary() (int, error) {
	all, err := listPrefix[models.ActivityLibraryItem](s, libraryPrefix)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
