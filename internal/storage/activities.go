// ABOUTME: Planned activity and activity library persistence.
// ABOUTME: Completion writes ratings and bumps the matching library entry's usage stats.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/myndness/mynd/internal/models"
)

// CreatePlannedActivity stores a new planned activity and assigns its id.
func (d *DB) CreatePlannedActivity(a *models.PlannedActivity) error {
	return d.insertRecord("planned_activities",
		[]string{"date", "time_block", "completed", "category"},
		[]any{a.Date, string(a.TimeBlock), boolInt(a.Completed), string(a.Category)},
		func(id int64) ([]byte, error) {
			a.ID = id
			return json.Marshal(a)
		})
}

// GetPlannedActivity loads a planned activity by id.
func (d *DB) GetPlannedActivity(id int64) (*models.PlannedActivity, error) {
	return getRecord[models.PlannedActivity](d, "planned_activities", id)
}

// PlannedActivitiesOn returns the activities planned for one date, ordered
// by time block.
func (d *DB) PlannedActivitiesOn(date string) ([]models.PlannedActivity, error) {
	return queryRecords[models.PlannedActivity](d,
		`SELECT data FROM planned_activities WHERE date = ?
		 ORDER BY CASE time_block WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END`, date)
}

// ListPlannedActivities returns activities within an inclusive date range.
func (d *DB) ListPlannedActivities(start, end string) ([]models.PlannedActivity, error) {
	return queryRecords[models.PlannedActivity](d,
		"SELECT data FROM planned_activities WHERE date >= ? AND date <= ? ORDER BY date, time_block", start, end)
}

// ActivitiesByCategory returns activities in one category within a range.
func (d *DB) ActivitiesByCategory(category models.ActivityCategory, start, end string) ([]models.PlannedActivity, error) {
	return queryRecords[models.PlannedActivity](d,
		"SELECT data FROM planned_activities WHERE category = ? AND date >= ? AND date <= ? ORDER BY date",
		string(category), start, end)
}

// CompleteActivity marks an activity done with its completion ratings and
// updates the activity library entry of the same name when one exists.
func (d *DB) CompleteActivity(id int64, done models.ActivityCompletion) error {
	a, err := d.GetPlannedActivity(id)
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

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal activity %d: %w", id, err)
	}
	if err := d.updateRecord("planned_activities", id,
		[]string{"completed"}, []any{1}, data); err != nil {
		return err
	}

	d.recordLibraryUse(a)
	return nil
}

// recordLibraryUse bumps completion stats on the library entry matching the
// finished activity. A missing entry is not an error; ad-hoc activities have
// no library counterpart.
func (d *DB) recordLibraryUse(a *models.PlannedActivity) {
	items, err := queryRecords[models.ActivityLibraryItem](d,
		"SELECT data FROM activity_library WHERE name = ? AND category = ?", a.Activity, string(a.Category))
	if err != nil || len(items) == 0 {
		return
	}

	item := items[0]
	item.TimesCompleted++
	item.LastUsed = &a.Date
	if a.Enjoyment != nil {
		item.AverageEnjoyment = foldAverage(item.AverageEnjoyment, item.TimesCompleted, *a.Enjoyment)
	}
	if a.Mastery != nil {
		item.AverageMastery = foldAverage(item.AverageMastery, item.TimesCompleted, *a.Mastery)
	}

	if data, err := json.Marshal(item); err == nil {
		_ = d.updateRecord("activity_library", item.ID, nil, nil, data)
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
func (d *DB) AddActivityLibraryItem(item *models.ActivityLibraryItem) error {
	return d.insertRecord("activity_library",
		[]string{"name", "category", "is_default"},
		[]any{item.Name, string(item.Category), boolInt(item.IsDefault)},
		func(id int64) ([]byte, error) {
			item.ID = id
			return json.Marshal(item)
		})
}

// ListActivityLibrary returns library entries, optionally filtered by
// category. An empty category returns everything.
func (d *DB) ListActivityLibrary(category string) ([]models.ActivityLibraryItem, error) {
	if category != "" {
		return queryRecords[models.ActivityLibraryItem](d,
			"SELECT data FROM activity_library WHERE category = ? ORDER BY name", category)
	}
	return queryRecords[models.ActivityLibraryItem](d,
		"SELECT data FROM activity_library ORDER BY category, name")
}

// CountActivityLibrary reports how many library entries exist.
func (d *DB) CountActivityLibrary() (int, error) {
	return d.countRows("activity_library")
}
