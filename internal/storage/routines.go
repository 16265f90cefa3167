// ABOUTME: Routine template persistence (schema v2 collection).
// ABOUTME: Using a template creates a task breakdown and bumps the template's use count.
package storage

import (
	"encoding/json"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CreateRoutineTemplate stores a new routine template and assigns its id.
func (d *DB) CreateRoutineTemplate(t *models.RoutineTemplate) error {
	return d.insertRecord("routine_templates",
		[]string{"name", "is_default", "times_used", "created_at"},
		[]any{t.Name, boolInt(t.IsDefault), t.TimesUsed, t.CreatedAt.Format(time.RFC3339)},
		func(id int64) ([]byte, error) {
			t.ID = id
			return json.Marshal(t)
		})
}

// GetRoutineTemplate loads a routine template by id.
func (d *DB) GetRoutineTemplate(id int64) (*models.RoutineTemplate, error) {
	return getRecord[models.RoutineTemplate](d, "routine_templates", id)
}

// ListRoutineTemplates returns all routine templates, most used first.
func (d *DB) ListRoutineTemplates() ([]models.RoutineTemplate, error) {
	return queryRecords[models.RoutineTemplate](d,
		"SELECT data FROM routine_templates ORDER BY times_used DESC, id")
}

// UseRoutineTemplate instantiates a template as a ready task breakdown and
// increments the template's use count. Returns the created task, or
// ErrNotFound for a missing id.
func (d *DB) UseRoutineTemplate(id int64) (*models.TaskBreakdown, error) {
	tpl, err := d.GetRoutineTemplate(id)
	if err != nil {
		return nil, err
	}

	task := tpl.Instantiate()
	if err := d.CreateTaskBreakdown(task); err != nil {
		return nil, err
	}

	tpl.TimesUsed++
	data, err := json.Marshal(tpl)
	if err != nil {
		return nil, err
	}
	if err := d.updateRecord("routine_templates", id,
		[]string{"times_used"}, []any{tpl.TimesUsed}, data); err != nil {
		return nil, err
	}
	return task, nil
}
