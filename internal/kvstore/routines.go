// ABOUTME: Routine template operations for the key-value backend.
package kvstore

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// CreateRoutineTemplate stores a new routine template and assigns its id.
func (s *Store) CreateRoutineTemplate(t *models.RoutineTemplate) error {
	id, err := s.nextID(routinePrefix)
	if err != nil {
		return err
	}
	t.ID = id
	return s.put(recordKey(routinePrefix, id), t)
}

// GetRoutineTemplate loads a routine template by id.
func (s *Store) GetRoutineTemplate(id int64) (*models.RoutineTemplate, error) {
	return getRecord[models.RoutineTemplate](s, recordKey(routinePrefix, id))
}

// ListRoutineTemplates returns all routine templates, most used first.
func (s *Store) ListRoutineTemplates() ([]models.RoutineTemplate, error) {
	all, err := listPrefix[models.RoutineTemplate](s, routinePrefix)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TimesUsed > all[j].TimesUsed
	})
	return all, nil
}

// UseRoutineTemplate instantiates a template as a ready task breakdown and
// increments the template's use count. Returns the created task, or
// storage.ErrNotFound for a missing id.
func (s *Store) UseRoutineTemplate(id int64) (*models.TaskBreakdown, error) {
	tpl, err := s.GetRoutineTemplate(id)
	if err != nil {
		return nil, err
	}

	task := tpl.Instantiate()
	if err := s.CreateTaskBreakdown(task); err != nil {
		return nil, err
	}

	tpl.TimesUsed++
	if err := s.put(recordKey(routinePrefix, id), tpl); err != nil {
		return nil, err
	}
	return task, nil
}
