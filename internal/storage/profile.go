// ABOUTME: Singleton persistence for user profile and settings.
// ABOUTME: Save is create-if-absent, otherwise update in place.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// GetSettings returns the settings singleton, or ErrNotFound before seeding.
func (d *DB) GetSettings() (*models.Settings, error) {
	rows, err := queryRecords[models.Settings](d, "SELECT data FROM settings ORDER BY id LIMIT 1")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get settings: %w", ErrNotFound)
	}
	return &rows[0], nil
}

// SaveSettings creates the settings record when absent and updates it in
// place otherwise.
func (d *DB) SaveSettings(s *models.Settings) error {
	s.UpdatedAt = time.Now()

	existing, err := d.GetSettings()
	if err == nil {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
		data, merr := json.Marshal(s)
		if merr != nil {
			return fmt.Errorf("marshal settings: %w", merr)
		}
		return d.updateRecord("settings", s.ID, nil, nil, data)
	}

	return d.insertRecord("settings", nil, nil, func(id int64) ([]byte, error) {
		s.ID = id
		return json.Marshal(s)
	})
}

// GetProfile returns the user profile singleton, or ErrNotFound before
// seeding.
func (d *DB) GetProfile() (*models.UserProfile, error) {
	rows, err := queryRecords[models.UserProfile](d, "SELECT data FROM user_profile ORDER BY id LIMIT 1")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get profile: %w", ErrNotFound)
	}
	return &rows[0], nil
}

// SaveProfile creates the profile record when absent and updates it in
// place otherwise.
func (d *DB) SaveProfile(p *models.UserProfile) error {
	p.UpdatedAt = time.Now()

	existing, err := d.GetProfile()
	if err == nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		data, merr := json.Marshal(p)
		if merr != nil {
			return fmt.Errorf("marshal profile: %w", merr)
		}
		return d.updateRecord("user_profile", p.ID, nil, nil, data)
	}

	return d.insertRecord("user_profile", nil, nil, func(id int64) ([]byte, error) {
		p.ID = id
		return json.Marshal(p)
	})
}
