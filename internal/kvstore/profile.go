// ABOUTME: Profile and settings singletons for the key-value backend.
package kvstore

import (
	"errors"
	"time"

	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
)

// GetSettings returns the settings singleton, or storage.ErrNotFound before
// seeding.
func (s *Store) GetSettings() (*models.Settings, error) {
	return getRecord[models.Settings](s, []byte(settingsKey))
}

// SaveSettings creates or replaces the settings singleton.
func (s *Store) SaveSettings(v *models.Settings) error {
	v.UpdatedAt = time.Now()
	existing, err := s.GetSettings()
	switch {
	case err == nil:
		v.ID = existing.ID
		v.CreatedAt = existing.CreatedAt
	case errors.Is(err, storage.ErrNotFound):
		v.ID = 1
	default:
		return err
	}
	return s.put([]byte(settingsKey), v)
}

// GetProfile returns the user profile singleton, or storage.ErrNotFound
// before seeding.
func (s *Store) GetProfile() (*models.UserProfile, error) {
	return getRecord[models.UserProfile](s, []byte(profileKey))
}

// SaveProfile creates or replaces the profile singleton.
func (s *Store) SaveProfile(p *models.UserProfile) error {
	p.UpdatedAt = time.Now()
	existing, err := s.GetProfile()
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, storage.ErrNotFound):
		p.ID = 1
	default:
		return err
	}
	return s.put([]byte(profileKey), p)
}
