// ABOUTME: Idempotent first-run seeding of the activity library, settings, and profile.
// ABOUTME: Each seed re-checks emptiness, so a crash between steps is tolerated.
package storage

import (
	"errors"
	"fmt"

	"github.com/myndness/mynd/internal/models"
)

// Initialize seeds default data into empty collections.
func (d *DB) Initialize() error {
	return Seed(d)
}

// Seed populates empty collections with defaults through the repository
// interface, so every backend seeds identically. Re-running against a
// populated store is a no-op; each collection is checked independently so
// the steps need no cross-collection transaction.
func Seed(r Repository) error {
	count, err := r.CountActivityLibrary()
	if err != nil {
		return fmt.Errorf("check activity library: %w", err)
	}
	if count == 0 {
		for i := range defaultActivityLibrary {
			item := defaultActivityLibrary[i]
			if err := r.AddActivityLibraryItem(&item); err != nil {
				return fmt.Errorf("seed activity library: %w", err)
			}
		}
	}

	if _, err := r.GetSettings(); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("check settings: %w", err)
		}
		if err := r.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}

	if _, err := r.GetProfile(); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("check profile: %w", err)
		}
		if err := r.SaveProfile(models.DefaultProfile()); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}

	return nil
}

func libItem(name string, category models.ActivityCategory, description string, minutes, spoons int) models.ActivityLibraryItem {
	return models.ActivityLibraryItem{
		Name:              name,
		Category:          category,
		Description:       &description,
		EstimatedDuration: &minutes,
		SpoonCost:         spoons,
		IsDefault:         true,
	}
}

// defaultActivityLibrary is the catalog seeded on first run. Spoon costs
// reflect social, executive-function, and physical energy demands.
var defaultActivityLibrary = []models.ActivityLibraryItem{
	// Social
	libItem("Call a family member", models.CategorySocial, "Reach out to a loved one", 15, 4),
	libItem("Video chat with friend", models.CategorySocial, "Face-to-face connection from home", 30, 7),
	libItem("Coffee with neighbor", models.CategorySocial, "Brief social interaction", 30, 8),
	libItem("Write a letter or email", models.CategorySocial, "Thoughtful connection", 20, 4),

	// Creative
	libItem("Listen to favorite music", models.CategoryCreative, "Enjoy music mindfully", 20, 1),
	libItem("Try a new recipe", models.CategoryCreative, "Cooking something different", 45, 7),
	libItem("Photography walk", models.CategoryCreative, "Take photos of interesting things", 30, 5),
	libItem("Write in journal", models.CategoryCreative, "Free writing or reflection", 15, 2),
	libItem("Drawing or coloring", models.CategoryCreative, "Visual creative expression", 30, 4),

	// Physical
	libItem("Stationary cycling", models.CategoryPhysical, "Indoor cycling routine", 30, 8),
	libItem("Resistance band exercises", models.CategoryPhysical, "Upper body strengthening", 20, 7),
	libItem("Stretching routine", models.CategoryPhysical, "Full body stretch", 15, 4),
	libItem("Tai chi practice", models.CategoryPhysical, "Gentle flowing movement", 20, 5),
	libItem("Walk outside", models.CategoryPhysical, "Neighborhood walk", 20, 6),
	libItem("Gardening", models.CategoryPhysical, "Outdoor activity with purpose", 30, 8),

	// Learning
	libItem("Read a book", models.CategoryLearning, "Engage with a good book", 30, 3),
	libItem("Crossword or puzzle", models.CategoryLearning, "Mental challenge", 20, 5),
	libItem("Watch educational video", models.CategoryLearning, "Learn something new", 30, 3),
	libItem("Practice a language", models.CategoryLearning, "Language learning app or study", 15, 5),

	// Mastery
	libItem("Organize a drawer or closet", models.CategoryMastery, "Small organizing project", 20, 6),
	libItem("Fix something small", models.CategoryMastery, "Minor repair or improvement", 30, 7),
	libItem("Sort through paperwork", models.CategoryMastery, "Administrative task", 30, 6),
	libItem("Clean one room", models.CategoryMastery, "Focused cleaning task", 30, 8),
	libItem("Plan meals for the week", models.CategoryMastery, "Meal planning", 20, 5),

	// Pleasure
	libItem("Watch favorite show", models.CategoryPleasure, "Relaxing entertainment", 45, 2),
	libItem("Sit outside in nature", models.CategoryPleasure, "Enjoy fresh air", 15, 2),
	libItem("Take a relaxing bath", models.CategoryPleasure, "Self-care relaxation", 30, 3),
	libItem("Enjoy a cup of tea", models.CategoryPleasure, "Mindful beverage break", 15, 1),
	libItem("Pet or play with animal", models.CategoryPleasure, "Animal companionship", 15, 1),
	libItem("Look at old photos", models.CategoryPleasure, "Pleasant memories", 20, 2),
}
