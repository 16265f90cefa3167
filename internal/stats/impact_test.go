// ABOUTME: Tests for per-category activity mood impact.
// ABOUTME: Verifies exclusion of records missing ratings and descending sort.
package stats

import (
	"testing"

	"github.com/myndness/mynd/internal/models"
)

func ratedActivity(category models.ActivityCategory, before, after int) models.PlannedActivity {
	return models.PlannedActivity{
		Date:       "2024-01-01",
		Activity:   "test",
		Category:   category,
		TimeBlock:  models.BlockMorning,
		Completed:  true,
		MoodBefore: intp(before),
		MoodAfter:  intp(after),
	}
}

func TestActivityImpactAveragesPerCategory(t *testing.T) {
	missingAfter := ratedActivity(models.CategorySocial, 5, 0)
	missingAfter.MoodAfter = nil

	activities := []models.PlannedActivity{
		ratedActivity(models.CategoryPhysical, 4, 6),
		ratedActivity(models.CategoryPhysical, 5, 7),
		missingAfter,
	}

	impacts := CalculateActivityImpact(activities)
	if len(impacts) != 1 {
		t.Fatalf("expected 1 category, got %d", len(impacts))
	}
	got := impacts[0]
	if got.Category != models.CategoryPhysical {
		t.Errorf("Category = %s, want physical", got.Category)
	}
	if got.AvgMoodBefore != 4.5 {
		t.Errorf("AvgMoodBefore = %v, want 4.5", got.AvgMoodBefore)
	}
	if got.AvgMoodAfter != 6.5 {
		t.Errorf("AvgMoodAfter = %v, want 6.5", got.AvgMoodAfter)
	}
	if got.MoodChange != 2 {
		t.Errorf("MoodChange = %v, want 2", got.MoodChange)
	}
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}

func TestActivityImpactExcludesIncomplete(t *testing.T) {
	notDone := ratedActivity(models.CategoryCreative, 3, 8)
	notDone.Completed = false

	impacts := CalculateActivityImpact([]models.PlannedActivity{notDone})
	if len(impacts) != 0 {
		t.Errorf("expected no impacts for incomplete activities, got %v", impacts)
	}
}

func TestActivityImpactSortsByMoodChangeDescending(t *testing.T) {
	activities := []models.PlannedActivity{
		ratedActivity(models.CategorySocial, 5, 6),   // +1
		ratedActivity(models.CategoryPhysical, 4, 7), // +3
		ratedActivity(models.CategoryCreative, 6, 5), // -1
	}

	impacts := CalculateActivityImpact(activities)
	if len(impacts) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(impacts))
	}
	want := []models.ActivityCategory{
		models.CategoryPhysical, models.CategorySocial, models.CategoryCreative,
	}
	for i, category := range want {
		if impacts[i].Category != category {
			t.Errorf("impacts[%d].Category = %s, want %s", i, impacts[i].Category, category)
		}
	}
}
