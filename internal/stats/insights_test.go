// ABOUTME: Tests for the windowed weekly insight summary.
// ABOUTME: Empty inputs must produce nil means and zero rates, never NaN.
package stats

import (
	"testing"

	"github.com/myndness/mynd/internal/models"
)

func TestWeeklyInsightsEmptyWindow(t *testing.T) {
	w := GetWeeklyInsights(nil, nil, nil, nil)

	if w.AvgMood != nil || w.AvgAnxiety != nil {
		t.Errorf("expected nil mood averages, got %v / %v", w.AvgMood, w.AvgAnxiety)
	}
	if w.MoodEntries != 0 {
		t.Errorf("MoodEntries = %d, want 0", w.MoodEntries)
	}
	if w.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0", w.CompletionRate)
	}
	if w.AvgSessionDuration != nil {
		t.Errorf("AvgSessionDuration = %v, want nil", *w.AvgSessionDuration)
	}
	if w.AvgSystolic != nil || w.AvgDiastolic != nil {
		t.Error("expected nil BP averages for empty window")
	}
	if w.BestCategory != nil {
		t.Errorf("BestCategory = %v, want nil", *w.BestCategory)
	}
}

func TestWeeklyInsightsMoodAverages(t *testing.T) {
	logs := []models.MoodLog{
		moodLogOn("2024-01-01", 6, 2),
		moodLogOn("2024-01-02", 8, 4),
	}

	w := GetWeeklyInsights(logs, nil, nil, nil)
	if w.MoodEntries != 2 {
		t.Fatalf("MoodEntries = %d, want 2", w.MoodEntries)
	}
	if w.AvgMood == nil || *w.AvgMood != 7 {
		t.Errorf("AvgMood = %v, want 7", w.AvgMood)
	}
	if w.AvgAnxiety == nil || *w.AvgAnxiety != 3 {
		t.Errorf("AvgAnxiety = %v, want 3", w.AvgAnxiety)
	}
}

func TestWeeklyInsightsCompletionRate(t *testing.T) {
	done := ratedActivity(models.CategoryPhysical, 4, 6)
	planned := models.PlannedActivity{
		Date:     "2024-01-01",
		Activity: "Call a friend",
		Category: models.CategorySocial,
	}

	w := GetWeeklyInsights(nil, []models.PlannedActivity{done, planned, planned, planned}, nil, nil)
	if w.ActivitiesPlanned != 4 {
		t.Errorf("ActivitiesPlanned = %d, want 4", w.ActivitiesPlanned)
	}
	if w.ActivitiesCompleted != 1 {
		t.Errorf("ActivitiesCompleted = %d, want 1", w.ActivitiesCompleted)
	}
	if w.CompletionRate != 25 {
		t.Errorf("CompletionRate = %v, want 25", w.CompletionRate)
	}
}

func TestWeeklyInsightsMindfulnessUsesActualDurationWhenPresent(t *testing.T) {
	withActual := completedSession("2024-01-01")
	withActual.DurationActual = intp(8)
	plannedOnly := completedSession("2024-01-02") // planned 10
	abandoned := completedSession("2024-01-03")
	abandoned.Completed = false

	w := GetWeeklyInsights(nil, nil, []models.MindfulnessSession{withActual, plannedOnly, abandoned}, nil)
	if w.MindfulnessSessions != 2 {
		t.Errorf("MindfulnessSessions = %d, want 2", w.MindfulnessSessions)
	}
	if w.TotalMindfulnessMinutes != 18 {
		t.Errorf("TotalMindfulnessMinutes = %d, want 18", w.TotalMindfulnessMinutes)
	}
	if w.AvgSessionDuration == nil || *w.AvgSessionDuration != 9 {
		t.Errorf("AvgSessionDuration = %v, want 9", w.AvgSessionDuration)
	}
}

func TestWeeklyInsightsBPAveragesRound(t *testing.T) {
	readings := []models.BPReading{
		{Date: "2024-01-01", Systolic: 121, Diastolic: 80},
		{Date: "2024-01-02", Systolic: 124, Diastolic: 81},
	}

	w := GetWeeklyInsights(nil, nil, nil, readings)
	if w.BPReadings != 2 {
		t.Errorf("BPReadings = %d, want 2", w.BPReadings)
	}
	if w.AvgSystolic == nil || *w.AvgSystolic != 123 { // round(122.5)
		t.Errorf("AvgSystolic = %v, want 123", w.AvgSystolic)
	}
	if w.AvgDiastolic == nil || *w.AvgDiastolic != 81 { // round(80.5)
		t.Errorf("AvgDiastolic = %v, want 81", w.AvgDiastolic)
	}
}

func TestWeeklyInsightsBestCategory(t *testing.T) {
	activities := []models.PlannedActivity{
		ratedActivity(models.CategorySocial, 5, 6),   // +1
		ratedActivity(models.CategoryPhysical, 4, 7), // +3
	}

	w := GetWeeklyInsights(nil, activities, nil, nil)
	if w.BestCategory == nil || *w.BestCategory != models.CategoryPhysical {
		t.Fatalf("BestCategory = %v, want physical", w.BestCategory)
	}
	if w.BestCategoryImpact == nil || *w.BestCategoryImpact != 3 {
		t.Errorf("BestCategoryImpact = %v, want 3", w.BestCategoryImpact)
	}
}
