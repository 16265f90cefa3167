// ABOUTME: Tests for model validation, derived values, and defaults.
package models

import (
	"testing"
	"time"
)

func TestBPReadingValidate(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		wantErr   bool
	}{
		{"normal", 120, 80, false},
		{"low bound", 50, 30, false},
		{"high bound", 250, 150, false},
		{"systolic too low", 49, 80, true},
		{"systolic too high", 251, 80, true},
		{"diastolic too low", 120, 29, true},
		{"diastolic too high", 120, 151, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBPReading(tt.systolic, tt.diastolic)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMoodLogWithTimestampDerivesDate(t *testing.T) {
	m := NewMoodLog(7, 3)
	m.WithTimestamp(time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC))
	if m.Date != "2024-03-15" {
		t.Errorf("Date = %s, want 2024-03-15", m.Date)
	}
}

func TestEpisodeDuration(t *testing.T) {
	e := NewAnxietyEpisode()
	e.StartTime = time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC)

	if !e.Ongoing() {
		t.Error("new episode should be ongoing")
	}
	if e.DurationMinutes() != 0 {
		t.Errorf("ongoing DurationMinutes = %d, want 0", e.DurationMinutes())
	}

	end := e.StartTime.Add(90 * time.Minute)
	e.EndTime = &end
	if e.Ongoing() {
		t.Error("ended episode should not be ongoing")
	}
	if e.DurationMinutes() != 90 {
		t.Errorf("DurationMinutes = %d, want 90", e.DurationMinutes())
	}
}

func TestThoughtRecordRequiredStepsFilled(t *testing.T) {
	r := NewThoughtRecord("Meeting", "I'll fail", EmotionAnxious, 70)
	if r.RequiredStepsFilled() {
		t.Error("record missing evidence should not count as filled")
	}

	r.EvidenceFor = "f"
	r.EvidenceAgainst = "a"
	r.BalancedThought = "b"
	if !r.RequiredStepsFilled() {
		t.Error("record with all steps should count as filled")
	}
}

func TestHierarchyTargetDefault(t *testing.T) {
	item := NewHierarchyItem("Order coffee", 60)
	if item.Target() != DefaultTargetDistress {
		t.Errorf("Target() = %d, want %d", item.Target(), DefaultTargetDistress)
	}
	if item.CurrentDistress != item.InitialDistress {
		t.Error("current distress should start at initial")
	}

	target := 35
	item.TargetDistress = &target
	if item.Target() != 35 {
		t.Errorf("Target() = %d, want 35", item.Target())
	}
}

func TestMindfulnessMinutesFallsBackToPlanned(t *testing.T) {
	s := NewMindfulnessSession(PracticeBodyScanShort, 15)
	if s.Minutes() != 15 {
		t.Errorf("Minutes() = %d, want planned 15", s.Minutes())
	}

	actual := 12
	s.DurationActual = &actual
	if s.Minutes() != 12 {
		t.Errorf("Minutes() = %d, want actual 12", s.Minutes())
	}
}

func TestTaskBreakdownTotalSpoonCost(t *testing.T) {
	task := NewTaskBreakdown("Laundry", []TaskStep{
		{Description: "Collect clothes", SpoonCost: 1},
		{Description: "Run machine", SpoonCost: 1},
		{Description: "Fold and put away", SpoonCost: 3},
	})
	if task.TotalSpoonCost() != 5 {
		t.Errorf("TotalSpoonCost() = %d, want 5", task.TotalSpoonCost())
	}
	if task.Status != TaskDraft {
		t.Errorf("Status = %s, want draft", task.Status)
	}
}

func TestIsValidPracticeType(t *testing.T) {
	if !IsValidPracticeType("breath-awareness") {
		t.Error("breath-awareness should be valid")
	}
	if IsValidPracticeType("yoga") {
		t.Error("yoga should not be valid")
	}
}

func TestIsValidActivityCategory(t *testing.T) {
	if !IsValidActivityCategory("physical") {
		t.Error("physical should be valid")
	}
	if IsValidActivityCategory("chores") {
		t.Error("chores should not be valid")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Theme != "light" {
		t.Errorf("Theme = %s, want light", s.Theme)
	}
	if s.DefaultMindfulnessDuration != 5 {
		t.Errorf("DefaultMindfulnessDuration = %d, want 5", s.DefaultMindfulnessDuration)
	}
	if s.MorningCheckInTime == nil || *s.MorningCheckInTime != "08:00" {
		t.Errorf("MorningCheckInTime = %v, want 08:00", s.MorningCheckInTime)
	}
}

func TestCognitiveDistortionsCatalog(t *testing.T) {
	if len(CognitiveDistortions) == 0 {
		t.Fatal("distortion catalog should not be empty")
	}
	seen := make(map[CognitiveDistortion]bool)
	for _, d := range CognitiveDistortions {
		if d.Name == "" || d.ShortDescription == "" || d.ChallengeQuestion == "" {
			t.Errorf("catalog entry %q has empty fields", d.ID)
		}
		if seen[d.ID] {
			t.Errorf("duplicate catalog id %q", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestRoutineTemplateInstantiate(t *testing.T) {
	tpl := NewRoutineTemplate("Morning routine", []RoutineStep{
		{Description: "Shower", SpoonCost: 2},
		{Description: "Breakfast", SpoonCost: 1},
	})

	task := tpl.Instantiate()
	if task.Title != "Morning routine" {
		t.Errorf("Title = %q, want the template name", task.Title)
	}
	if task.Status != TaskReady {
		t.Errorf("Status = %q, want %q", task.Status, TaskReady)
	}
	if len(task.Steps) != 2 || task.Steps[0].Done {
		t.Errorf("Steps = %+v, want 2 fresh steps", task.Steps)
	}
	if task.TotalSpoonCost() != tpl.TotalSpoonCost() {
		t.Errorf("TotalSpoonCost = %d, want %d", task.TotalSpoonCost(), tpl.TotalSpoonCost())
	}

	// The instantiated steps are a copy, not the template's slice.
	task.Steps[0].Done = true
	if tpl.Steps[0] != (RoutineStep{Description: "Shower", SpoonCost: 2}) {
		t.Errorf("template steps mutated by the task: %+v", tpl.Steps[0])
	}
}

func TestIsValidInterestSessionType(t *testing.T) {
	if !IsValidInterestSessionType("research") {
		t.Error("research should be a valid session type")
	}
	if IsValidInterestSessionType("napping") {
		t.Error("napping should not be a valid session type")
	}
}
