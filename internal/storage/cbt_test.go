// ABOUTME: Tests for thought records, behavioral experiments, and the exposure hierarchy.
// ABOUTME: Completion guards and the exposure target rule are the interesting cases.
package storage

import (
	"errors"
	"testing"

	"github.com/myndness/mynd/internal/models"
)

func TestUpdateThoughtRecordRejectsIncompleteSteps(t *testing.T) {
	db := setupTestDB(t)

	r := models.NewThoughtRecord("Team meeting", "Everyone thinks I'm incompetent", models.EmotionAnxious, 80)
	r.Distortions = []models.CognitiveDistortion{models.DistortionMindReading}
	if err := db.CreateThoughtRecord(r); err != nil {
		t.Fatalf("CreateThoughtRecord failed: %v", err)
	}

	// Evidence steps still empty.
	r.IsComplete = true
	if err := db.UpdateThoughtRecord(r); err == nil {
		t.Fatal("expected error marking record complete with steps missing")
	}

	r.EvidenceFor = "I stumbled over one answer"
	r.EvidenceAgainst = "Two people agreed with my main point"
	r.BalancedThought = "One rough moment doesn't define the meeting"
	r.OutcomeIntensity = 45
	if err := db.UpdateThoughtRecord(r); err != nil {
		t.Fatalf("UpdateThoughtRecord failed: %v", err)
	}

	got, err := db.GetThoughtRecord(r.ID)
	if err != nil {
		t.Fatalf("GetThoughtRecord failed: %v", err)
	}
	if !got.IsComplete {
		t.Error("record should be complete")
	}
	if got.OutcomeIntensity != 45 {
		t.Errorf("OutcomeIntensity = %d, want 45", got.OutcomeIntensity)
	}
}

func TestIncompleteThoughtRecords(t *testing.T) {
	db := setupTestDB(t)

	pending := models.NewThoughtRecord("Email", "I said something wrong", models.EmotionGuilty, 60)
	if err := db.CreateThoughtRecord(pending); err != nil {
		t.Fatalf("CreateThoughtRecord failed: %v", err)
	}

	done := models.NewThoughtRecord("Party invite", "I'll ruin the evening", models.EmotionAnxious, 70)
	done.EvidenceFor = "f"
	done.EvidenceAgainst = "a"
	done.BalancedThought = "b"
	done.IsComplete = true
	if err := db.CreateThoughtRecord(done); err != nil {
		t.Fatalf("CreateThoughtRecord failed: %v", err)
	}

	got, err := db.IncompleteThoughtRecords()
	if err != nil {
		t.Fatalf("IncompleteThoughtRecords failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != pending.ID {
		t.Errorf("got %v, want just the pending record", got)
	}
}

func TestCompleteExperiment(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewBehavioralExperiment(
		"If I ask a question, people will laugh", 85,
		"Ask one question in the standup", "Someone will laugh or sigh")
	e.PredictionConfidence = 70
	if err := db.CreateExperiment(e); err != nil {
		t.Fatalf("CreateExperiment failed: %v", err)
	}

	learnings := "Nobody reacted badly; one person thanked me"
	err := db.CompleteExperiment(e.ID, ExperimentOutcome{
		ActualOutcome:       "The question was answered normally",
		Learnings:           &learnings,
		BeliefStrengthAfter: 40,
	})
	if err != nil {
		t.Fatalf("CompleteExperiment failed: %v", err)
	}

	got, err := db.GetExperiment(e.ID)
	if err != nil {
		t.Fatalf("GetExperiment failed: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Error("experiment not marked completed")
	}
	if got.BeliefStrengthAfter == nil || *got.BeliefStrengthAfter != 40 {
		t.Errorf("BeliefStrengthAfter = %v, want 40", got.BeliefStrengthAfter)
	}

	incomplete, err := db.IncompleteExperiments()
	if err != nil {
		t.Fatalf("IncompleteExperiments failed: %v", err)
	}
	if len(incomplete) != 0 {
		t.Errorf("expected no incomplete experiments, got %d", len(incomplete))
	}
}

func TestCompleteExperimentMissingID(t *testing.T) {
	db := setupTestDB(t)

	err := db.CompleteExperiment(42, ExperimentOutcome{ActualOutcome: "n/a"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CompleteExperiment(42) = %v, want ErrNotFound", err)
	}
}

func TestAddExposureAttemptUpdatesDistress(t *testing.T) {
	db := setupTestDB(t)

	item := models.NewHierarchyItem("Order at a counter", 60)
	if err := db.CreateHierarchyItem(item); err != nil {
		t.Fatalf("CreateHierarchyItem failed: %v", err)
	}

	got, err := db.AddExposureAttempt(item.ID, models.ExposureAttempt{
		Date: "2024-06-01", DistressBefore: 60, DistressDuring: 70, DistressAfter: 45, Duration: 10,
	})
	if err != nil {
		t.Fatalf("AddExposureAttempt failed: %v", err)
	}
	if got.CurrentDistress != 45 {
		t.Errorf("CurrentDistress = %d, want 45", got.CurrentDistress)
	}
	if got.IsComplete {
		t.Error("item should not be complete above the target")
	}
	if got.InitialDistress != 60 {
		t.Errorf("InitialDistress = %d, want 60 (unchanged)", got.InitialDistress)
	}
	if len(got.ExposureAttempts) != 1 {
		t.Errorf("expected 1 attempt, got %d", len(got.ExposureAttempts))
	}
}

func TestAddExposureAttemptCompletesAtTarget(t *testing.T) {
	db := setupTestDB(t)

	item := models.NewHierarchyItem("Make a phone call", 50)
	if err := db.CreateHierarchyItem(item); err != nil {
		t.Fatalf("CreateHierarchyItem failed: %v", err)
	}

	// Default target is 20; reaching it exactly completes the item.
	got, err := db.AddExposureAttempt(item.ID, models.ExposureAttempt{
		Date: "2024-06-02", DistressBefore: 50, DistressDuring: 55, DistressAfter: 20, Duration: 5,
	})
	if err != nil {
		t.Fatalf("AddExposureAttempt failed: %v", err)
	}
	if !got.IsComplete {
		t.Error("item should complete when distress reaches the target")
	}
}

func TestAddExposureAttemptHonorsExplicitTarget(t *testing.T) {
	db := setupTestDB(t)

	item := models.NewHierarchyItem("Drive on the highway", 80)
	item.TargetDistress = intPtr(40)
	if err := db.CreateHierarchyItem(item); err != nil {
		t.Fatalf("CreateHierarchyItem failed: %v", err)
	}

	got, err := db.AddExposureAttempt(item.ID, models.ExposureAttempt{
		Date: "2024-06-03", DistressBefore: 80, DistressDuring: 85, DistressAfter: 35, Duration: 20,
	})
	if err != nil {
		t.Fatalf("AddExposureAttempt failed: %v", err)
	}
	if !got.IsComplete {
		t.Error("item should complete below its explicit target")
	}
}

func TestListHierarchyOrdersByDistress(t *testing.T) {
	db := setupTestDB(t)

	low := models.NewHierarchyItem("Say hi to a neighbor", 30)
	high := models.NewHierarchyItem("Give a presentation", 90)
	for _, item := range []*models.AnxietyHierarchyItem{low, high} {
		if err := db.CreateHierarchyItem(item); err != nil {
			t.Fatalf("CreateHierarchyItem failed: %v", err)
		}
	}

	got, err := db.ListHierarchy()
	if err != nil {
		t.Fatalf("ListHierarchy failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].CurrentDistress < got[1].CurrentDistress {
		t.Error("hierarchy not ordered by distress descending")
	}
}
