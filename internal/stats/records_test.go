// ABOUTME: Tests for thought record, experiment, and hierarchy reducers.
// ABOUTME: Covers the stable distortion tie-break and zero-division edge cases.
package stats

import (
	"testing"

	"github.com/myndness/mynd/internal/models"
)

func completedThought(before, after int, distortions ...models.CognitiveDistortion) models.ThoughtRecord {
	return models.ThoughtRecord{
		Date:             "2024-01-01",
		Situation:        "test",
		AutomaticThought: "test",
		Emotion:          models.EmotionAnxious,
		EmotionIntensity: before,
		Distortions:      distortions,
		EvidenceFor:      "f",
		EvidenceAgainst:  "a",
		BalancedThought:  "b",
		OutcomeIntensity: after,
		IsComplete:       true,
	}
}

func TestThoughtRecordStatsAveragesCompletedOnly(t *testing.T) {
	incomplete := completedThought(90, 0)
	incomplete.IsComplete = false

	records := []models.ThoughtRecord{
		completedThought(80, 40),
		completedThought(60, 30),
		incomplete,
	}

	stats := CalculateThoughtRecordStats(records)
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	if stats.AvgEmotionBefore != 70 {
		t.Errorf("AvgEmotionBefore = %d, want 70", stats.AvgEmotionBefore)
	}
	if stats.AvgEmotionAfter != 35 {
		t.Errorf("AvgEmotionAfter = %d, want 35", stats.AvgEmotionAfter)
	}
	if stats.AvgReduction != 35 {
		t.Errorf("AvgReduction = %d, want 35", stats.AvgReduction)
	}
}

func TestThoughtRecordStatsTopDistortionsTieBreak(t *testing.T) {
	// catastrophizing appears twice; mind-reading and fortune-telling and
	// labeling once each. Ties resolve in first-encountered order.
	records := []models.ThoughtRecord{
		completedThought(80, 40, models.DistortionMindReading, models.DistortionCatastrophizing),
		completedThought(70, 30, models.DistortionFortuneTelling, models.DistortionCatastrophizing),
		completedThought(60, 20, models.DistortionLabeling),
	}

	stats := CalculateThoughtRecordStats(records)
	want := []models.CognitiveDistortion{
		models.DistortionCatastrophizing,
		models.DistortionMindReading,
		models.DistortionFortuneTelling,
	}
	if len(stats.TopDistortions) != 3 {
		t.Fatalf("TopDistortions = %v, want 3 entries", stats.TopDistortions)
	}
	for i, d := range want {
		if stats.TopDistortions[i] != d {
			t.Errorf("TopDistortions[%d] = %s, want %s", i, stats.TopDistortions[i], d)
		}
	}
}

func TestThoughtRecordStatsEmpty(t *testing.T) {
	stats := CalculateThoughtRecordStats(nil)
	if stats.Total != 0 || stats.Completed != 0 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.AvgReduction != 0 {
		t.Errorf("AvgReduction = %d, want 0", stats.AvgReduction)
	}
}

func TestExperimentStatsBeliefReduction(t *testing.T) {
	done := models.BehavioralExperiment{
		Date:                "2024-01-01",
		Belief:              "I will embarrass myself",
		BeliefStrength:      80,
		Completed:           true,
		BeliefStrengthAfter: intp(50),
	}
	doneNoRating := models.BehavioralExperiment{
		Date:           "2024-01-02",
		Belief:         "Nobody will come",
		BeliefStrength: 70,
		Completed:      true,
	}
	pending := models.BehavioralExperiment{
		Date:           "2024-01-03",
		Belief:         "I cannot handle crowds",
		BeliefStrength: 90,
	}

	stats := CalculateExperimentStats([]models.BehavioralExperiment{done, doneNoRating, pending})
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	// Only the experiment with an after rating contributes.
	if stats.AvgBeliefReduction != 30 {
		t.Errorf("AvgBeliefReduction = %d, want 30", stats.AvgBeliefReduction)
	}
}

func TestHierarchyStatsProgressCounts(t *testing.T) {
	attempt := models.ExposureAttempt{
		Date: "2024-01-01", DistressBefore: 70, DistressDuring: 80, DistressAfter: 40, Duration: 15,
	}

	complete := models.AnxietyHierarchyItem{
		Situation: "Small dinner party", InitialDistress: 60, CurrentDistress: 15,
		ExposureAttempts: []models.ExposureAttempt{attempt, attempt}, IsComplete: true,
	}
	inProgress := models.AnxietyHierarchyItem{
		Situation: "Give a toast", InitialDistress: 90, CurrentDistress: 70,
		ExposureAttempts: []models.ExposureAttempt{attempt},
	}
	untouched := models.AnxietyHierarchyItem{
		Situation: "Host a party", InitialDistress: 95, CurrentDistress: 95,
	}

	stats := CalculateHierarchyStats([]models.AnxietyHierarchyItem{complete, inProgress, untouched})
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.InProgress != 1 {
		t.Errorf("InProgress = %d, want 1", stats.InProgress)
	}
	if stats.TotalExposures != 3 {
		t.Errorf("TotalExposures = %d, want 3", stats.TotalExposures)
	}
	// (60-15 + 90-70) / 2 = 32.5, rounded.
	if stats.AvgDistressReduction != 33 {
		t.Errorf("AvgDistressReduction = %d, want 33", stats.AvgDistressReduction)
	}
}

func TestHierarchyStatsEmpty(t *testing.T) {
	stats := CalculateHierarchyStats(nil)
	if stats.Total != 0 || stats.AvgDistressReduction != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
