// ABOUTME: Bounded-scope reducers for thought records, experiments, and the exposure hierarchy.
// ABOUTME: Division-by-zero cases resolve to zero values, never NaN or errors.
package stats

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// ThoughtRecordStats summarizes completed thought records in a window.
type ThoughtRecordStats struct {
	Total            int                          `json:"total" yaml:"total"`
	Completed        int                          `json:"completed" yaml:"completed"`
	AvgEmotionBefore int                          `json:"avgEmotionBefore" yaml:"avgEmotionBefore"`
	AvgEmotionAfter  int                          `json:"avgEmotionAfter" yaml:"avgEmotionAfter"`
	AvgReduction     int                          `json:"avgReduction" yaml:"avgReduction"`
	TopDistortions   []models.CognitiveDistortion `json:"topDistortions" yaml:"topDistortions"`
}

// CalculateThoughtRecordStats averages emotion intensity before and after
// over completed records and reports the three most frequent distortion
// tags. Frequency ties resolve in first-encountered order while scanning
// records, a stable tie-break rather than map iteration order.
func CalculateThoughtRecordStats(records []models.ThoughtRecord) ThoughtRecordStats {
	stats := ThoughtRecordStats{Total: len(records)}

	var completed []models.ThoughtRecord
	for _, r := range records {
		if r.IsComplete {
			completed = append(completed, r)
		}
	}
	stats.Completed = len(completed)
	if len(completed) == 0 {
		return stats
	}

	beforeSum, afterSum := 0, 0
	counts := make(map[models.CognitiveDistortion]int)
	var order []models.CognitiveDistortion
	for _, r := range completed {
		beforeSum += r.EmotionIntensity
		afterSum += r.OutcomeIntensity
		for _, d := range r.Distortions {
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}
	}

	avgBefore := float64(beforeSum) / float64(len(completed))
	avgAfter := float64(afterSum) / float64(len(completed))
	stats.AvgEmotionBefore = roundToInt(avgBefore)
	stats.AvgEmotionAfter = roundToInt(avgAfter)
	stats.AvgReduction = roundToInt(avgBefore - avgAfter)

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 3 {
		order = order[:3]
	}
	stats.TopDistortions = order

	return stats
}

// ExperimentStats summarizes behavioral experiments in a window.
type ExperimentStats struct {
	Total              int `json:"total" yaml:"total"`
	Completed          int `json:"completed" yaml:"completed"`
	AvgBeliefReduction int `json:"avgBeliefReduction" yaml:"avgBeliefReduction"`
}

// CalculateExperimentStats computes the mean belief-strength reduction over
// completed experiments that recorded an after rating.
func CalculateExperimentStats(experiments []models.BehavioralExperiment) ExperimentStats {
	stats := ExperimentStats{Total: len(experiments)}

	reductionSum, reductionCount := 0, 0
	for _, e := range experiments {
		if !e.Completed {
			continue
		}
		stats.Completed++
		if e.BeliefStrengthAfter != nil {
			reductionSum += e.BeliefStrength - *e.BeliefStrengthAfter
			reductionCount++
		}
	}
	if reductionCount > 0 {
		stats.AvgBeliefReduction = roundToInt(float64(reductionSum) / float64(reductionCount))
	}

	return stats
}

// HierarchyStats summarizes exposure hierarchy progress.
type HierarchyStats struct {
	Total                int `json:"total" yaml:"total"`
	Completed            int `json:"completed" yaml:"completed"`
	InProgress           int `json:"inProgress" yaml:"inProgress"`
	AvgDistressReduction int `json:"avgDistressReduction" yaml:"avgDistressReduction"`
	TotalExposures       int `json:"totalExposures" yaml:"totalExposures"`
}

// CalculateHierarchyStats counts complete and in-progress items and averages
// distress reduction over items with at least one exposure attempt.
// In-progress means not complete with one or more attempts.
func CalculateHierarchyStats(items []models.AnxietyHierarchyItem) HierarchyStats {
	stats := HierarchyStats{Total: len(items)}

	reductionSum, reductionCount := 0, 0
	for _, item := range items {
		stats.TotalExposures += len(item.ExposureAttempts)
		if item.IsComplete {
			stats.Completed++
		} else if len(item.ExposureAttempts) > 0 {
			stats.InProgress++
		}
		if len(item.ExposureAttempts) > 0 {
			reductionSum += item.InitialDistress - item.CurrentDistress
			reductionCount++
		}
	}
	if reductionCount > 0 {
		stats.AvgDistressReduction = roundToInt(float64(reductionSum) / float64(reductionCount))
	}

	return stats
}
