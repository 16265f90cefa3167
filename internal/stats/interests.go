// ABOUTME: Reducer for interest session history: time totals and mood/energy impact.
package stats

import (
	"math"

	"github.com/myndness/mynd/internal/models"
)

// InterestSessionStats summarizes one interest's session history. Averages
// carry one decimal place; impact fields are after minus before.
type InterestSessionStats struct {
	TotalSessions   int                                `json:"totalSessions" yaml:"totalSessions"`
	TotalMinutes    int                                `json:"totalMinutes" yaml:"totalMinutes"`
	AvgMoodBefore   float64                            `json:"avgMoodBefore" yaml:"avgMoodBefore"`
	AvgMoodAfter    float64                            `json:"avgMoodAfter" yaml:"avgMoodAfter"`
	AvgMoodImpact   float64                            `json:"avgMoodImpact" yaml:"avgMoodImpact"`
	AvgEnergyImpact float64                            `json:"avgEnergyImpact" yaml:"avgEnergyImpact"`
	ByType          map[models.InterestSessionType]int `json:"byType" yaml:"byType"`
}

// CalculateInterestSessionStats totals session time and averages the mood and
// energy deltas. Mood averages cover only sessions with both mood ratings;
// the energy impact covers only sessions with both energy ratings. Every
// session counts toward the totals and the per-type breakdown.
func CalculateInterestSessionStats(sessions []models.InterestSession) InterestSessionStats {
	stats := InterestSessionStats{
		TotalSessions: len(sessions),
		ByType:        make(map[models.InterestSessionType]int),
	}

	moodBeforeSum, moodAfterSum, moodCount := 0, 0, 0
	energyBeforeSum, energyAfterSum, energyCount := 0, 0, 0
	for _, s := range sessions {
		stats.TotalMinutes += s.Duration
		stats.ByType[s.SessionType]++

		if s.MoodBefore != nil && s.MoodAfter != nil {
			moodBeforeSum += *s.MoodBefore
			moodAfterSum += *s.MoodAfter
			moodCount++
		}
		if s.EnergyBefore != nil && s.EnergyAfter != nil {
			energyBeforeSum += *s.EnergyBefore
			energyAfterSum += *s.EnergyAfter
			energyCount++
		}
	}

	if moodCount > 0 {
		before := float64(moodBeforeSum) / float64(moodCount)
		after := float64(moodAfterSum) / float64(moodCount)
		stats.AvgMoodBefore = round1(before)
		stats.AvgMoodAfter = round1(after)
		stats.AvgMoodImpact = round1(after - before)
	}
	if energyCount > 0 {
		before := float64(energyBeforeSum) / float64(energyCount)
		after := float64(energyAfterSum) / float64(energyCount)
		stats.AvgEnergyImpact = round1(after - before)
	}

	return stats
}

// round1 rounds to one decimal place.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
