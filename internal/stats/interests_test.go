// ABOUTME: Tests for the interest session reducer.
package stats

import (
	"testing"

	"github.com/myndness/mynd/internal/models"
)

func interestSession(sessionType models.InterestSessionType, minutes int) models.InterestSession {
	return models.InterestSession{SessionType: sessionType, Duration: minutes}
}

func TestCalculateInterestSessionStats(t *testing.T) {
	rated := interestSession(models.InterestSessionResearch, 30)
	rated.MoodBefore, rated.MoodAfter = intp(5), intp(8)
	rated.EnergyBefore, rated.EnergyAfter = intp(4), intp(6)

	moodOnly := interestSession(models.InterestSessionResearch, 60)
	moodOnly.MoodBefore, moodOnly.MoodAfter = intp(6), intp(8)

	unrated := interestSession(models.InterestSessionCreating, 30)

	st := CalculateInterestSessionStats([]models.InterestSession{rated, moodOnly, unrated})

	if st.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", st.TotalSessions)
	}
	if st.TotalMinutes != 120 {
		t.Errorf("TotalMinutes = %d, want 120", st.TotalMinutes)
	}

	// Mood averages cover only the two sessions with both ratings.
	if st.AvgMoodBefore != 5.5 {
		t.Errorf("AvgMoodBefore = %v, want 5.5", st.AvgMoodBefore)
	}
	if st.AvgMoodAfter != 8.0 {
		t.Errorf("AvgMoodAfter = %v, want 8.0", st.AvgMoodAfter)
	}
	if st.AvgMoodImpact != 2.5 {
		t.Errorf("AvgMoodImpact = %v, want 2.5", st.AvgMoodImpact)
	}

	// Only one session carries both energy ratings.
	if st.AvgEnergyImpact != 2.0 {
		t.Errorf("AvgEnergyImpact = %v, want 2.0", st.AvgEnergyImpact)
	}

	if st.ByType[models.InterestSessionResearch] != 2 || st.ByType[models.InterestSessionCreating] != 1 {
		t.Errorf("ByType = %v, want research 2, creating 1", st.ByType)
	}
}

func TestCalculateInterestSessionStatsRoundsToOneDecimal(t *testing.T) {
	var sessions []models.InterestSession
	for _, mood := range [][2]int{{5, 7}, {6, 8}, {6, 8}} {
		s := interestSession(models.InterestSessionConsuming, 20)
		s.MoodBefore, s.MoodAfter = intp(mood[0]), intp(mood[1])
		sessions = append(sessions, s)
	}

	st := CalculateInterestSessionStats(sessions)

	// 17/3 and 23/3 round to one decimal; the impact is the exact 2.0 delta.
	if st.AvgMoodBefore != 5.7 {
		t.Errorf("AvgMoodBefore = %v, want 5.7", st.AvgMoodBefore)
	}
	if st.AvgMoodAfter != 7.7 {
		t.Errorf("AvgMoodAfter = %v, want 7.7", st.AvgMoodAfter)
	}
	if st.AvgMoodImpact != 2.0 {
		t.Errorf("AvgMoodImpact = %v, want 2.0", st.AvgMoodImpact)
	}
}

func TestCalculateInterestSessionStatsEmpty(t *testing.T) {
	st := CalculateInterestSessionStats(nil)

	if st.TotalSessions != 0 || st.TotalMinutes != 0 {
		t.Errorf("totals = %d sessions, %d minutes, want zeros", st.TotalSessions, st.TotalMinutes)
	}
	if st.AvgMoodBefore != 0 || st.AvgMoodImpact != 0 || st.AvgEnergyImpact != 0 {
		t.Errorf("averages = %+v, want zeros", st)
	}
	if len(st.ByType) != 0 {
		t.Errorf("ByType = %v, want empty", st.ByType)
	}
}
