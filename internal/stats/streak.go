// ABOUTME: Consecutive-day streak calculation for completed sessions and activities.
// ABOUTME: Today is injected so callers and tests control the anchor date.
package stats

import (
	"sort"
	"time"

	"github.com/myndness/mynd/internal/models"
)

// CalculateMindfulnessStreak counts consecutive calendar days with at least
// one completed mindfulness session, anchored at or within one day of today.
func CalculateMindfulnessStreak(sessions []models.MindfulnessSession, today time.Time) int {
	var dates []string
	for _, s := range sessions {
		if s.Completed {
			dates = append(dates, s.Date)
		}
	}
	return streakFromDates(dates, today)
}

// CalculateActivityStreak counts consecutive calendar days with at least one
// completed planned activity, anchored at or within one day of today.
func CalculateActivityStreak(activities []models.PlannedActivity, today time.Time) int {
	var dates []string
	for _, a := range activities {
		if a.Completed {
			dates = append(dates, a.Date)
		}
	}
	return streakFromDates(dates, today)
}

// streakFromDates walks distinct completion dates from most recent backward.
// A most-recent date two or more days before today breaks the streak to 0;
// yesterday does not, allowing for today not yet having an entry.
func streakFromDates(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(dates))
	unique := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		t, err := time.Parse(models.DateLayout, d)
		if err != nil {
			continue
		}
		unique = append(unique, t)
	}
	if len(unique) == 0 {
		return 0
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].After(unique[j]) })

	anchor, _ := time.Parse(models.DateLayout, models.DateOf(today))
	if daysBetween(unique[0], anchor) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(unique); i++ {
		if daysBetween(unique[i], unique[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// daysBetween returns whole calendar days from earlier to later.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
