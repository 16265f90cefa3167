// ABOUTME: Activity mood-impact calculation per category.
// ABOUTME: Only completed activities with both mood ratings qualify.
package stats

import (
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// ActivityImpact is the average mood change attributed to one category.
type ActivityImpact struct {
	Category      models.ActivityCategory `json:"category" yaml:"category"`
	AvgMoodBefore float64                 `json:"avgMoodBefore" yaml:"avgMoodBefore"`
	AvgMoodAfter  float64                 `json:"avgMoodAfter" yaml:"avgMoodAfter"`
	MoodChange    float64                 `json:"moodChange" yaml:"moodChange"`
	Count         int                     `json:"count" yaml:"count"`
}

// CalculateActivityImpact computes the mean before/after mood per category
// over completed activities that carry both ratings. A record missing either
// rating is excluded entirely. Categories with no qualifying records are
// omitted. The result is sorted descending by mood change, greatest
// improvement first.
func CalculateActivityImpact(activities []models.PlannedActivity) []ActivityImpact {
	type acc struct {
		before, after int
		count         int
	}
	byCategory := make(map[models.ActivityCategory]*acc)
	for _, act := range activities {
		if !act.Completed || act.MoodBefore == nil || act.MoodAfter == nil {
			continue
		}
		a := byCategory[act.Category]
		if a == nil {
			a = &acc{}
			byCategory[act.Category] = a
		}
		a.before += *act.MoodBefore
		a.after += *act.MoodAfter
		a.count++
	}

	out := make([]ActivityImpact, 0, len(byCategory))
	for category, a := range byCategory {
		avgBefore := float64(a.before) / float64(a.count)
		avgAfter := float64(a.after) / float64(a.count)
		out = append(out, ActivityImpact{
			Category:      category,
			AvgMoodBefore: avgBefore,
			AvgMoodAfter:  avgAfter,
			MoodChange:    avgAfter - avgBefore,
			Count:         a.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MoodChange > out[j].MoodChange })
	return out
}
