// ABOUTME: Weekly insight composition over pre-windowed record slices.
// ABOUTME: Means of empty sets are nil pointers; count-like fields default to 0.
package stats

import "github.com/myndness/mynd/internal/models"

// WeeklyInsights summarizes one window of mood, activity, mindfulness, and
// BP data. Nil pointer fields mean "no data", which is distinct from data
// averaging to zero.
type WeeklyInsights struct {
	AvgMood     *float64 `json:"avgMood,omitempty" yaml:"avgMood,omitempty"`
	AvgAnxiety  *float64 `json:"avgAnxiety,omitempty" yaml:"avgAnxiety,omitempty"`
	MoodEntries int      `json:"moodEntries" yaml:"moodEntries"`

	ActivitiesPlanned   int     `json:"activitiesPlanned" yaml:"activitiesPlanned"`
	ActivitiesCompleted int     `json:"activitiesCompleted" yaml:"activitiesCompleted"`
	CompletionRate      float64 `json:"completionRate" yaml:"completionRate"` // 0-100

	MindfulnessSessions     int      `json:"mindfulnessSessions" yaml:"mindfulnessSessions"`
	TotalMindfulnessMinutes int      `json:"totalMindfulnessMinutes" yaml:"totalMindfulnessMinutes"`
	AvgSessionDuration      *float64 `json:"avgSessionDuration,omitempty" yaml:"avgSessionDuration,omitempty"`

	AvgSystolic  *int `json:"avgSystolic,omitempty" yaml:"avgSystolic,omitempty"`
	AvgDiastolic *int `json:"avgDiastolic,omitempty" yaml:"avgDiastolic,omitempty"`
	BPReadings   int  `json:"bpReadings" yaml:"bpReadings"`

	BestCategory       *models.ActivityCategory `json:"bestCategory,omitempty" yaml:"bestCategory,omitempty"`
	BestCategoryImpact *float64                 `json:"bestCategoryImpact,omitempty" yaml:"bestCategoryImpact,omitempty"`
}

// GetWeeklyInsights reduces record slices already restricted to a window
// into a single summary. Completion rate is 0 when nothing was planned.
func GetWeeklyInsights(
	moodLogs []models.MoodLog,
	activities []models.PlannedActivity,
	sessions []models.MindfulnessSession,
	bpReadings []models.BPReading,
) WeeklyInsights {
	insights := WeeklyInsights{MoodEntries: len(moodLogs)}

	if len(moodLogs) > 0 {
		moodSum, anxietySum := 0, 0
		for _, l := range moodLogs {
			moodSum += l.Mood
			anxietySum += l.Anxiety
		}
		avgMood := float64(moodSum) / float64(len(moodLogs))
		avgAnxiety := float64(anxietySum) / float64(len(moodLogs))
		insights.AvgMood = &avgMood
		insights.AvgAnxiety = &avgAnxiety
	}

	insights.ActivitiesPlanned = len(activities)
	for _, a := range activities {
		if a.Completed {
			insights.ActivitiesCompleted++
		}
	}
	if insights.ActivitiesPlanned > 0 {
		insights.CompletionRate = float64(insights.ActivitiesCompleted) / float64(insights.ActivitiesPlanned) * 100
	}

	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		insights.MindfulnessSessions++
		insights.TotalMindfulnessMinutes += s.Minutes()
	}
	if insights.MindfulnessSessions > 0 {
		avgDuration := float64(insights.TotalMindfulnessMinutes) / float64(insights.MindfulnessSessions)
		insights.AvgSessionDuration = &avgDuration
	}

	insights.BPReadings = len(bpReadings)
	if len(bpReadings) > 0 {
		sysSum, diaSum := 0, 0
		for _, r := range bpReadings {
			sysSum += r.Systolic
			diaSum += r.Diastolic
		}
		avgSys := roundToInt(float64(sysSum) / float64(len(bpReadings)))
		avgDia := roundToInt(float64(diaSum) / float64(len(bpReadings)))
		insights.AvgSystolic = &avgSys
		insights.AvgDiastolic = &avgDia
	}

	if impacts := CalculateActivityImpact(activities); len(impacts) > 0 {
		insights.BestCategory = &impacts[0].Category
		insights.BestCategoryImpact = &impacts[0].MoodChange
	}

	return insights
}
