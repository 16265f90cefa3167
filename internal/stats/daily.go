// ABOUTME: Daily aggregation of mood logs and BP readings.
// ABOUTME: Pure functions; empty input yields an empty slice, never an error.
package stats

import (
	"math"
	"sort"

	"github.com/myndness/mynd/internal/models"
)

// DailyMood is one day's averaged mood data.
type DailyMood struct {
	Date       string  `json:"date" yaml:"date"`
	AvgMood    float64 `json:"avgMood" yaml:"avgMood"`
	AvgAnxiety float64 `json:"avgAnxiety" yaml:"avgAnxiety"`
	Count      int     `json:"count" yaml:"count"`
}

// AggregateMoodByDay groups mood logs by calendar date and averages mood and
// anxiety per day. Multiple logs on one day fold by arithmetic mean.
// The result is ordered ascending by date.
func AggregateMoodByDay(logs []models.MoodLog) []DailyMood {
	type acc struct {
		mood, anxiety int
		count         int
	}
	byDate := make(map[string]*acc)
	for _, l := range logs {
		a := byDate[l.Date]
		if a == nil {
			a = &acc{}
			byDate[l.Date] = a
		}
		a.mood += l.Mood
		a.anxiety += l.Anxiety
		a.count++
	}

	out := make([]DailyMood, 0, len(byDate))
	for date, a := range byDate {
		out = append(out, DailyMood{
			Date:       date,
			AvgMood:    float64(a.mood) / float64(a.count),
			AvgAnxiety: float64(a.anxiety) / float64(a.count),
			Count:      a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DailyBP is one day's averaged blood pressure data. AvgHeartRate is nil
// when no reading that day carried a heart rate.
type DailyBP struct {
	Date              string `json:"date" yaml:"date"`
	AvgSystolic       int    `json:"avgSystolic" yaml:"avgSystolic"`
	AvgDiastolic      int    `json:"avgDiastolic" yaml:"avgDiastolic"`
	AvgHeartRate      *int   `json:"avgHeartRate,omitempty" yaml:"avgHeartRate,omitempty"`
	Count             int    `json:"count" yaml:"count"`
	HasAnxietyRelated bool   `json:"hasAnxietyRelated" yaml:"hasAnxietyRelated"`
}

// AggregateBPByDay groups BP readings by calendar date. Systolic and
// diastolic averages are rounded to the nearest integer. The heart rate
// average covers only readings that recorded one. HasAnxietyRelated is a
// logical OR across the day's readings.
func AggregateBPByDay(readings []models.BPReading) []DailyBP {
	type acc struct {
		systolic, diastolic int
		heartRate, hrCount  int
		count               int
		anxietyRelated      bool
	}
	byDate := make(map[string]*acc)
	for _, r := range readings {
		a := byDate[r.Date]
		if a == nil {
			a = &acc{}
			byDate[r.Date] = a
		}
		a.systolic += r.Systolic
		a.diastolic += r.Diastolic
		if r.HeartRate != nil {
			a.heartRate += *r.HeartRate
			a.hrCount++
		}
		a.count++
		a.anxietyRelated = a.anxietyRelated || r.IsAnxietyRelated
	}

	out := make([]DailyBP, 0, len(byDate))
	for date, a := range byDate {
		d := DailyBP{
			Date:              date,
			AvgSystolic:       roundToInt(float64(a.systolic) / float64(a.count)),
			AvgDiastolic:      roundToInt(float64(a.diastolic) / float64(a.count)),
			Count:             a.count,
			HasAnxietyRelated: a.anxietyRelated,
		}
		if a.hrCount > 0 {
			hr := roundToInt(float64(a.heartRate) / float64(a.hrCount))
			d.AvgHeartRate = &hr
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}
