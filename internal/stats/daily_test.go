// ABOUTME: Tests for daily mood and BP aggregation.
// ABOUTME: Covers per-day averaging, rounding, and heart-rate/anxiety handling.
package stats

import (
	"testing"
	"time"

	"github.com/myndness/mynd/internal/models"
)

func intp(v int) *int { return &v }

func moodLogOn(date string, mood, anxiety int) models.MoodLog {
	ts, _ := time.Parse(models.DateLayout, date)
	return models.MoodLog{Date: date, Timestamp: ts, Mood: mood, Anxiety: anxiety}
}

func TestAggregateMoodByDayAveragesWithinDay(t *testing.T) {
	logs := []models.MoodLog{
		moodLogOn("2024-01-01", 6, 2),
		moodLogOn("2024-01-01", 8, 4),
	}

	days := AggregateMoodByDay(logs)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	d := days[0]
	if d.Date != "2024-01-01" {
		t.Errorf("Date = %s, want 2024-01-01", d.Date)
	}
	if d.AvgMood != 7 {
		t.Errorf("AvgMood = %v, want 7", d.AvgMood)
	}
	if d.AvgAnxiety != 3 {
		t.Errorf("AvgAnxiety = %v, want 3", d.AvgAnxiety)
	}
	if d.Count != 2 {
		t.Errorf("Count = %d, want 2", d.Count)
	}
}

func TestAggregateMoodByDayOrdersAscending(t *testing.T) {
	logs := []models.MoodLog{
		moodLogOn("2024-01-03", 5, 5),
		moodLogOn("2024-01-01", 6, 2),
		moodLogOn("2024-01-02", 7, 1),
	}

	days := AggregateMoodByDay(logs)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, want := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if days[i].Date != want {
			t.Errorf("days[%d].Date = %s, want %s", i, days[i].Date, want)
		}
	}
}

func TestAggregateMoodByDayEmpty(t *testing.T) {
	if days := AggregateMoodByDay(nil); len(days) != 0 {
		t.Errorf("expected empty result, got %v", days)
	}
}

func TestAggregateBPByDayRoundsAndAveragesHeartRate(t *testing.T) {
	readings := []models.BPReading{
		{Date: "2024-02-01", Systolic: 121, Diastolic: 80, HeartRate: intp(70)},
		{Date: "2024-02-01", Systolic: 124, Diastolic: 81},
		{Date: "2024-02-01", Systolic: 130, Diastolic: 85, HeartRate: intp(75)},
	}

	days := AggregateBPByDay(readings)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	d := days[0]
	if d.AvgSystolic != 125 { // 375/3
		t.Errorf("AvgSystolic = %d, want 125", d.AvgSystolic)
	}
	if d.AvgDiastolic != 82 { // 246/3
		t.Errorf("AvgDiastolic = %d, want 82", d.AvgDiastolic)
	}
	// Heart-rate average covers only the two readings that recorded one.
	if d.AvgHeartRate == nil || *d.AvgHeartRate != 73 { // round(72.5)
		t.Errorf("AvgHeartRate = %v, want 73", d.AvgHeartRate)
	}
	if d.Count != 3 {
		t.Errorf("Count = %d, want 3", d.Count)
	}
}

func TestAggregateBPByDayHeartRateNilWhenAbsent(t *testing.T) {
	readings := []models.BPReading{
		{Date: "2024-02-01", Systolic: 120, Diastolic: 80},
	}

	days := AggregateBPByDay(readings)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].AvgHeartRate != nil {
		t.Errorf("AvgHeartRate = %v, want nil", *days[0].AvgHeartRate)
	}
}

func TestAggregateBPByDayAnxietyFlagIsOR(t *testing.T) {
	readings := []models.BPReading{
		{Date: "2024-02-01", Systolic: 120, Diastolic: 80},
		{Date: "2024-02-01", Systolic: 140, Diastolic: 90, IsAnxietyRelated: true},
		{Date: "2024-02-02", Systolic: 118, Diastolic: 78},
	}

	days := AggregateBPByDay(readings)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if !days[0].HasAnxietyRelated {
		t.Error("2024-02-01 should be flagged anxiety-related")
	}
	if days[1].HasAnxietyRelated {
		t.Error("2024-02-02 should not be flagged anxiety-related")
	}
}
