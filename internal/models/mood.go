// ABOUTME: MoodLog model and calendar-date helpers.
// ABOUTME: Mood is rated 1-10, anxiety 0-10; date is the calendar day of the timestamp.
package models

import "time"

// DateLayout is the calendar-date format used across all collections.
const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t in DateLayout form.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// MoodLog represents a single mood check-in.
type MoodLog struct {
	ID               int64     `json:"id" yaml:"id"`
	Date             string    `json:"date" yaml:"date"`
	Timestamp        time.Time `json:"timestamp" yaml:"timestamp"`
	Mood             int       `json:"mood" yaml:"mood"`       // 1-10
	Anxiety          int       `json:"anxiety" yaml:"anxiety"` // 0-10
	Notes            *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	IsAnxietyEpisode bool      `json:"isAnxietyEpisode" yaml:"isAnxietyEpisode"`
	LinkedBPID       *int64    `json:"linkedBpId,omitempty" yaml:"linkedBpId,omitempty"`
	LinkedEpisodeID  *int64    `json:"linkedEpisodeId,omitempty" yaml:"linkedEpisodeId,omitempty"`
}

// NewMoodLog creates a mood log stamped with the current time.
func NewMoodLog(mood, anxiety int) *MoodLog {
	now := time.Now()
	return &MoodLog{
		Date:      DateOf(now),
		Timestamp: now,
		Mood:      mood,
		Anxiety:   anxiety,
	}
}

// WithTimestamp sets a custom timestamp and re-derives the date.
func (m *MoodLog) WithTimestamp(t time.Time) *MoodLog {
	m.Timestamp = t
	m.Date = DateOf(t)
	return m
}

// WithNotes sets notes on the mood log.
func (m *MoodLog) WithNotes(notes string) *MoodLog {
	m.Notes = &notes
	return m
}

// WithLinkedBP links a BP reading taken at the same time.
func (m *MoodLog) WithLinkedBP(bpID int64) *MoodLog {
	m.LinkedBPID = &bpID
	return m
}
