// ABOUTME: MindfulnessSession model and practice type enum.
// ABOUTME: When durationActual is absent, minute totals fall back to the planned duration.
package models

import "time"

// MindfulnessPracticeType identifies the kind of practice.
type MindfulnessPracticeType string

const (
	PracticeBreathAwareness   MindfulnessPracticeType = "breath-awareness"
	PracticeBodyScanShort     MindfulnessPracticeType = "body-scan-short"
	PracticeBodyScanFull      MindfulnessPracticeType = "body-scan-full"
	PracticeLovingKindness    MindfulnessPracticeType = "loving-kindness"
	PracticeOpenAwareness     MindfulnessPracticeType = "open-awareness"
	PracticeWalkingMeditation MindfulnessPracticeType = "walking-meditation"
	PracticeSoundAwareness    MindfulnessPracticeType = "sound-awareness"
	PracticeOtherMindfulness  MindfulnessPracticeType = "other"
)

// AllPracticeTypes returns all valid mindfulness practice types.
var AllPracticeTypes = []MindfulnessPracticeType{
	PracticeBreathAwareness, PracticeBodyScanShort, PracticeBodyScanFull,
	PracticeLovingKindness, PracticeOpenAwareness, PracticeWalkingMeditation,
	PracticeSoundAwareness, PracticeOtherMindfulness,
}

// IsValidPracticeType checks if a string is a valid practice type.
func IsValidPracticeType(s string) bool {
	for _, p := range AllPracticeTypes {
		if string(p) == s {
			return true
		}
	}
	return false
}

// MindfulnessSession represents one mindfulness practice session.
type MindfulnessSession struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	PracticeType    MindfulnessPracticeType `json:"practiceType" yaml:"practiceType"`
	DurationPlanned int                     `json:"durationPlanned" yaml:"durationPlanned"` // minutes
	DurationActual  *int                    `json:"durationActual,omitempty" yaml:"durationActual,omitempty"`

	MoodBefore    *int `json:"moodBefore,omitempty" yaml:"moodBefore,omitempty"`       // 1-10
	AnxietyBefore *int `json:"anxietyBefore,omitempty" yaml:"anxietyBefore,omitempty"` // 0-10
	MoodAfter     *int `json:"moodAfter,omitempty" yaml:"moodAfter,omitempty"`
	AnxietyAfter  *int `json:"anxietyAfter,omitempty" yaml:"anxietyAfter,omitempty"`

	FocusQuality *int `json:"focusQuality,omitempty" yaml:"focusQuality,omitempty"` // 0-10
	Restlessness *int `json:"restlessness,omitempty" yaml:"restlessness,omitempty"` // 0-10
	Completed    bool `json:"completed" yaml:"completed"`

	Notes *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewMindfulnessSession creates a session stamped with the current time.
func NewMindfulnessSession(practice MindfulnessPracticeType, plannedMinutes int) *MindfulnessSession {
	now := time.Now()
	return &MindfulnessSession{
		Date:            DateOf(now),
		Timestamp:       now,
		PracticeType:    practice,
		DurationPlanned: plannedMinutes,
	}
}

// Minutes returns the session's contribution to minute totals:
// actual duration when recorded, otherwise the planned duration.
func (s *MindfulnessSession) Minutes() int {
	if s.DurationActual != nil {
		return *s.DurationActual
	}
	return s.DurationPlanned
}
