// ABOUTME: SpecialInterest and InterestSession models for interest tracking.
// ABOUTME: Sessions record time spent on an interest with before/after mood and energy.
package models

import "time"

// InterestSessionType identifies how a session engaged with the interest.
type InterestSessionType string

const (
	InterestSessionResearch   InterestSessionType = "research"
	InterestSessionCreating   InterestSessionType = "creating"
	InterestSessionOrganizing InterestSessionType = "organizing"
	InterestSessionSharing    InterestSessionType = "sharing"
	InterestSessionConsuming  InterestSessionType = "consuming"
)

// AllInterestSessionTypes returns all valid interest session types.
var AllInterestSessionTypes = []InterestSessionType{
	InterestSessionResearch, InterestSessionCreating, InterestSessionOrganizing,
	InterestSessionSharing, InterestSessionConsuming,
}

// IsValidInterestSessionType checks if a string is a valid session type.
func IsValidInterestSessionType(s string) bool {
	for _, t := range AllInterestSessionTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// SpecialInterest is a long-running interest area the user tracks time
// against. Interests are paused rather than deleted so session history
// stays attached.
type SpecialInterest struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`

	CurrentlyActive bool `json:"currentlyActive" yaml:"currentlyActive"`
}

// NewSpecialInterest creates an active interest.
func NewSpecialInterest(name, category string) *SpecialInterest {
	return &SpecialInterest{
		CreatedAt:       time.Now(),
		Name:            name,
		Category:        category,
		CurrentlyActive: true,
	}
}

// InterestSession is one block of time spent on a special interest.
type InterestSession struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	InterestID  int64               `json:"interestId" yaml:"interestId"`
	SessionType InterestSessionType `json:"sessionType" yaml:"sessionType"`
	Duration    int                 `json:"duration" yaml:"duration"` // minutes

	MoodBefore   *int `json:"moodBefore,omitempty" yaml:"moodBefore,omitempty"`     // 1-10
	MoodAfter    *int `json:"moodAfter,omitempty" yaml:"moodAfter,omitempty"`       // 1-10
	EnergyBefore *int `json:"energyBefore,omitempty" yaml:"energyBefore,omitempty"` // 1-10
	EnergyAfter  *int `json:"energyAfter,omitempty" yaml:"energyAfter,omitempty"`   // 1-10

	Notes *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewInterestSession records a session at the current time.
func NewInterestSession(interestID int64, sessionType InterestSessionType, minutes int) *InterestSession {
	now := time.Now()
	return &InterestSession{
		Date:        DateOf(now),
		Timestamp:   now,
		InterestID:  interestID,
		SessionType: sessionType,
		Duration:    minutes,
	}
}
