// ABOUTME: UserProfile and Settings singleton models with computed defaults.
// ABOUTME: At most one record of each exists; creation is idempotent.
package models

import "time"

// UserProfile holds optional demographics and medical context for reports.
type UserProfile struct {
	ID int64 `json:"id" yaml:"id"`

	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Age  *int    `json:"age,omitempty" yaml:"age,omitempty"`

	Conditions  []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Medications []string `json:"medications,omitempty" yaml:"medications,omitempty"`

	HasPacemaker      bool `json:"hasPacemaker" yaml:"hasPacemaker"`
	HasCardiacMonitor bool `json:"hasCardiacMonitor" yaml:"hasCardiacMonitor"`

	PrimaryCareProvider *string `json:"primaryCareProvider,omitempty" yaml:"primaryCareProvider,omitempty"`
	Therapist           *string `json:"therapist,omitempty" yaml:"therapist,omitempty"`
	Psychiatrist        *string `json:"psychiatrist,omitempty" yaml:"psychiatrist,omitempty"`
	Cardiologist        *string `json:"cardiologist,omitempty" yaml:"cardiologist,omitempty"`

	OnboardingCompleted bool `json:"onboardingCompleted" yaml:"onboardingCompleted"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// DefaultProfile returns the minimal profile created on first run.
func DefaultProfile() *UserProfile {
	now := time.Now()
	return &UserProfile{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Settings holds display, notification, and goal preferences.
type Settings struct {
	ID int64 `json:"id" yaml:"id"`

	Theme         string `json:"theme" yaml:"theme"`       // light | dark | system
	FontSize      string `json:"fontSize" yaml:"fontSize"` // normal | large | extra-large
	HighContrast  bool   `json:"highContrast" yaml:"highContrast"`
	ReducedMotion bool   `json:"reducedMotion" yaml:"reducedMotion"`

	NotificationsEnabled bool    `json:"notificationsEnabled" yaml:"notificationsEnabled"`
	MorningCheckInTime   *string `json:"morningCheckInTime,omitempty" yaml:"morningCheckInTime,omitempty"` // HH:MM
	EveningReviewTime    *string `json:"eveningReviewTime,omitempty" yaml:"eveningReviewTime,omitempty"`   // HH:MM
	ActivityReminders    bool    `json:"activityReminders" yaml:"activityReminders"`

	DefaultBreathingRounds     int `json:"defaultBreathingRounds" yaml:"defaultBreathingRounds"`
	DefaultMindfulnessDuration int `json:"defaultMindfulnessDuration" yaml:"defaultMindfulnessDuration"` // minutes

	AutoBackup      bool    `json:"autoBackup" yaml:"autoBackup"`
	BackupFrequency *string `json:"backupFrequency,omitempty" yaml:"backupFrequency,omitempty"` // daily | weekly
	LastBackup      *string `json:"lastBackup,omitempty" yaml:"lastBackup,omitempty"`

	WeeklyMindfulnessGoal   *int `json:"weeklyMindfulnessGoal,omitempty" yaml:"weeklyMindfulnessGoal,omitempty"`
	WeeklyActivityGoal      *int `json:"weeklyActivityGoal,omitempty" yaml:"weeklyActivityGoal,omitempty"`
	WeeklyThoughtRecordGoal *int `json:"weeklyThoughtRecordGoal,omitempty" yaml:"weeklyThoughtRecordGoal,omitempty"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// DefaultSettings returns the computed defaults inserted on first run.
func DefaultSettings() *Settings {
	now := time.Now()
	morning := "08:00"
	evening := "20:00"
	mindfulnessGoal := 5
	activityGoal := 14
	thoughtGoal := 2
	return &Settings{
		Theme:         "light",
		FontSize:      "large",
		HighContrast:  false,
		ReducedMotion: false,

		NotificationsEnabled: true,
		MorningCheckInTime:   &morning,
		EveningReviewTime:    &evening,
		ActivityReminders:    true,

		DefaultBreathingRounds:     4,
		DefaultMindfulnessDuration: 5,

		WeeklyMindfulnessGoal:   &mindfulnessGoal,
		WeeklyActivityGoal:      &activityGoal,
		WeeklyThoughtRecordGoal: &thoughtGoal,

		CreatedAt: now,
		UpdatedAt: now,
	}
}
