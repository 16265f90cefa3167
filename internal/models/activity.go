// ABOUTME: PlannedActivity and ActivityLibraryItem models for behavioral activation.
// ABOUTME: Before/after mood ratings are only meaningful once an activity is completed.
package models

import "time"

// ActivityCategory classifies a behavioral activation activity.
type ActivityCategory string

const (
	CategorySocial   ActivityCategory = "social"
	CategoryCreative ActivityCategory = "creative"
	CategoryPhysical ActivityCategory = "physical"
	CategoryLearning ActivityCategory = "learning"
	CategoryMastery  ActivityCategory = "mastery"
	CategoryPleasure ActivityCategory = "pleasure"
)

// AllActivityCategories returns all valid activity categories.
var AllActivityCategories = []ActivityCategory{
	CategorySocial, CategoryCreative, CategoryPhysical,
	CategoryLearning, CategoryMastery, CategoryPleasure,
}

// IsValidActivityCategory checks if a string is a valid category.
func IsValidActivityCategory(s string) bool {
	for _, c := range AllActivityCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// TimeBlock is the part of day an activity is planned for.
type TimeBlock string

const (
	BlockMorning   TimeBlock = "morning"
	BlockAfternoon TimeBlock = "afternoon"
	BlockEvening   TimeBlock = "evening"
)

// PlannedActivity represents a scheduled behavioral activation activity.
type PlannedActivity struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Activity          string           `json:"activity" yaml:"activity"`
	Category          ActivityCategory `json:"category" yaml:"category"`
	TimeBlock         TimeBlock        `json:"timeBlock" yaml:"timeBlock"`
	EstimatedDuration *int             `json:"estimatedDuration,omitempty" yaml:"estimatedDuration,omitempty"` // minutes

	Completed      bool       `json:"completed" yaml:"completed"`
	CompletedAt    *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	ActualDuration *int       `json:"actualDuration,omitempty" yaml:"actualDuration,omitempty"`

	// Ratings, filled after completion.
	Enjoyment  *int `json:"enjoyment,omitempty" yaml:"enjoyment,omitempty"`   // 0-10
	Mastery    *int `json:"mastery,omitempty" yaml:"mastery,omitempty"`       // 0-10
	MoodBefore *int `json:"moodBefore,omitempty" yaml:"moodBefore,omitempty"` // 1-10
	MoodAfter  *int `json:"moodAfter,omitempty" yaml:"moodAfter,omitempty"`   // 1-10

	LinkedExperimentID *int64  `json:"linkedExperimentId,omitempty" yaml:"linkedExperimentId,omitempty"`
	Notes              *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewPlannedActivity plans an activity for the given date.
func NewPlannedActivity(activity string, category ActivityCategory, block TimeBlock, date string) *PlannedActivity {
	return &PlannedActivity{
		Date:      date,
		CreatedAt: time.Now(),
		Activity:  activity,
		Category:  category,
		TimeBlock: block,
	}
}

// ActivityCompletion carries the ratings recorded when an activity is done.
type ActivityCompletion struct {
	CompletedAt    time.Time
	ActualDuration *int
	Enjoyment      *int
	Mastery        *int
	MoodBefore     *int
	MoodAfter      *int
}

// ActivityLibraryItem is a reusable activity suggestion. Default entries are
// seeded once on first run; users can add their own.
type ActivityLibraryItem struct {
	ID                int64            `json:"id" yaml:"id"`
	Name              string           `json:"name" yaml:"name"`
	Category          ActivityCategory `json:"category" yaml:"category"`
	Description       *string          `json:"description,omitempty" yaml:"description,omitempty"`
	EstimatedDuration *int             `json:"estimatedDuration,omitempty" yaml:"estimatedDuration,omitempty"` // minutes
	SpoonCost         int              `json:"spoonCost" yaml:"spoonCost"`                                     // 1-10 energy estimate
	IsDefault         bool             `json:"isDefault" yaml:"isDefault"`
	TimesCompleted    int              `json:"timesCompleted" yaml:"timesCompleted"`
	AverageEnjoyment  *float64         `json:"averageEnjoyment,omitempty" yaml:"averageEnjoyment,omitempty"`
	AverageMastery    *float64         `json:"averageMastery,omitempty" yaml:"averageMastery,omitempty"`
	LastUsed          *string          `json:"lastUsed,omitempty" yaml:"lastUsed,omitempty"` // calendar date
}
