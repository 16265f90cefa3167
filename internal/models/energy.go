// ABOUTME: EnergyLog and TaskBreakdown models for energy-budgeting support.
// ABOUTME: Spoons are a self-reported daily energy budget; tasks break into ordered steps.
package models

import "time"

// EnergyLog records available energy for a day.
type EnergyLog struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	EnergyLevel     int     `json:"energyLevel" yaml:"energyLevel"` // 1-10
	SpoonsAvailable int     `json:"spoonsAvailable" yaml:"spoonsAvailable"`
	SpoonsUsed      *int    `json:"spoonsUsed,omitempty" yaml:"spoonsUsed,omitempty"`
	Notes           *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewEnergyLog records an energy check-in at the current time.
func NewEnergyLog(level, spoons int) *EnergyLog {
	now := time.Now()
	return &EnergyLog{
		Date:            DateOf(now),
		Timestamp:       now,
		EnergyLevel:     level,
		SpoonsAvailable: spoons,
	}
}

// TaskStatus is the lifecycle state of a task breakdown.
type TaskStatus string

const (
	TaskDraft      TaskStatus = "draft"
	TaskReady      TaskStatus = "ready"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskAbandoned  TaskStatus = "abandoned"
)

// TaskStep is one step of a broken-down task.
type TaskStep struct {
	Description string `json:"description" yaml:"description"`
	SpoonCost   int    `json:"spoonCost" yaml:"spoonCost"`
	Done        bool   `json:"done" yaml:"done"`
}

// TaskBreakdown decomposes an overwhelming task into small steps.
type TaskBreakdown struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Title  string     `json:"title" yaml:"title"`
	Steps  []TaskStep `json:"steps" yaml:"steps"`
	Status TaskStatus `json:"status" yaml:"status"`

	IsTemplate       bool    `json:"isTemplate" yaml:"isTemplate"`
	TemplateCategory *string `json:"templateCategory,omitempty" yaml:"templateCategory,omitempty"`
	TimesUsed        int     `json:"timesUsed" yaml:"timesUsed"`

	StartedAt   *time.Time `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Notes       *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewTaskBreakdown creates a draft task breakdown.
func NewTaskBreakdown(title string, steps []TaskStep) *TaskBreakdown {
	return &TaskBreakdown{
		CreatedAt: time.Now(),
		Title:     title,
		Steps:     steps,
		Status:    TaskDraft,
	}
}

// TotalSpoonCost sums the spoon cost of all steps.
func (t *TaskBreakdown) TotalSpoonCost() int {
	total := 0
	for _, s := range t.Steps {
		total += s.SpoonCost
	}
	return total
}
