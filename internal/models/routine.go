// ABOUTME: RoutineTemplate model for reusable step-by-step routines.
// ABOUTME: Using a template stamps out a ready task breakdown and bumps its use count.
package models

import "time"

// RoutineStep is one ordered step of a reusable routine.
type RoutineStep struct {
	Description string `json:"description" yaml:"description"`
	SpoonCost   int    `json:"spoonCost" yaml:"spoonCost"`
}

// RoutineTemplate is a named, reusable sequence of steps (a morning routine,
// a wind-down routine). Templates are never executed directly; they are
// instantiated into task breakdowns.
type RoutineTemplate struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Name        string        `json:"name" yaml:"name"`
	Description *string       `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []RoutineStep `json:"steps" yaml:"steps"`

	IsDefault bool `json:"isDefault" yaml:"isDefault"`
	TimesUsed int  `json:"timesUsed" yaml:"timesUsed"`
}

// NewRoutineTemplate creates a routine template.
func NewRoutineTemplate(name string, steps []RoutineStep) *RoutineTemplate {
	return &RoutineTemplate{
		CreatedAt: time.Now(),
		Name:      name,
		Steps:     steps,
	}
}

// TotalSpoonCost sums the spoon cost of all steps.
func (r *RoutineTemplate) TotalSpoonCost() int {
	total := 0
	for _, s := range r.Steps {
		total += s.SpoonCost
	}
	return total
}

// Instantiate stamps the template out as a ready task breakdown with a fresh
// copy of the steps.
func (r *RoutineTemplate) Instantiate() *TaskBreakdown {
	steps := make([]TaskStep, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = TaskStep{Description: s.Description, SpoonCost: s.SpoonCost}
	}
	t := NewTaskBreakdown(r.Name, steps)
	t.Status = TaskReady
	return t
}
