// ABOUTME: BPReading model with clinical range validation.
// ABOUTME: Context flags (anxiety/exercise/medication) are independent booleans.
package models

import (
	"fmt"
	"time"
)

// Clinical bounds for blood pressure values.
const (
	SystolicMin  = 50
	SystolicMax  = 250
	DiastolicMin = 30
	DiastolicMax = 150
)

// Arm positions for a reading.
const (
	ArmLeft  = "left"
	ArmRight = "right"
)

// BPReading represents a single blood pressure measurement.
type BPReading struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Systolic  int       `json:"systolic" yaml:"systolic"`   // 50-250
	Diastolic int       `json:"diastolic" yaml:"diastolic"` // 30-150
	HeartRate *int      `json:"heartRate,omitempty" yaml:"heartRate,omitempty"`
	Arm       *string   `json:"arm,omitempty" yaml:"arm,omitempty"`
	Position  *string   `json:"position,omitempty" yaml:"position,omitempty"`

	IsAnxietyRelated bool `json:"isAnxietyRelated" yaml:"isAnxietyRelated"`
	IsPostExercise   bool `json:"isPostExercise" yaml:"isPostExercise"`
	IsPostMedication bool `json:"isPostMedication" yaml:"isPostMedication"`

	LinkedEpisodeID *int64  `json:"linkedEpisodeId,omitempty" yaml:"linkedEpisodeId,omitempty"`
	Notes           *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewBPReading creates a reading stamped with the current time.
func NewBPReading(systolic, diastolic int) *BPReading {
	now := time.Now()
	return &BPReading{
		Date:      DateOf(now),
		Timestamp: now,
		Systolic:  systolic,
		Diastolic: diastolic,
	}
}

// WithHeartRate sets the optional heart rate in BPM.
func (r *BPReading) WithHeartRate(bpm int) *BPReading {
	r.HeartRate = &bpm
	return r
}

// WithTimestamp sets a custom timestamp and re-derives the date.
func (r *BPReading) WithTimestamp(t time.Time) *BPReading {
	r.Timestamp = t
	r.Date = DateOf(t)
	return r
}

// Validate checks systolic and diastolic against clinical bounds.
// Range validation is a caller-side concern; the stats layer assumes
// validated input.
func (r *BPReading) Validate() error {
	if r.Systolic < SystolicMin || r.Systolic > SystolicMax {
		return fmt.Errorf("systolic %d outside valid range %d-%d", r.Systolic, SystolicMin, SystolicMax)
	}
	if r.Diastolic < DiastolicMin || r.Diastolic > DiastolicMax {
		return fmt.Errorf("diastolic %d outside valid range %d-%d", r.Diastolic, DiastolicMin, DiastolicMax)
	}
	return nil
}
