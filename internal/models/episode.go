// ABOUTME: AnxietyEpisode model with symptom, intervention, and embedded BP tracking.
// ABOUTME: Duration is derived from start/end, never stored separately.
package models

import "time"

// AnxietySymptom identifies a tracked symptom during an episode.
type AnxietySymptom string

const (
	SymptomRacingThoughts          AnxietySymptom = "racing-thoughts"
	SymptomChestTightness          AnxietySymptom = "chest-tightness"
	SymptomShortnessOfBreath       AnxietySymptom = "shortness-of-breath"
	SymptomRapidHeartbeat          AnxietySymptom = "rapid-heartbeat"
	SymptomSweating                AnxietySymptom = "sweating"
	SymptomTrembling               AnxietySymptom = "trembling"
	SymptomRestlessness            AnxietySymptom = "restlessness"
	SymptomDifficultyConcentrating AnxietySymptom = "difficulty-concentrating"
	SymptomIrritability            AnxietySymptom = "irritability"
	SymptomMuscleTension           AnxietySymptom = "muscle-tension"
	SymptomNausea                  AnxietySymptom = "nausea"
	SymptomDizziness               AnxietySymptom = "dizziness"
	SymptomFeelingDetached         AnxietySymptom = "feeling-detached"
	SymptomFearOfLosingControl     AnxietySymptom = "fear-of-losing-control"
	SymptomOther                   AnxietySymptom = "other"
)

// InterventionType identifies a coping intervention used during an episode.
type InterventionType string

const (
	InterventionBreathing478        InterventionType = "breathing-478"
	InterventionBreathingBox        InterventionType = "breathing-box"
	InterventionBreathingPaced      InterventionType = "breathing-paced"
	InterventionGrounding54321      InterventionType = "grounding-54321"
	InterventionGroundingBodyScan   InterventionType = "grounding-bodyscan"
	InterventionGroundingSensory    InterventionType = "grounding-sensory"
	InterventionMindfulnessBreath   InterventionType = "mindfulness-breath"
	InterventionMindfulnessBodyScan InterventionType = "mindfulness-bodyscan"
	InterventionThoughtRecord       InterventionType = "thought-record"
	InterventionPhysicalMovement    InterventionType = "physical-movement"
	InterventionSocialSupport       InterventionType = "social-support"
	InterventionMedication          InterventionType = "medication"
	InterventionOther               InterventionType = "other"
)

// EpisodeBPReading is a blood pressure snapshot taken during an episode.
type EpisodeBPReading struct {
	Time      time.Time `json:"time" yaml:"time"`
	Systolic  int       `json:"systolic" yaml:"systolic"`
	Diastolic int       `json:"diastolic" yaml:"diastolic"`
	HeartRate *int      `json:"heartRate,omitempty" yaml:"heartRate,omitempty"`
}

// AnxietyEpisode represents one anxiety episode from onset to resolution.
type AnxietyEpisode struct {
	ID        int64      `json:"id" yaml:"id"`
	Date      string     `json:"date" yaml:"date"`
	StartTime time.Time  `json:"startTime" yaml:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty" yaml:"endTime,omitempty"`

	Symptoms      []AnxietySymptom `json:"symptoms" yaml:"symptoms"`
	SymptomsOther *string          `json:"symptomsOther,omitempty" yaml:"symptomsOther,omitempty"`
	Triggers      *string          `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Location      *string          `json:"location,omitempty" yaml:"location,omitempty"`

	InterventionsUsed         []InterventionType       `json:"interventionsUsed" yaml:"interventionsUsed"`
	InterventionEffectiveness map[InterventionType]int `json:"interventionEffectiveness,omitempty" yaml:"interventionEffectiveness,omitempty"` // 0-10 per intervention

	BPReadings []EpisodeBPReading `json:"bpReadings" yaml:"bpReadings"`

	PeakAnxietyLevel   *int `json:"peakAnxietyLevel,omitempty" yaml:"peakAnxietyLevel,omitempty"`   // 0-10
	PostEpisodeMood    *int `json:"postEpisodeMood,omitempty" yaml:"postEpisodeMood,omitempty"`     // 1-10
	PostEpisodeAnxiety *int `json:"postEpisodeAnxiety,omitempty" yaml:"postEpisodeAnxiety,omitempty"` // 0-10

	Notes *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewAnxietyEpisode starts an episode at the current time.
func NewAnxietyEpisode() *AnxietyEpisode {
	now := time.Now()
	return &AnxietyEpisode{
		Date:      DateOf(now),
		StartTime: now,
	}
}

// Ongoing reports whether the episode has not yet ended.
func (e *AnxietyEpisode) Ongoing() bool {
	return e.EndTime == nil
}

// DurationMinutes returns the elapsed minutes between start and end,
// or 0 while the episode is ongoing.
func (e *AnxietyEpisode) DurationMinutes() int {
	if e.EndTime == nil {
		return 0
	}
	return int(e.EndTime.Sub(e.StartTime).Minutes())
}
