// ABOUTME: CBT tool models: thought records, behavioral experiments, exposure hierarchy.
// ABOUTME: Intensities and SUDS distress ratings are 0-100; belief strength is 0-100.
package models

import "time"

// EmotionType is the primary emotion identified in a thought record.
type EmotionType string

const (
	EmotionAnxious     EmotionType = "anxious"
	EmotionSad         EmotionType = "sad"
	EmotionAngry       EmotionType = "angry"
	EmotionGuilty      EmotionType = "guilty"
	EmotionAshamed     EmotionType = "ashamed"
	EmotionFrustrated  EmotionType = "frustrated"
	EmotionHopeless    EmotionType = "hopeless"
	EmotionOverwhelmed EmotionType = "overwhelmed"
	EmotionFearful     EmotionType = "fearful"
	EmotionOther       EmotionType = "other"
)

// CognitiveDistortion names a biased thinking pattern from CBT theory.
type CognitiveDistortion string

const (
	DistortionAllOrNothing          CognitiveDistortion = "all-or-nothing"
	DistortionOvergeneralization    CognitiveDistortion = "overgeneralization"
	DistortionMentalFilter          CognitiveDistortion = "mental-filter"
	DistortionDisqualifying         CognitiveDistortion = "disqualifying"
	DistortionJumpingToConclusions  CognitiveDistortion = "jumping-to-conclusions"
	DistortionMindReading           CognitiveDistortion = "mind-reading"
	DistortionFortuneTelling        CognitiveDistortion = "fortune-telling"
	DistortionCatastrophizing       CognitiveDistortion = "catastrophizing"
	DistortionMinimizing            CognitiveDistortion = "minimizing"
	DistortionEmotionalReasoning    CognitiveDistortion = "emotional-reasoning"
	DistortionShouldStatements      CognitiveDistortion = "should-statements"
	DistortionLabeling              CognitiveDistortion = "labeling"
	DistortionPersonalization       CognitiveDistortion = "personalization"
	DistortionBlaming               CognitiveDistortion = "blaming"
)

// ThoughtRecord is a seven-step CBT thought record.
type ThoughtRecord struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	Situation        string      `json:"situation" yaml:"situation"`
	AutomaticThought string      `json:"automaticThought" yaml:"automaticThought"`
	Emotion          EmotionType `json:"emotion" yaml:"emotion"`
	EmotionOther     *string     `json:"emotionOther,omitempty" yaml:"emotionOther,omitempty"`
	EmotionIntensity int         `json:"emotionIntensity" yaml:"emotionIntensity"` // 0-100

	Distortions []CognitiveDistortion `json:"distortions" yaml:"distortions"`

	EvidenceFor     string `json:"evidenceFor" yaml:"evidenceFor"`
	EvidenceAgainst string `json:"evidenceAgainst" yaml:"evidenceAgainst"`
	BalancedThought string `json:"balancedThought" yaml:"balancedThought"`

	OutcomeEmotion   *EmotionType `json:"outcomeEmotion,omitempty" yaml:"outcomeEmotion,omitempty"`
	OutcomeIntensity int          `json:"outcomeIntensity" yaml:"outcomeIntensity"` // 0-100 re-rating

	IsComplete bool    `json:"isComplete" yaml:"isComplete"`
	Theme      *string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Notes      *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewThoughtRecord starts a thought record at the current time.
func NewThoughtRecord(situation, thought string, emotion EmotionType, intensity int) *ThoughtRecord {
	now := time.Now()
	return &ThoughtRecord{
		Date:             DateOf(now),
		Timestamp:        now,
		Situation:        situation,
		AutomaticThought: thought,
		Emotion:          emotion,
		EmotionIntensity: intensity,
	}
}

// RequiredStepsFilled reports whether every required step has content.
// IsComplete may only be set when this holds.
func (r *ThoughtRecord) RequiredStepsFilled() bool {
	return r.Situation != "" && r.AutomaticThought != "" && r.Emotion != "" &&
		r.EvidenceFor != "" && r.EvidenceAgainst != "" && r.BalancedThought != ""
}

// BehavioralExperiment tests a belief against a real-world outcome.
type BehavioralExperiment struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Belief         string `json:"belief" yaml:"belief"`
	BeliefStrength int    `json:"beliefStrength" yaml:"beliefStrength"` // 0-100

	Experiment           string `json:"experiment" yaml:"experiment"`
	Prediction           string `json:"prediction" yaml:"prediction"`
	PredictionConfidence int    `json:"predictionConfidence" yaml:"predictionConfidence"` // 0-100

	PlannedDate *string    `json:"plannedDate,omitempty" yaml:"plannedDate,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`

	ActualOutcome *string `json:"actualOutcome,omitempty" yaml:"actualOutcome,omitempty"`
	Learnings     *string `json:"learnings,omitempty" yaml:"learnings,omitempty"`

	// Only set once completed.
	BeliefStrengthAfter *int `json:"beliefStrengthAfter,omitempty" yaml:"beliefStrengthAfter,omitempty"`

	LinkedActivityID *int64  `json:"linkedActivityId,omitempty" yaml:"linkedActivityId,omitempty"`
	Notes            *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewBehavioralExperiment creates an experiment dated today.
func NewBehavioralExperiment(belief string, strength int, experiment, prediction string) *BehavioralExperiment {
	now := time.Now()
	return &BehavioralExperiment{
		Date:           DateOf(now),
		CreatedAt:      now,
		Belief:         belief,
		BeliefStrength: strength,
		Experiment:     experiment,
		Prediction:     prediction,
	}
}

// DefaultTargetDistress is the completion target for hierarchy items that
// do not set an explicit goal.
const DefaultTargetDistress = 20

// ExposureAttempt records one exposure to a feared situation.
type ExposureAttempt struct {
	Date           string  `json:"date" yaml:"date"`
	DistressBefore int     `json:"distressBefore" yaml:"distressBefore"` // 0-100 SUDS
	DistressDuring int     `json:"distressDuring" yaml:"distressDuring"` // 0-100 peak
	DistressAfter  int     `json:"distressAfter" yaml:"distressAfter"`   // 0-100
	Duration       int     `json:"duration" yaml:"duration"`             // minutes
	Notes          *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// AnxietyHierarchyItem is a feared situation on the exposure ladder.
type AnxietyHierarchyItem struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Situation string  `json:"situation" yaml:"situation"`
	Category  *string `json:"category,omitempty" yaml:"category,omitempty"`

	InitialDistress int `json:"initialDistress" yaml:"initialDistress"` // 0-100 SUDS
	CurrentDistress int `json:"currentDistress" yaml:"currentDistress"`

	ExposureAttempts []ExposureAttempt `json:"exposureAttempts" yaml:"exposureAttempts"`

	TargetDistress *int `json:"targetDistress,omitempty" yaml:"targetDistress,omitempty"`
	IsComplete     bool `json:"isComplete" yaml:"isComplete"`

	Notes *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewHierarchyItem adds a feared situation with its initial SUDS rating.
func NewHierarchyItem(situation string, initialDistress int) *AnxietyHierarchyItem {
	return &AnxietyHierarchyItem{
		CreatedAt:       time.Now(),
		Situation:       situation,
		InitialDistress: initialDistress,
		CurrentDistress: initialDistress,
	}
}

// Target returns the item's completion target, defaulting when unset.
func (h *AnxietyHierarchyItem) Target() int {
	if h.TargetDistress != nil {
		return *h.TargetDistress
	}
	return DefaultTargetDistress
}
