// ABOUTME: Reference catalog for CBT cognitive distortions.
// ABOUTME: Static data shown when tagging thought records.
package models

// DistortionInfo describes one cognitive distortion for reference display.
type DistortionInfo struct {
	ID                CognitiveDistortion
	Name              string
	ShortDescription  string
	Example           string
	ChallengeQuestion string
}

// CognitiveDistortions is the reference catalog, in display order.
var CognitiveDistortions = []DistortionInfo{
	{
		ID:                DistortionAllOrNothing,
		Name:              "All-or-Nothing Thinking",
		ShortDescription:  "Seeing things in black and white categories",
		Example:           `"If I don't do this perfectly, I've failed completely."`,
		ChallengeQuestion: "Is there a middle ground between total success and total failure?",
	},
	{
		ID:                DistortionOvergeneralization,
		Name:              "Overgeneralization",
		ShortDescription:  `Using "always" or "never" patterns`,
		Example:           `"I always mess things up. Nothing ever works out for me."`,
		ChallengeQuestion: "Have there been times when this wasn't true?",
	},
	{
		ID:                DistortionMentalFilter,
		Name:              "Mental Filter",
		ShortDescription:  "Focusing only on the negatives",
		Example:           "Receiving mostly positive feedback but dwelling only on one criticism.",
		ChallengeQuestion: "What positive aspects might I be overlooking?",
	},
	{
		ID:                DistortionDisqualifying,
		Name:              "Disqualifying the Positive",
		ShortDescription:  "Dismissing good experiences",
		Example:           `"They're just being nice. They don't really mean it."`,
		ChallengeQuestion: "If someone else had this positive experience, would I dismiss it for them too?",
	},
	{
		ID:                DistortionJumpingToConclusions,
		Name:              "Jumping to Conclusions",
		ShortDescription:  "Making assumptions without evidence",
		Example:           `"They didn't text back. They must be angry at me."`,
		ChallengeQuestion: "What facts support this conclusion? What other explanations are possible?",
	},
	{
		ID:                DistortionMindReading,
		Name:              "Mind Reading",
		ShortDescription:  "Assuming you know what others think",
		Example:           `"Everyone at the meeting thought my idea was stupid."`,
		ChallengeQuestion: "What evidence do I have about what they actually think?",
	},
	{
		ID:                DistortionFortuneTelling,
		Name:              "Fortune Telling",
		ShortDescription:  "Predicting negative outcomes",
		Example:           `"I know the appointment will go badly."`,
		ChallengeQuestion: "How often have my negative predictions actually come true?",
	},
	{
		ID:                DistortionCatastrophizing,
		Name:              "Catastrophizing",
		ShortDescription:  "Expecting the worst-case scenario",
		Example:           `"My heart is racing. I must be having a heart attack."`,
		ChallengeQuestion: "What is the most likely outcome, not the worst imaginable one?",
	},
	{
		ID:                DistortionMinimizing,
		Name:              "Minimizing",
		ShortDescription:  "Shrinking the importance of positives",
		Example:           `"Finishing that project was no big deal, anyone could have done it."`,
		ChallengeQuestion: "Would I minimize this the same way if a friend had done it?",
	},
	{
		ID:                DistortionEmotionalReasoning,
		Name:              "Emotional Reasoning",
		ShortDescription:  "Treating feelings as facts",
		Example:           `"I feel anxious, so something must be wrong."`,
		ChallengeQuestion: "What do the facts say, separate from how I feel right now?",
	},
	{
		ID:                DistortionShouldStatements,
		Name:              "Should Statements",
		ShortDescription:  "Holding rigid rules about how things must be",
		Example:           `"I should be able to handle this without help."`,
		ChallengeQuestion: "Where did this rule come from, and is it realistic?",
	},
	{
		ID:                DistortionLabeling,
		Name:              "Labeling",
		ShortDescription:  "Applying global negative labels",
		Example:           `"I forgot the appointment. I'm an idiot."`,
		ChallengeQuestion: "Does one event define the whole person?",
	},
	{
		ID:                DistortionPersonalization,
		Name:              "Personalization",
		ShortDescription:  "Taking blame for things outside your control",
		Example:           `"The dinner was awkward. It must have been my fault."`,
		ChallengeQuestion: "What other factors contributed to this outcome?",
	},
	{
		ID:                DistortionBlaming,
		Name:              "Blaming",
		ShortDescription:  "Attributing all responsibility to others",
		Example:           `"I'm only stressed because of my family."`,
		ChallengeQuestion: "What part of this situation is within my control?",
	},
}

// DistortionByID looks up catalog info for a distortion tag.
func DistortionByID(id CognitiveDistortion) (DistortionInfo, bool) {
	for _, d := range CognitiveDistortions {
		if d.ID == id {
			return d, true
		}
	}
	return DistortionInfo{}, false
}
