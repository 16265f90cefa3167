// ABOUTME: CLI commands for CBT thought records.
// ABOUTME: Records can be started partial and completed later with the challenge steps.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	thoughtEmotion     string
	thoughtIntensity   int
	thoughtDistortions []string
	thoughtFor         string
	thoughtAgainst     string
	thoughtBalanced    string
	thoughtOutcome     int
	thoughtListDays    int
)

var thoughtCmd = &cobra.Command{
	Use:     "thought",
	Aliases: []string{"tr"},
	Short:   "Work through CBT thought records",
}

var thoughtAddCmd = &cobra.Command{
	Use:   "add <situation> <automatic-thought>",
	Short: "Start a thought record",
	Long: `Start a thought record from a situation and automatic thought.
The record stays incomplete until the evidence and balanced-thought
steps are filled in with 'mynd thought complete'.

Emotions: anxious, sad, angry, guilty, ashamed, frustrated, hopeless,
overwhelmed, fearful, other

Examples:
  mynd thought add "Meeting ran long" "Everyone thinks I'm wasting their time" \
    --emotion anxious --intensity 75 --distortion mind-reading`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if thoughtIntensity < 0 || thoughtIntensity > 100 {
			return fmt.Errorf("intensity must be 0-100")
		}
		r := models.NewThoughtRecord(args[0], args[1],
			models.EmotionType(thoughtEmotion), thoughtIntensity)
		for _, d := range thoughtDistortions {
			r.Distortions = append(r.Distortions, models.CognitiveDistortion(d))
		}

		if err := repo.CreateThoughtRecord(r); err != nil {
			return fmt.Errorf("failed to create thought record: %w", err)
		}

		color.Green("✓ Started thought record #%d", r.ID)
		fmt.Println("  Finish it with: mynd thought complete", r.ID)
		return nil
	},
}

var thoughtCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Fill in the challenge steps and close a thought record",
	Long: `Complete a thought record with evidence for and against the
automatic thought, a balanced alternative, and a re-rated intensity.

Example:
  mynd thought complete 2 \
    --for "The meeting did run over" \
    --against "Two people thanked me afterwards" \
    --balanced "It ran long but the discussion was useful" \
    --outcome-intensity 35`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		r, err := repo.GetThoughtRecord(id)
		if err != nil {
			return err
		}

		if thoughtFor != "" {
			r.EvidenceFor = thoughtFor
		}
		if thoughtAgainst != "" {
			r.EvidenceAgainst = thoughtAgainst
		}
		if thoughtBalanced != "" {
			r.BalancedThought = thoughtBalanced
		}
		if cmd.Flags().Changed("outcome-intensity") {
			r.OutcomeIntensity = thoughtOutcome
		}
		r.IsComplete = true

		if err := repo.UpdateThoughtRecord(r); err != nil {
			return err
		}

		color.Green("✓ Completed thought record #%d", id)
		if r.OutcomeIntensity < r.EmotionIntensity {
			fmt.Printf("  intensity %d → %d\n", r.EmotionIntensity, r.OutcomeIntensity)
		}
		return nil
	},
}

var thoughtListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent thought records",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(thoughtListDays)
		records, err := repo.ListThoughtRecords(start, end)
		if err != nil {
			return fmt.Errorf("failed to list thought records: %w", err)
		}
		printThoughtRecords(records)
		return nil
	},
}

var thoughtIncompleteCmd = &cobra.Command{
	Use:   "incomplete",
	Short: "List thought records still missing steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.IncompleteThoughtRecords()
		if err != nil {
			return fmt.Errorf("failed to list thought records: %w", err)
		}
		printThoughtRecords(records)
		return nil
	},
}

func printThoughtRecords(records []models.ThoughtRecord) {
	if len(records) == 0 {
		fmt.Println("No thought records found.")
		return
	}
	faint := color.New(color.Faint)
	for _, r := range records {
		mark := color.YellowString("…")
		if r.IsComplete {
			mark = color.GreenString("✓")
		}
		distortions := ""
		if len(r.Distortions) > 0 {
			names := make([]string, len(r.Distortions))
			for i, d := range r.Distortions {
				names[i] = string(d)
			}
			distortions = faint.Sprintf("  [%s]", strings.Join(names, ", "))
		}
		fmt.Printf("%s %s %s %s %3d  %s%s\n",
			mark,
			faint.Sprintf("#%-4d", r.ID),
			faint.Sprint(r.Date),
			padRight(string(r.Emotion), 12),
			r.EmotionIntensity,
			truncate(r.AutomaticThought, 48),
			distortions)
	}
}

func init() {
	thoughtAddCmd.Flags().StringVar(&thoughtEmotion, "emotion", "anxious", "primary emotion")
	thoughtAddCmd.Flags().IntVar(&thoughtIntensity, "intensity", 50, "emotion intensity (0-100)")
	thoughtAddCmd.Flags().StringArrayVar(&thoughtDistortions, "distortion", nil, "cognitive distortion (repeatable, see 'mynd distortions')")
	thoughtCompleteCmd.Flags().StringVar(&thoughtFor, "for", "", "evidence supporting the thought")
	thoughtCompleteCmd.Flags().StringVar(&thoughtAgainst, "against", "", "evidence against the thought")
	thoughtCompleteCmd.Flags().StringVar(&thoughtBalanced, "balanced", "", "balanced alternative thought")
	thoughtCompleteCmd.Flags().IntVar(&thoughtOutcome, "outcome-intensity", 0, "re-rated intensity (0-100)")
	thoughtListCmd.Flags().IntVar(&thoughtListDays, "days", 30, "number of days to show")

	thoughtCmd.AddCommand(thoughtAddCmd, thoughtCompleteCmd, thoughtListCmd, thoughtIncompleteCmd)
	rootCmd.AddCommand(thoughtCmd)
}
