// ABOUTME: CLI commands for behavioral experiments.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	expBelief      string
	expStrength    int
	expPrediction  string
	expConfidence  int
	expPlannedDate string

	expOutcome     string
	expLearnings   string
	expBeliefAfter int

	expListDays int
)

var experimentCmd = &cobra.Command{
	Use:     "experiment",
	Aliases: []string{"exp"},
	Short:   "Test beliefs with behavioral experiments",
}

var experimentAddCmd = &cobra.Command{
	Use:   "add <experiment>",
	Short: "Plan a behavioral experiment",
	Long: `Plan an experiment that tests a belief against reality.

Example:
  mynd experiment add "Ask a question in the team meeting" \
    --belief "If I speak up people will think I'm stupid" --strength 80 \
    --prediction "Someone will roll their eyes" --confidence 70`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if expStrength < 0 || expStrength > 100 || expConfidence < 0 || expConfidence > 100 {
			return fmt.Errorf("belief strength and confidence must be 0-100")
		}
		e := models.NewBehavioralExperiment(expBelief, expStrength, args[0], expPrediction)
		e.PredictionConfidence = expConfidence
		if expPlannedDate != "" {
			e.PlannedDate = &expPlannedDate
		}

		if err := repo.CreateExperiment(e); err != nil {
			return fmt.Errorf("failed to create experiment: %w", err)
		}

		color.Green("✓ Planned experiment #%d", e.ID)
		fmt.Println("  Record the result with: mynd experiment complete", e.ID)
		return nil
	},
}

var experimentCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Record an experiment's outcome",
	Long: `Record what actually happened and re-rate the belief.

Example:
  mynd experiment complete 1 \
    --outcome "Two people built on my question" \
    --learnings "Speaking up went better than predicted" \
    --belief-after 40`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		if expOutcome == "" {
			return fmt.Errorf("--outcome is required")
		}
		if expBeliefAfter < 0 || expBeliefAfter > 100 {
			return fmt.Errorf("belief-after must be 0-100")
		}

		outcome := storage.ExperimentOutcome{
			ActualOutcome:       expOutcome,
			BeliefStrengthAfter: expBeliefAfter,
		}
		if expLearnings != "" {
			outcome.Learnings = &expLearnings
		}

		if err := repo.CompleteExperiment(id, outcome); err != nil {
			return fmt.Errorf("failed to complete experiment: %w", err)
		}

		e, err := repo.GetExperiment(id)
		if err != nil {
			return err
		}
		color.Green("✓ Completed experiment #%d", id)
		fmt.Printf("  belief %d → %d\n", e.BeliefStrength, expBeliefAfter)
		return nil
	},
}

var experimentListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent experiments",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(expListDays)
		experiments, err := repo.ListExperiments(start, end)
		if err != nil {
			return fmt.Errorf("failed to list experiments: %w", err)
		}
		if len(experiments) == 0 {
			fmt.Println("No experiments found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range experiments {
			mark := color.YellowString("…")
			belief := fmt.Sprintf("belief %d", e.BeliefStrength)
			if e.Completed {
				mark = color.GreenString("✓")
				if e.BeliefStrengthAfter != nil {
					belief = fmt.Sprintf("belief %d → %d", e.BeliefStrength, *e.BeliefStrengthAfter)
				}
			}
			fmt.Printf("%s %s %s %s  %s\n",
				mark,
				faint.Sprintf("#%-4d", e.ID),
				faint.Sprint(e.Date),
				truncate(e.Experiment, 44),
				faint.Sprint(belief))
		}
		return nil
	},
}

func init() {
	experimentAddCmd.Flags().StringVar(&expBelief, "belief", "", "the belief under test (required)")
	experimentAddCmd.Flags().IntVar(&expStrength, "strength", 50, "belief strength (0-100)")
	experimentAddCmd.Flags().StringVar(&expPrediction, "prediction", "", "what you predict will happen")
	experimentAddCmd.Flags().IntVar(&expConfidence, "confidence", 50, "prediction confidence (0-100)")
	experimentAddCmd.Flags().StringVar(&expPlannedDate, "date", "", "planned date (YYYY-MM-DD)")
	_ = experimentAddCmd.MarkFlagRequired("belief")

	experimentCompleteCmd.Flags().StringVar(&expOutcome, "outcome", "", "what actually happened (required)")
	experimentCompleteCmd.Flags().StringVar(&expLearnings, "learnings", "", "what you learned")
	experimentCompleteCmd.Flags().IntVar(&expBeliefAfter, "belief-after", 0, "re-rated belief strength (0-100)")

	experimentListCmd.Flags().IntVar(&expListDays, "days", 90, "number of days to show")

	experimentCmd.AddCommand(experimentAddCmd, experimentCompleteCmd, experimentListCmd)
	rootCmd.AddCommand(experimentCmd)
}
