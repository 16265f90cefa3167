// ABOUTME: CLI commands for behavioral activation activities.
// ABOUTME: Covers planning, completion with ratings, and the activity library.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	activityCategory string
	activityBlock    string
	activityDate     string
	activityDuration int
	activityNotes    string

	doneEnjoyment  int
	doneMastery    int
	doneMoodBefore int
	doneMoodAfter  int
	doneDuration   int

	activityListDate string
	libraryCategory  string
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act"},
	Short:   "Plan and complete activities",
}

var activityPlanCmd = &cobra.Command{
	Use:   "plan <activity>",
	Short: "Plan an activity",
	Long: `Plan an activity for a date and time block.

Categories: social, creative, physical, learning, mastery, pleasure
Time blocks: morning, afternoon, evening

Examples:
  mynd activity plan "Walk outside" --category physical --block morning
  mynd activity plan "Call a family member" --category social --date 2026-09-03`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidActivityCategory(activityCategory) {
			return fmt.Errorf("unknown category: %s\nValid categories: social, creative, physical, learning, mastery, pleasure", activityCategory)
		}
		date := activityDate
		if date == "" {
			date = today()
		}

		a := models.NewPlannedActivity(args[0],
			models.ActivityCategory(activityCategory),
			models.TimeBlock(activityBlock), date)
		if activityDuration > 0 {
			a.EstimatedDuration = &activityDuration
		}
		if activityNotes != "" {
			a.Notes = &activityNotes
		}

		if err := repo.CreatePlannedActivity(a); err != nil {
			return fmt.Errorf("failed to plan activity: %w", err)
		}

		color.Green("✓ Planned %q for %s (%s)", a.Activity, a.Date, a.TimeBlock)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d", a.ID))
		return nil
	},
}

var activityDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a planned activity as completed",
	Long: `Complete an activity with optional ratings. Mood before/after feed
the category impact statistics; enjoyment and mastery update the
activity library averages.

Examples:
  mynd activity done 4 --mood-before 4 --mood-after 7
  mynd activity done 4 --enjoyment 8 --mastery 6 --duration 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		done := models.ActivityCompletion{CompletedAt: time.Now()}
		if cmd.Flags().Changed("enjoyment") {
			done.Enjoyment = &doneEnjoyment
		}
		if cmd.Flags().Changed("mastery") {
			done.Mastery = &doneMastery
		}
		if cmd.Flags().Changed("mood-before") {
			done.MoodBefore = &doneMoodBefore
		}
		if cmd.Flags().Changed("mood-after") {
			done.MoodAfter = &doneMoodAfter
		}
		if doneDuration > 0 {
			done.ActualDuration = &doneDuration
		}

		if err := repo.CompleteActivity(id, done); err != nil {
			return fmt.Errorf("failed to complete activity: %w", err)
		}

		color.Green("✓ Completed activity #%d", id)
		if done.MoodBefore != nil && done.MoodAfter != nil {
			change := *done.MoodAfter - *done.MoodBefore
			fmt.Printf("  mood %d → %d (%+d)\n", *done.MoodBefore, *done.MoodAfter, change)
		}
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List planned activities for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := activityListDate
		if date == "" {
			date = today()
		}
		activities, err := repo.PlannedActivitiesOn(date)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Printf("No activities planned for %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			mark := faint.Sprint("·")
			if a.Completed {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %s %s\n",
				mark,
				faint.Sprintf("#%-4d", a.ID),
				padRight(string(a.TimeBlock), 10),
				padRight(a.Activity, 32),
				faint.Sprint(string(a.Category)))
		}
		return nil
	},
}

var activityLibraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Browse the activity library",
	RunE: func(cmd *cobra.Command, args []string) error {
		if libraryCategory != "" && !models.IsValidActivityCategory(libraryCategory) {
			return fmt.Errorf("unknown category: %s", libraryCategory)
		}
		items, err := repo.ListActivityLibrary(libraryCategory)
		if err != nil {
			return fmt.Errorf("failed to list library: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Library is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, item := range items {
			usage := ""
			if item.TimesCompleted > 0 {
				usage = faint.Sprintf("  done %d×", item.TimesCompleted)
				if item.AverageEnjoyment != nil {
					usage += faint.Sprintf(", enjoy %.1f", *item.AverageEnjoyment)
				}
			}
			fmt.Printf("%s %s spoons %2d%s\n",
				faint.Sprint(padRight(string(item.Category), 10)),
				padRight(item.Name, 32),
				item.SpoonCost,
				usage)
		}
		return nil
	},
}

func init() {
	activityPlanCmd.Flags().StringVar(&activityCategory, "category", "", "activity category (required)")
	activityPlanCmd.Flags().StringVar(&activityBlock, "block", "morning", "time block (morning, afternoon, evening)")
	activityPlanCmd.Flags().StringVar(&activityDate, "date", "", "date (YYYY-MM-DD, default today)")
	activityPlanCmd.Flags().IntVar(&activityDuration, "duration", 0, "estimated duration in minutes")
	activityPlanCmd.Flags().StringVar(&activityNotes, "notes", "", "notes for the activity")
	_ = activityPlanCmd.MarkFlagRequired("category")

	activityDoneCmd.Flags().IntVar(&doneEnjoyment, "enjoyment", 0, "enjoyment rating (0-10)")
	activityDoneCmd.Flags().IntVar(&doneMastery, "mastery", 0, "mastery rating (0-10)")
	activityDoneCmd.Flags().IntVar(&doneMoodBefore, "mood-before", 0, "mood before (1-10)")
	activityDoneCmd.Flags().IntVar(&doneMoodAfter, "mood-after", 0, "mood after (1-10)")
	activityDoneCmd.Flags().IntVar(&doneDuration, "duration", 0, "actual duration in minutes")

	activityListCmd.Flags().StringVar(&activityListDate, "date", "", "date to show (default today)")
	activityLibraryCmd.Flags().StringVar(&libraryCategory, "category", "", "filter by category")

	activityCmd.AddCommand(activityPlanCmd, activityDoneCmd, activityListCmd, activityLibraryCmd)
	rootCmd.AddCommand(activityCmd)
}
