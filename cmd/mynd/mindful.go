// ABOUTME: CLI commands for mindfulness practice sessions.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/stats"
	"github.com/spf13/cobra"
)

var (
	mindfulActual    int
	mindfulCompleted bool
	mindfulMoodB     int
	mindfulMoodA     int
	mindfulAnxB      int
	mindfulAnxA      int
	mindfulFocus     int
	mindfulNotes     string
	mindfulListDays  int
)

var mindfulCmd = &cobra.Command{
	Use:   "mindful",
	Short: "Track mindfulness practice",
}

var mindfulAddCmd = &cobra.Command{
	Use:   "add <practice> <planned-minutes>",
	Short: "Log a mindfulness session",
	Long: `Log a mindfulness session with its planned duration in minutes.

Practices: breath-awareness, body-scan-short, body-scan-full,
loving-kindness, open-awareness, walking-meditation, sound-awareness, other

Examples:
  mynd mindful add breath-awareness 10 --completed
  mynd mindful add body-scan-short 5 --actual 4 --mood-before 4 --mood-after 6`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidPracticeType(args[0]) {
			return fmt.Errorf("unknown practice type: %s", args[0])
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			return fmt.Errorf("planned minutes must be a positive number")
		}

		s := models.NewMindfulnessSession(models.MindfulnessPracticeType(args[0]), minutes)
		s.Completed = mindfulCompleted
		if cmd.Flags().Changed("actual") {
			s.DurationActual = &mindfulActual
		}
		if cmd.Flags().Changed("mood-before") {
			s.MoodBefore = &mindfulMoodB
		}
		if cmd.Flags().Changed("mood-after") {
			s.MoodAfter = &mindfulMoodA
		}
		if cmd.Flags().Changed("anxiety-before") {
			s.AnxietyBefore = &mindfulAnxB
		}
		if cmd.Flags().Changed("anxiety-after") {
			s.AnxietyAfter = &mindfulAnxA
		}
		if cmd.Flags().Changed("focus") {
			s.FocusQuality = &mindfulFocus
		}
		if mindfulNotes != "" {
			s.Notes = &mindfulNotes
		}

		if err := repo.CreateMindfulnessSession(s); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged %s (%d min)", s.PracticeType, s.Minutes())
		return nil
	},
}

var mindfulListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions and the current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(mindfulListDays)
		sessions, err := repo.ListMindfulnessSessions(start, end)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			mark := faint.Sprint("·")
			if s.Completed {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %2d min\n",
				mark,
				faint.Sprint(s.Timestamp.Format("2006-01-02 15:04")),
				padRight(string(s.PracticeType), 20),
				s.Minutes())
		}

		completed, err := repo.CompletedMindfulnessSessions(start, end)
		if err != nil {
			return err
		}
		streak := stats.CalculateMindfulnessStreak(completed, time.Now())
		fmt.Printf("\nCurrent streak: %d day(s)\n", streak)
		return nil
	},
}

func init() {
	mindfulAddCmd.Flags().IntVar(&mindfulActual, "actual", 0, "actual duration in minutes")
	mindfulAddCmd.Flags().BoolVar(&mindfulCompleted, "completed", false, "session was completed")
	mindfulAddCmd.Flags().IntVar(&mindfulMoodB, "mood-before", 0, "mood before (1-10)")
	mindfulAddCmd.Flags().IntVar(&mindfulMoodA, "mood-after", 0, "mood after (1-10)")
	mindfulAddCmd.Flags().IntVar(&mindfulAnxB, "anxiety-before", 0, "anxiety before (0-10)")
	mindfulAddCmd.Flags().IntVar(&mindfulAnxA, "anxiety-after", 0, "anxiety after (0-10)")
	mindfulAddCmd.Flags().IntVar(&mindfulFocus, "focus", 0, "focus quality (0-10)")
	mindfulAddCmd.Flags().StringVar(&mindfulNotes, "notes", "", "notes for the session")
	mindfulListCmd.Flags().IntVar(&mindfulListDays, "days", 30, "number of days to show")

	mindfulCmd.AddCommand(mindfulAddCmd, mindfulListCmd)
	rootCmd.AddCommand(mindfulCmd)
}
