// ABOUTME: CLI commands for mood check-ins.
// ABOUTME: Supports adding, listing, and deleting mood logs.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	moodAnxiety  int
	moodNotes    string
	moodAt       string
	moodEpisode  bool
	moodListDays int
)

var moodCmd = &cobra.Command{
	Use:     "mood",
	Aliases: []string{"m"},
	Short:   "Track mood and anxiety check-ins",
}

var moodAddCmd = &cobra.Command{
	Use:   "add <mood>",
	Short: "Log a mood check-in",
	Long: `Log a mood check-in. Mood is rated 1-10, anxiety 0-10.

Examples:
  mynd mood add 7
  mynd mood add 7 --anxiety 3 --notes "Slept well"
  mynd mood add 4 --anxiety 8 --episode`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := strconv.Atoi(args[0])
		if err != nil || mood < 1 || mood > 10 {
			return fmt.Errorf("mood must be a number from 1 to 10")
		}
		if moodAnxiety < 0 || moodAnxiety > 10 {
			return fmt.Errorf("anxiety must be a number from 0 to 10")
		}

		m := models.NewMoodLog(mood, moodAnxiety)
		m.IsAnxietyEpisode = moodEpisode
		if moodAt != "" {
			t, err := parseTimeArg(moodAt)
			if err != nil {
				return err
			}
			m.WithTimestamp(t)
		}
		if moodNotes != "" {
			m.WithNotes(moodNotes)
		}

		if err := repo.CreateMoodLog(m); err != nil {
			return fmt.Errorf("failed to log mood: %w", err)
		}

		color.Green("✓ Logged mood %d, anxiety %d", m.Mood, m.Anxiety)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprintf("#%d", m.ID),
			m.Timestamp.Format("2006-01-02 15:04"))
		return nil
	},
}

var moodTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's mood check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := repo.MoodLogsOn(today())
		if err != nil {
			return fmt.Errorf("failed to list mood logs: %w", err)
		}
		printMoodLogs(logs)
		return nil
	},
}

var moodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent mood check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(moodListDays)
		logs, err := repo.ListMoodLogs(start, end)
		if err != nil {
			return fmt.Errorf("failed to list mood logs: %w", err)
		}
		printMoodLogs(logs)
		return nil
	},
}

var moodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a mood check-in",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		if err := repo.DeleteMoodLog(id); err != nil {
			return fmt.Errorf("failed to delete mood log: %w", err)
		}
		color.Green("✓ Deleted mood log #%d", id)
		return nil
	},
}

func printMoodLogs(logs []models.MoodLog) {
	if len(logs) == 0 {
		fmt.Println("No mood check-ins found.")
		return
	}
	faint := color.New(color.Faint)
	for _, m := range logs {
		flags := ""
		if m.IsAnxietyEpisode {
			flags = color.YellowString(" [episode]")
		}
		notes := ""
		if m.Notes != nil && *m.Notes != "" {
			notes = faint.Sprintf(" (%s)", truncate(*m.Notes, 40))
		}
		fmt.Printf("%s %s mood %2d  anxiety %2d%s%s\n",
			faint.Sprintf("#%-4d", m.ID),
			faint.Sprint(m.Timestamp.Format("2006-01-02 15:04")),
			m.Mood, m.Anxiety, flags, notes)
	}
}

func init() {
	moodAddCmd.Flags().IntVar(&moodAnxiety, "anxiety", 0, "anxiety level (0-10)")
	moodAddCmd.Flags().StringVar(&moodNotes, "notes", "", "notes for the check-in")
	moodAddCmd.Flags().StringVar(&moodAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	moodAddCmd.Flags().BoolVar(&moodEpisode, "episode", false, "mark as part of an anxiety episode")
	moodListCmd.Flags().IntVar(&moodListDays, "days", 30, "number of days to show")

	moodCmd.AddCommand(moodAddCmd, moodTodayCmd, moodListCmd, moodDeleteCmd)
	rootCmd.AddCommand(moodCmd)
}
