// ABOUTME: CLI commands for special interests and engagement sessions.
// ABOUTME: Sessions record time on an interest with optional mood/energy ratings.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/stats"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	interestCategory   string
	interestNotes      string
	interestActiveOnly bool

	sessionType         string
	sessionMoodBefore   int
	sessionMoodAfter    int
	sessionEnergyBefore int
	sessionEnergyAfter  int
	sessionNotes        string
)

var interestCmd = &cobra.Command{
	Use:   "interest",
	Short: "Track special interests and time spent on them",
}

var interestAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a special interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i := models.NewSpecialInterest(args[0], interestCategory)
		if interestNotes != "" {
			i.Description = &interestNotes
		}
		if err := repo.CreateSpecialInterest(i); err != nil {
			return fmt.Errorf("failed to add interest: %w", err)
		}

		color.Green("✓ Added interest #%d: %s", i.ID, i.Name)
		return nil
	},
}

var interestListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List special interests",
	RunE: func(cmd *cobra.Command, args []string) error {
		interests, err := repo.ListSpecialInterests(interestActiveOnly)
		if err != nil {
			return fmt.Errorf("failed to list interests: %w", err)
		}
		if len(interests) == 0 {
			fmt.Println("No interests found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, i := range interests {
			state := "active"
			if !i.CurrentlyActive {
				state = "paused"
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("#%-4d", i.ID),
				padRight(truncate(i.Name, 28), 28),
				padRight(i.Category, 12),
				faint.Sprint(state))
		}
		return nil
	},
}

var interestLogCmd = &cobra.Command{
	Use:   "log <id> <minutes>",
	Short: "Log a session on an interest",
	Long: `Log time spent on an interest, optionally with before/after mood and
energy ratings (1-10).

Example:
  mynd interest log 2 45 --type research --mood-before 5 --mood-after 8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes < 1 {
			return fmt.Errorf("minutes must be a positive number")
		}
		if !models.IsValidInterestSessionType(sessionType) {
			return fmt.Errorf("invalid session type %q (valid: %s)",
				sessionType, joinSessionTypes())
		}

		interest, err := repo.GetSpecialInterest(id)
		if err != nil {
			return err
		}

		s := models.NewInterestSession(id, models.InterestSessionType(sessionType), minutes)
		if cmd.Flags().Changed("mood-before") {
			s.MoodBefore = &sessionMoodBefore
		}
		if cmd.Flags().Changed("mood-after") {
			s.MoodAfter = &sessionMoodAfter
		}
		if cmd.Flags().Changed("energy-before") {
			s.EnergyBefore = &sessionEnergyBefore
		}
		if cmd.Flags().Changed("energy-after") {
			s.EnergyAfter = &sessionEnergyAfter
		}
		if sessionNotes != "" {
			s.Notes = &sessionNotes
		}
		if err := repo.CreateInterestSession(s); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged %d minutes of %s on %s", minutes, sessionType, interest.Name)
		return nil
	},
}

var interestPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause an interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInterestActive(args[0], false)
	},
}

var interestResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a paused interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInterestActive(args[0], true)
	},
}

var interestStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show session statistics for an interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		interest, err := repo.GetSpecialInterest(id)
		if err != nil {
			return err
		}
		sessions, err := repo.ListInterestSessions(id, storage.RangeStart, storage.RangeEnd)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		st := stats.CalculateInterestSessionStats(sessions)
		fmt.Printf("%s\n", interest.Name)
		fmt.Printf("  Sessions:      %d (%d minutes total)\n", st.TotalSessions, st.TotalMinutes)
		if st.TotalSessions == 0 {
			return nil
		}
		fmt.Printf("  Mood:          %.1f before, %.1f after (%+.1f)\n",
			st.AvgMoodBefore, st.AvgMoodAfter, st.AvgMoodImpact)
		fmt.Printf("  Energy impact: %+.1f\n", st.AvgEnergyImpact)

		faint := color.New(color.Faint)
		for _, t := range models.AllInterestSessionTypes {
			if n := st.ByType[t]; n > 0 {
				fmt.Printf("  %s %d\n", faint.Sprint(padRight(string(t), 14)), n)
			}
		}
		return nil
	},
}

func setInterestActive(arg string, active bool) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", arg)
	}
	i, err := repo.GetSpecialInterest(id)
	if err != nil {
		return err
	}
	i.CurrentlyActive = active
	if err := repo.UpdateSpecialInterest(i); err != nil {
		return fmt.Errorf("failed to update interest: %w", err)
	}
	if active {
		color.Green("✓ Resumed %s", i.Name)
	} else {
		color.Green("✓ Paused %s", i.Name)
	}
	return nil
}

func joinSessionTypes() string {
	names := make([]string, len(models.AllInterestSessionTypes))
	for i, t := range models.AllInterestSessionTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func init() {
	interestAddCmd.Flags().StringVar(&interestCategory, "category", "general", "interest category")
	interestAddCmd.Flags().StringVar(&interestNotes, "notes", "", "what draws you to it")
	interestListCmd.Flags().BoolVar(&interestActiveOnly, "active", false, "show only active interests")

	interestLogCmd.Flags().StringVar(&sessionType, "type", string(models.InterestSessionConsuming), "session type (research, creating, organizing, sharing, consuming)")
	interestLogCmd.Flags().IntVar(&sessionMoodBefore, "mood-before", 0, "mood before the session (1-10)")
	interestLogCmd.Flags().IntVar(&sessionMoodAfter, "mood-after", 0, "mood after the session (1-10)")
	interestLogCmd.Flags().IntVar(&sessionEnergyBefore, "energy-before", 0, "energy before the session (1-10)")
	interestLogCmd.Flags().IntVar(&sessionEnergyAfter, "energy-after", 0, "energy after the session (1-10)")
	interestLogCmd.Flags().StringVar(&sessionNotes, "notes", "", "notes for the session")

	interestCmd.AddCommand(interestAddCmd, interestListCmd, interestLogCmd,
		interestPauseCmd, interestResumeCmd, interestStatsCmd)

	rootCmd.AddCommand(interestCmd)
}
