// ABOUTME: CLI commands for anxiety episode lifecycle.
// ABOUTME: Episodes start open-ended and are closed with an outcome.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	episodeSymptoms      []string
	episodeTriggers      string
	episodeLocation      string
	episodeInterventions []string
	episodePeak          int
	episodeMoodAfter     int
	episodeAnxietyAfter  int
	episodeNotes         string
	episodeListDays      int
	episodeBPHeartRate   int
)

var episodeCmd = &cobra.Command{
	Use:     "episode",
	Aliases: []string{"ep"},
	Short:   "Track anxiety episodes",
}

var episodeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an anxiety episode",
	Long: `Start tracking an anxiety episode at the current time.

Examples:
  mynd episode start --symptom racing-thoughts --symptom sweating
  mynd episode start --trigger "work deadline" --location home`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := models.NewAnxietyEpisode()
		for _, s := range episodeSymptoms {
			e.Symptoms = append(e.Symptoms, models.AnxietySymptom(s))
		}
		if episodeTriggers != "" {
			e.Triggers = &episodeTriggers
		}
		if episodeLocation != "" {
			e.Location = &episodeLocation
		}

		if err := repo.CreateEpisode(e); err != nil {
			return fmt.Errorf("failed to start episode: %w", err)
		}

		color.Yellow("Episode #%d started at %s", e.ID, e.StartTime.Format("15:04"))
		fmt.Println("  End it with: mynd episode end", e.ID)
		return nil
	},
}

var episodeEndCmd = &cobra.Command{
	Use:   "end <id>",
	Short: "End an anxiety episode",
	Long: `End an episode and record its outcome.

Examples:
  mynd episode end 3 --peak 8 --mood-after 5 --anxiety-after 3
  mynd episode end 3 --intervention breathing-478=7 --intervention grounding-54321=5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		outcome := storage.EpisodeOutcome{}
		if err := parseInterventions(&outcome, episodeInterventions); err != nil {
			return err
		}
		if cmd.Flags().Changed("peak") {
			outcome.PeakAnxietyLevel = &episodePeak
		}
		if cmd.Flags().Changed("mood-after") {
			outcome.PostEpisodeMood = &episodeMoodAfter
		}
		if cmd.Flags().Changed("anxiety-after") {
			outcome.PostEpisodeAnxiety = &episodeAnxietyAfter
		}
		if episodeNotes != "" {
			outcome.Notes = &episodeNotes
		}

		if err := repo.EndEpisode(id, time.Now(), outcome); err != nil {
			return fmt.Errorf("failed to end episode: %w", err)
		}

		ended, err := repo.GetEpisode(id)
		if err != nil {
			return err
		}
		color.Green("✓ Episode #%d ended (%d min)", id, ended.DurationMinutes())
		return nil
	},
}

var episodeBPCmd = &cobra.Command{
	Use:   "bp <id> <systolic> <diastolic>",
	Short: "Record a BP snapshot during an episode",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		sys, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid systolic value: %s", args[1])
		}
		dia, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid diastolic value: %s", args[2])
		}

		reading := models.EpisodeBPReading{Time: time.Now(), Systolic: sys, Diastolic: dia}
		if episodeBPHeartRate > 0 {
			reading.HeartRate = &episodeBPHeartRate
		}

		if err := repo.AddEpisodeBPReading(id, reading); err != nil {
			return fmt.Errorf("failed to record reading: %w", err)
		}
		color.Green("✓ Recorded %d/%d on episode #%d", sys, dia, id)
		return nil
	},
}

var episodeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent anxiety episodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := lastDays(episodeListDays)
		episodes, err := repo.RecentEpisodes(start)
		if err != nil {
			return fmt.Errorf("failed to list episodes: %w", err)
		}
		if len(episodes) == 0 {
			fmt.Println("No episodes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range episodes {
			status := color.GreenString("%d min", e.DurationMinutes())
			if e.Ongoing() {
				status = color.YellowString("ongoing")
			}
			peak := ""
			if e.PeakAnxietyLevel != nil {
				peak = fmt.Sprintf("  peak %d", *e.PeakAnxietyLevel)
			}
			symptoms := ""
			if len(e.Symptoms) > 0 {
				names := make([]string, len(e.Symptoms))
				for i, s := range e.Symptoms {
					names[i] = string(s)
				}
				symptoms = faint.Sprintf("  %s", truncate(strings.Join(names, ", "), 40))
			}
			fmt.Printf("%s %s %s%s%s\n",
				faint.Sprintf("#%-4d", e.ID),
				faint.Sprint(e.StartTime.Format("2006-01-02 15:04")),
				status, peak, symptoms)
		}
		return nil
	},
}

// parseInterventions parses name=effectiveness pairs into an outcome.
func parseInterventions(outcome *storage.EpisodeOutcome, pairs []string) error {
	for _, pair := range pairs {
		name, ratingStr, found := strings.Cut(pair, "=")
		iv := models.InterventionType(name)
		outcome.InterventionsUsed = append(outcome.InterventionsUsed, iv)
		if !found {
			continue
		}
		rating, err := strconv.Atoi(ratingStr)
		if err != nil || rating < 0 || rating > 10 {
			return fmt.Errorf("intervention effectiveness must be 0-10: %s", pair)
		}
		if outcome.InterventionEffectiveness == nil {
			outcome.InterventionEffectiveness = make(map[models.InterventionType]int)
		}
		outcome.InterventionEffectiveness[iv] = rating
	}
	return nil
}

func init() {
	episodeStartCmd.Flags().StringArrayVar(&episodeSymptoms, "symptom", nil, "symptom (repeatable)")
	episodeStartCmd.Flags().StringVar(&episodeTriggers, "trigger", "", "what triggered the episode")
	episodeStartCmd.Flags().StringVar(&episodeLocation, "location", "", "where the episode happened")
	episodeEndCmd.Flags().StringArrayVar(&episodeInterventions, "intervention", nil, "intervention used, as name or name=effectiveness (repeatable)")
	episodeEndCmd.Flags().IntVar(&episodePeak, "peak", 0, "peak anxiety level (0-10)")
	episodeEndCmd.Flags().IntVar(&episodeMoodAfter, "mood-after", 0, "mood after the episode (1-10)")
	episodeEndCmd.Flags().IntVar(&episodeAnxietyAfter, "anxiety-after", 0, "anxiety after the episode (0-10)")
	episodeEndCmd.Flags().StringVar(&episodeNotes, "notes", "", "notes for the episode")
	episodeBPCmd.Flags().IntVar(&episodeBPHeartRate, "hr", 0, "heart rate in BPM")
	episodeListCmd.Flags().IntVar(&episodeListDays, "days", 7, "number of days to show")

	episodeCmd.AddCommand(episodeStartCmd, episodeEndCmd, episodeBPCmd, episodeListCmd)
	rootCmd.AddCommand(episodeCmd)
}
