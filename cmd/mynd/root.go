// ABOUTME: Root Cobra command for mynd CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/myndness/mynd/internal/config"
	"github.com/myndness/mynd/internal/models"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "mynd",
	Short: "Personal mental wellness tracker",
	Long: `Mynd is a CLI tool for tracking mental wellness day to day.

WHAT IT TRACKS:

  Mood           mood and anxiety check-ins on a 1-10 / 0-10 scale
  Anxiety        episodes with symptoms, interventions, and BP snapshots
  Blood pressure readings with heart rate and context flags
  Activities     planned behavioral-activation activities and completions
  CBT tools      thought records, behavioral experiments, exposure hierarchy
  Mindfulness    practice sessions with before/after ratings
  Energy         spoon-based energy logs and task breakdowns
  Interests      routine templates and special-interest sessions

QUICK START:

  $ mynd mood add 7 --anxiety 3             # Log a mood check-in
  $ mynd bp add 120 80 --hr 72              # Log blood pressure
  $ mynd activity plan "Walk outside" --category physical --block morning
  $ mynd mindful add breath-awareness 10 --completed
  $ mynd insights --days 7                  # Weekly summary and streaks

DATA STORAGE:

  Records are stored locally in SQLite at ~/.local/share/mynd/mynd.db.
  Set "backend": "badger" in ~/.config/mynd/config.json to use the
  key-value backend instead; 'mynd migrate' copies data between them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store skip it
		switch cmd.Name() {
		case "version", "help", "completion", "remind", "distortions":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("initialize storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// today returns the current calendar date in store format.
func today() string {
	return time.Now().Format(models.DateLayout)
}

// lastDays returns the inclusive range covering the last n calendar days,
// ending today.
func lastDays(n int) (start, end string) {
	now := time.Now()
	end = now.Format(models.DateLayout)
	start = now.AddDate(0, 0, -(n - 1)).Format(models.DateLayout)
	return start, end
}

func parseTimeArg(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
