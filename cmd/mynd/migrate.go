// ABOUTME: CLI command for migrating data between storage backends.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/storage"
	"github.com/spf13/cobra"
)

var migrateTo string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to the other storage backend",
	Long: `Copy all records from the current backend into another one.

The destination should be empty; the migration does not deduplicate.
After migrating, switch backends by setting "backend" in
~/.config/mynd/config.json.

Examples:
  mynd migrate --to badger    # SQLite -> Badger key-value store
  mynd migrate --to sqlite    # Badger -> SQLite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		dst, err := cfg.OpenBackend(migrateTo)
		if err != nil {
			return fmt.Errorf("open destination backend: %w", err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d records to %s", summary.Total(), migrateTo)
		faint := color.New(color.Faint)
		faint.Printf("  mood logs %d, episodes %d, bp readings %d\n",
			summary.MoodLogs, summary.AnxietyEpisodes, summary.BPReadings)
		faint.Printf("  activities %d, library %d, thought records %d\n",
			summary.PlannedActivities, summary.ActivityLibrary, summary.ThoughtRecords)
		faint.Printf("  experiments %d, hierarchy %d, mindfulness %d\n",
			summary.BehavioralExperiments, summary.AnxietyHierarchy, summary.MindfulnessSessions)
		faint.Printf("  energy logs %d, tasks %d, routines %d\n",
			summary.EnergyLogs, summary.TaskBreakdowns, summary.RoutineTemplates)
		faint.Printf("  interests %d, sessions %d, singletons %d\n",
			summary.SpecialInterests, summary.InterestSessions, summary.Singletons)
		fmt.Printf("\nSwitch over with: \"backend\": %q in %s\n", migrateTo, "~/.config/mynd/config.json")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "badger", "destination backend (sqlite or badger)")
	rootCmd.AddCommand(migrateCmd)
}
