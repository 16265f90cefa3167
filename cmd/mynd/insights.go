// ABOUTME: CLI command for weekly insights.
// ABOUTME: Reduces the window's records into averages, streaks, and tool stats.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/stats"
	"github.com/spf13/cobra"
)

var insightsDays int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarize recent mood, activities, and practice",
	Long: `Summarize the last N days: mood and anxiety averages, activity
completion and category impact, mindfulness totals and streak, blood
pressure averages, and CBT tool progress.

Examples:
  mynd insights            # last 7 days
  mynd insights --days 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(insightsDays)
		now := time.Now()

		moodLogs, err := repo.ListMoodLogs(start, end)
		if err != nil {
			return err
		}
		activities, err := repo.ListPlannedActivities(start, end)
		if err != nil {
			return err
		}
		sessions, err := repo.ListMindfulnessSessions(start, end)
		if err != nil {
			return err
		}
		completedSessions, err := repo.CompletedMindfulnessSessions(start, end)
		if err != nil {
			return err
		}
		readings, err := repo.ListBPReadings(start, end)
		if err != nil {
			return err
		}
		thoughts, err := repo.ListThoughtRecords(start, end)
		if err != nil {
			return err
		}
		experiments, err := repo.ListExperiments(start, end)
		if err != nil {
			return err
		}
		hierarchy, err := repo.ListHierarchy()
		if err != nil {
			return err
		}

		w := stats.GetWeeklyInsights(moodLogs, activities, sessions, readings)
		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		bold.Printf("Last %d days (%s to %s)\n\n", insightsDays, start, end)

		fmt.Println("MOOD")
		if w.AvgMood != nil {
			fmt.Printf("  avg mood %.1f  avg anxiety %.1f  %s\n",
				*w.AvgMood, *w.AvgAnxiety, faint.Sprintf("%d check-ins", w.MoodEntries))
		} else {
			faint.Println("  no check-ins")
		}

		fmt.Println("\nACTIVITIES")
		fmt.Printf("  %d/%d completed (%.0f%%)\n",
			w.ActivitiesCompleted, w.ActivitiesPlanned, w.CompletionRate)
		if w.BestCategory != nil {
			fmt.Printf("  best category: %s (%+.1f mood)\n", *w.BestCategory, *w.BestCategoryImpact)
		}
		for _, impact := range stats.CalculateActivityImpact(activities) {
			fmt.Printf("  %s %+.1f mood over %d\n",
				padRight(string(impact.Category), 10), impact.MoodChange, impact.Count)
		}
		activityStreak := stats.CalculateActivityStreak(activities, now)
		fmt.Printf("  streak: %d day(s)\n", activityStreak)

		fmt.Println("\nMINDFULNESS")
		fmt.Printf("  %d sessions, %d minutes\n", w.MindfulnessSessions, w.TotalMindfulnessMinutes)
		if w.AvgSessionDuration != nil {
			fmt.Printf("  avg session %.1f min\n", *w.AvgSessionDuration)
		}
		mindfulStreak := stats.CalculateMindfulnessStreak(completedSessions, now)
		fmt.Printf("  streak: %d day(s)\n", mindfulStreak)

		if w.BPReadings > 0 {
			fmt.Println("\nBLOOD PRESSURE")
			fmt.Printf("  avg %d/%d over %d readings\n", *w.AvgSystolic, *w.AvgDiastolic, w.BPReadings)
			for _, day := range stats.AggregateBPByDay(readings) {
				flag := ""
				if day.HasAnxietyRelated {
					flag = color.YellowString(" [anxiety]")
				}
				fmt.Printf("  %s %d/%d%s\n", faint.Sprint(day.Date), day.AvgSystolic, day.AvgDiastolic, flag)
			}
		}

		tr := stats.CalculateThoughtRecordStats(thoughts)
		ex := stats.CalculateExperimentStats(experiments)
		hs := stats.CalculateHierarchyStats(hierarchy)
		if tr.Total+ex.Total+hs.Total > 0 {
			fmt.Println("\nCBT TOOLS")
			if tr.Total > 0 {
				fmt.Printf("  thought records: %d/%d complete, intensity %d → %d\n",
					tr.Completed, tr.Total, tr.AvgEmotionBefore, tr.AvgEmotionAfter)
				for _, d := range tr.TopDistortions {
					faint.Printf("    %s\n", d)
				}
			}
			if ex.Total > 0 {
				fmt.Printf("  experiments: %d/%d complete, belief down %d on average\n",
					ex.Completed, ex.Total, ex.AvgBeliefReduction)
			}
			if hs.Total > 0 {
				fmt.Printf("  hierarchy: %d complete, %d in progress, %d exposures, distress down %d\n",
					hs.Completed, hs.InProgress, hs.TotalExposures, hs.AvgDistressReduction)
			}
		}

		return nil
	},
}

func init() {
	insightsCmd.Flags().IntVar(&insightsDays, "days", 7, "window size in days")
	rootCmd.AddCommand(insightsCmd)
}
