// ABOUTME: CLI commands for blood pressure readings.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	bpHeartRate      int
	bpArm            string
	bpAnxietyRelated bool
	bpPostExercise   bool
	bpPostMedication bool
	bpNotes          string
	bpAt             string
	bpListDays       int
	bpAnxietyOnly    bool
)

var bpCmd = &cobra.Command{
	Use:   "bp",
	Short: "Track blood pressure readings",
}

var bpAddCmd = &cobra.Command{
	Use:   "add <systolic> <diastolic>",
	Short: "Log a blood pressure reading",
	Long: `Log a blood pressure reading with optional heart rate and context flags.

Examples:
  mynd bp add 120 80
  mynd bp add 135 88 --hr 92 --anxiety-related
  mynd bp add 118 76 --arm left --post-exercise`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid systolic value: %s", args[0])
		}
		dia, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid diastolic value: %s", args[1])
		}

		r := models.NewBPReading(sys, dia)
		if err := r.Validate(); err != nil {
			return err
		}
		if bpHeartRate > 0 {
			r.WithHeartRate(bpHeartRate)
		}
		if bpArm != "" {
			if bpArm != models.ArmLeft && bpArm != models.ArmRight {
				return fmt.Errorf("arm must be %q or %q", models.ArmLeft, models.ArmRight)
			}
			r.Arm = &bpArm
		}
		r.IsAnxietyRelated = bpAnxietyRelated
		r.IsPostExercise = bpPostExercise
		r.IsPostMedication = bpPostMedication
		if bpNotes != "" {
			r.Notes = &bpNotes
		}
		if bpAt != "" {
			t, err := parseTimeArg(bpAt)
			if err != nil {
				return err
			}
			r.WithTimestamp(t)
		}

		if err := repo.CreateBPReading(r); err != nil {
			return fmt.Errorf("failed to log reading: %w", err)
		}

		color.Green("✓ Logged blood pressure")
		hr := ""
		if r.HeartRate != nil {
			hr = fmt.Sprintf("  %d bpm", *r.HeartRate)
		}
		fmt.Printf("  %s %d/%d mmHg%s\n",
			color.New(color.Faint).Sprintf("#%d", r.ID), sys, dia, hr)
		return nil
	},
}

var bpListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent blood pressure readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(bpListDays)
		var readings []models.BPReading
		var err error
		if bpAnxietyOnly {
			readings, err = repo.AnxietyRelatedBPReadings(start, end)
		} else {
			readings, err = repo.ListBPReadings(start, end)
		}
		if err != nil {
			return fmt.Errorf("failed to list readings: %w", err)
		}
		if len(readings) == 0 {
			fmt.Println("No readings found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range readings {
			hr := "      "
			if r.HeartRate != nil {
				hr = fmt.Sprintf("%3d bpm", *r.HeartRate)
			}
			flags := ""
			if r.IsAnxietyRelated {
				flags += color.YellowString(" [anxiety]")
			}
			if r.IsPostExercise {
				flags += faint.Sprint(" [exercise]")
			}
			if r.IsPostMedication {
				flags += faint.Sprint(" [medication]")
			}
			fmt.Printf("%s %s %3d/%-3d %s%s\n",
				faint.Sprintf("#%-4d", r.ID),
				faint.Sprint(r.Timestamp.Format("2006-01-02 15:04")),
				r.Systolic, r.Diastolic, hr, flags)
		}
		return nil
	},
}

func init() {
	bpAddCmd.Flags().IntVar(&bpHeartRate, "hr", 0, "heart rate in BPM")
	bpAddCmd.Flags().StringVar(&bpArm, "arm", "", "arm used (left or right)")
	bpAddCmd.Flags().BoolVar(&bpAnxietyRelated, "anxiety-related", false, "reading taken during anxiety")
	bpAddCmd.Flags().BoolVar(&bpPostExercise, "post-exercise", false, "reading taken after exercise")
	bpAddCmd.Flags().BoolVar(&bpPostMedication, "post-medication", false, "reading taken after medication")
	bpAddCmd.Flags().StringVar(&bpNotes, "notes", "", "notes for the reading")
	bpAddCmd.Flags().StringVar(&bpAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	bpListCmd.Flags().IntVar(&bpListDays, "days", 30, "number of days to show")
	bpListCmd.Flags().BoolVar(&bpAnxietyOnly, "anxiety-related", false, "only anxiety-related readings")

	bpCmd.AddCommand(bpAddCmd, bpListCmd)
	rootCmd.AddCommand(bpCmd)
}
