// ABOUTME: CLI commands for energy logs and task breakdowns.
// ABOUTME: Spoons are a self-reported daily energy budget.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	energySpoons   int
	energyNotes    string
	energyListDays int

	taskSteps      []string
	taskTemplate   bool
	taskListStatus string
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Track daily energy and spoons",
}

var energyLogCmd = &cobra.Command{
	Use:   "log <level>",
	Short: "Log an energy check-in",
	Long: `Log an energy level (1-10) with an available spoon budget.

Example:
  mynd energy log 6 --spoons 9`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil || level < 1 || level > 10 {
			return fmt.Errorf("energy level must be a number from 1 to 10")
		}

		l := models.NewEnergyLog(level, energySpoons)
		if energyNotes != "" {
			l.Notes = &energyNotes
		}
		if err := repo.CreateEnergyLog(l); err != nil {
			return fmt.Errorf("failed to log energy: %w", err)
		}

		color.Green("✓ Logged energy %d (%d spoons)", level, energySpoons)
		return nil
	},
}

var energyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent energy check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := lastDays(energyListDays)
		logs, err := repo.ListEnergyLogs(start, end)
		if err != nil {
			return fmt.Errorf("failed to list energy logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No energy check-ins found.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, l := range logs {
			used := ""
			if l.SpoonsUsed != nil {
				used = faint.Sprintf("  used %d", *l.SpoonsUsed)
			}
			fmt.Printf("%s energy %2d  spoons %2d%s\n",
				faint.Sprint(l.Date), l.EnergyLevel, l.SpoonsAvailable, used)
		}
		return nil
	},
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Break overwhelming tasks into steps",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task breakdown",
	Long: `Create a task breakdown from repeatable --step flags. Each step is
"description" or "description=spoons".

Example:
  mynd task add "Clean the kitchen" \
    --step "Clear the counters=2" --step "Load dishwasher=1" --step "Wipe surfaces=1"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := make([]models.TaskStep, 0, len(taskSteps))
		for _, raw := range taskSteps {
			desc, costStr, found := strings.Cut(raw, "=")
			step := models.TaskStep{Description: desc, SpoonCost: 1}
			if found {
				cost, err := strconv.Atoi(costStr)
				if err != nil || cost < 0 {
					return fmt.Errorf("invalid spoon cost in step: %s", raw)
				}
				step.SpoonCost = cost
			}
			steps = append(steps, step)
		}

		t := models.NewTaskBreakdown(args[0], steps)
		if len(steps) > 0 {
			t.Status = models.TaskReady
		}
		t.IsTemplate = taskTemplate

		if err := repo.CreateTaskBreakdown(t); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		color.Green("✓ Created task #%d with %d step(s), %d spoons total",
			t.ID, len(t.Steps), t.TotalSpoonCost())
		return nil
	},
}

var taskStepCmd = &cobra.Command{
	Use:   "step <id> <step-number>",
	Short: "Mark a task step done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step number: %s", args[1])
		}

		t, err := repo.GetTaskBreakdown(id)
		if err != nil {
			return err
		}
		if n < 1 || n > len(t.Steps) {
			return fmt.Errorf("task #%d has %d steps", id, len(t.Steps))
		}

		// Replace the steps slice rather than mutating the loaded one.
		steps := make([]models.TaskStep, len(t.Steps))
		copy(steps, t.Steps)
		steps[n-1].Done = true
		t.Steps = steps

		if t.Status == models.TaskReady || t.Status == models.TaskDraft {
			t.Status = models.TaskInProgress
			now := time.Now()
			t.StartedAt = &now
		}
		allDone := true
		for _, s := range t.Steps {
			if !s.Done {
				allDone = false
				break
			}
		}
		if allDone {
			t.Status = models.TaskCompleted
			now := time.Now()
			t.CompletedAt = &now
		}

		if err := repo.UpdateTaskBreakdown(t); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		color.Green("✓ Step %d of task #%d done", n, id)
		if t.Status == models.TaskCompleted {
			color.Green("  Task complete")
		}
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List task breakdowns",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.TaskStatus
		if taskListStatus != "" {
			st := models.TaskStatus(taskListStatus)
			status = &st
		}
		tasks, err := repo.ListTaskBreakdowns(status)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range tasks {
			done := 0
			for _, s := range t.Steps {
				if s.Done {
					done++
				}
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("#%-4d", t.ID),
				padRight(string(t.Status), 12),
				padRight(truncate(t.Title, 36), 36),
				faint.Sprintf("%d/%d steps, %d spoons", done, len(t.Steps), t.TotalSpoonCost()))
		}
		return nil
	},
}

func init() {
	energyLogCmd.Flags().IntVar(&energySpoons, "spoons", 10, "spoons available today")
	energyLogCmd.Flags().StringVar(&energyNotes, "notes", "", "notes for the check-in")
	energyListCmd.Flags().IntVar(&energyListDays, "days", 30, "number of days to show")
	energyCmd.AddCommand(energyLogCmd, energyListCmd)

	taskAddCmd.Flags().StringArrayVar(&taskSteps, "step", nil, `step as "description" or "description=spoons" (repeatable)`)
	taskAddCmd.Flags().BoolVar(&taskTemplate, "template", false, "save as a reusable template")
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "filter by status (draft, ready, in-progress, completed, abandoned)")
	taskCmd.AddCommand(taskAddCmd, taskStepCmd, taskListCmd)

	rootCmd.AddCommand(energyCmd, taskCmd)
}
