// ABOUTME: CLI commands for reusable routine templates.
// ABOUTME: Using a routine stamps it out as a ready task breakdown.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	routineSteps []string
	routineDesc  string
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage reusable routines",
}

var routineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a routine template",
	Long: `Create a reusable routine from repeatable --step flags. Each step is
"description" or "description=spoons".

Example:
  mynd routine add "Morning routine" \
    --step "Shower=2" --step "Breakfast=1" --step "Meds=1"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := make([]models.RoutineStep, 0, len(routineSteps))
		for _, raw := range routineSteps {
			desc, costStr, found := strings.Cut(raw, "=")
			step := models.RoutineStep{Description: desc, SpoonCost: 1}
			if found {
				cost, err := strconv.Atoi(costStr)
				if err != nil || cost < 0 {
					return fmt.Errorf("invalid spoon cost in step: %s", raw)
				}
				step.SpoonCost = cost
			}
			steps = append(steps, step)
		}
		if len(steps) == 0 {
			return fmt.Errorf("a routine needs at least one --step")
		}

		t := models.NewRoutineTemplate(args[0], steps)
		if routineDesc != "" {
			t.Description = &routineDesc
		}
		if err := repo.CreateRoutineTemplate(t); err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}

		color.Green("✓ Created routine #%d with %d step(s), %d spoons total",
			t.ID, len(t.Steps), t.TotalSpoonCost())
		return nil
	},
}

var routineUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Start a routine as a task breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		task, err := repo.UseRoutineTemplate(id)
		if err != nil {
			return fmt.Errorf("failed to use routine: %w", err)
		}

		color.Green("✓ Started %q as task #%d", task.Title, task.ID)
		fmt.Println("  Work through it with 'mynd task step'.")
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routine templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines, err := repo.ListRoutineTemplates()
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}
		if len(routines) == 0 {
			fmt.Println("No routines found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routines {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%-4d", r.ID),
				padRight(truncate(r.Name, 36), 36),
				faint.Sprintf("%d steps, %d spoons, used %dx",
					len(r.Steps), r.TotalSpoonCost(), r.TimesUsed))
		}
		return nil
	},
}

func init() {
	routineAddCmd.Flags().StringArrayVar(&routineSteps, "step", nil, `step as "description" or "description=spoons" (repeatable)`)
	routineAddCmd.Flags().StringVar(&routineDesc, "notes", "", "what the routine is for")
	routineCmd.AddCommand(routineAddCmd, routineUseCmd, routineListCmd)

	rootCmd.AddCommand(routineCmd)
}
