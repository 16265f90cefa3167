// ABOUTME: CLI commands for the exposure hierarchy.
// ABOUTME: Items complete automatically once distress reaches their target.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var (
	hierDistress int
	hierTarget   int
	hierCategory string
	hierNotes    string

	exposeBefore   int
	exposeDuring   int
	exposeAfter    int
	exposeDuration int
	exposeNotes    string
)

var hierarchyCmd = &cobra.Command{
	Use:     "hierarchy",
	Aliases: []string{"hier"},
	Short:   "Build and work an exposure hierarchy",
}

var hierarchyAddCmd = &cobra.Command{
	Use:   "add <situation>",
	Short: "Add a feared situation to the hierarchy",
	Long: `Add a feared situation with its initial SUDS distress rating (0-100).
The item completes automatically once an exposure brings distress to
the target (default 20).

Example:
  mynd hierarchy add "Order coffee in person" --distress 70 --target 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if hierDistress < 0 || hierDistress > 100 {
			return fmt.Errorf("distress must be 0-100")
		}
		item := models.NewHierarchyItem(args[0], hierDistress)
		if cmd.Flags().Changed("target") {
			item.TargetDistress = &hierTarget
		}
		if hierCategory != "" {
			item.Category = &hierCategory
		}
		if hierNotes != "" {
			item.Notes = &hierNotes
		}

		if err := repo.CreateHierarchyItem(item); err != nil {
			return fmt.Errorf("failed to add hierarchy item: %w", err)
		}

		color.Green("✓ Added hierarchy item #%d (distress %d, target %d)",
			item.ID, item.CurrentDistress, item.Target())
		return nil
	},
}

var hierarchyExposeCmd = &cobra.Command{
	Use:   "expose <id>",
	Short: "Record an exposure attempt",
	Long: `Record one exposure to a feared situation with before/during/after
SUDS ratings. The after rating becomes the item's current distress.

Example:
  mynd hierarchy expose 2 --before 65 --during 80 --after 45 --minutes 15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		for _, v := range []int{exposeBefore, exposeDuring, exposeAfter} {
			if v < 0 || v > 100 {
				return fmt.Errorf("distress ratings must be 0-100")
			}
		}

		attempt := models.ExposureAttempt{
			Date:           today(),
			DistressBefore: exposeBefore,
			DistressDuring: exposeDuring,
			DistressAfter:  exposeAfter,
			Duration:       exposeDuration,
		}
		if exposeNotes != "" {
			attempt.Notes = &exposeNotes
		}

		item, err := repo.AddExposureAttempt(id, attempt)
		if err != nil {
			return fmt.Errorf("failed to record exposure: %w", err)
		}

		color.Green("✓ Recorded exposure on #%d (distress now %d)", id, item.CurrentDistress)
		if item.IsComplete {
			color.Green("  Item complete: distress reached the target of %d", item.Target())
		}
		return nil
	},
}

var hierarchyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the hierarchy, hardest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListHierarchy()
		if err != nil {
			return fmt.Errorf("failed to list hierarchy: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Hierarchy is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, item := range items {
			mark := faint.Sprint("·")
			if item.IsComplete {
				mark = color.GreenString("✓")
			} else if len(item.ExposureAttempts) > 0 {
				mark = color.YellowString("~")
			}
			fmt.Printf("%s %s %s %s %s\n",
				mark,
				faint.Sprintf("#%-4d", item.ID),
				padRight(fmt.Sprintf("%d→%d", item.InitialDistress, item.CurrentDistress), 8),
				padRight(truncate(item.Situation, 44), 44),
				faint.Sprintf("%d attempts", len(item.ExposureAttempts)))
		}
		return nil
	},
}

func init() {
	hierarchyAddCmd.Flags().IntVar(&hierDistress, "distress", 50, "initial SUDS distress (0-100)")
	hierarchyAddCmd.Flags().IntVar(&hierTarget, "target", models.DefaultTargetDistress, "completion target (0-100)")
	hierarchyAddCmd.Flags().StringVar(&hierCategory, "category", "", "situation category")
	hierarchyAddCmd.Flags().StringVar(&hierNotes, "notes", "", "notes for the item")

	hierarchyExposeCmd.Flags().IntVar(&exposeBefore, "before", 0, "distress before (0-100)")
	hierarchyExposeCmd.Flags().IntVar(&exposeDuring, "during", 0, "peak distress during (0-100)")
	hierarchyExposeCmd.Flags().IntVar(&exposeAfter, "after", 0, "distress after (0-100)")
	hierarchyExposeCmd.Flags().IntVar(&exposeDuration, "minutes", 0, "exposure duration in minutes")
	hierarchyExposeCmd.Flags().StringVar(&exposeNotes, "notes", "", "notes for the attempt")

	hierarchyCmd.AddCommand(hierarchyAddCmd, hierarchyExposeCmd, hierarchyListCmd)
	rootCmd.AddCommand(hierarchyCmd)
}
