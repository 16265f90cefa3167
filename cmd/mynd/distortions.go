// ABOUTME: CLI command showing the cognitive distortion reference catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/models"
	"github.com/spf13/cobra"
)

var distortionsCmd = &cobra.Command{
	Use:   "distortions",
	Short: "Show the cognitive distortion reference",
	Long: `Show the catalog of cognitive distortions used to tag thought
records, each with an example and a challenge question.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, d := range models.CognitiveDistortions {
			bold.Printf("%s", d.Name)
			faint.Printf("  (%s)\n", d.ID)
			fmt.Printf("  %s\n", d.ShortDescription)
			faint.Printf("  e.g. %s\n", d.Example)
			fmt.Printf("  Ask: %s\n\n", d.ChallengeQuestion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distortionsCmd)
}
