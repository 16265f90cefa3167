// ABOUTME: CLI command for one-shot check-in reminders.
// ABOUTME: Reminders block until delivered and are never persisted.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/myndness/mynd/internal/notify"
	"github.com/spf13/cobra"
)

var remindIn string

var remindCmd = &cobra.Command{
	Use:   "remind [message]",
	Short: "Set a one-shot desktop reminder",
	Long: `Send a desktop notification now or after a delay. The command
blocks until the reminder fires; it is not persisted anywhere.

Examples:
  mynd remind "Time for a mood check-in"
  mynd remind --in 25m "Stand up and stretch"
  mynd remind --in 1h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "Time for a check-in"
		if len(args) > 0 {
			message = strings.Join(args, " ")
		}

		if remindIn == "" {
			return notify.Alert("mynd", message)
		}

		delay, err := time.ParseDuration(remindIn)
		if err != nil {
			return fmt.Errorf("invalid delay: %s (use forms like 30s, 25m, 1h)", remindIn)
		}

		color.New(color.Faint).Printf("Reminding in %s…\n", delay)
		return notify.After(cmd.Context(), delay, "mynd", message)
	},
}

func init() {
	remindCmd.Flags().StringVar(&remindIn, "in", "", "delay before the reminder (e.g. 25m)")
	rootCmd.AddCommand(remindCmd)
}
