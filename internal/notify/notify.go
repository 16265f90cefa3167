// ABOUTME: Desktop notifications for check-in and practice reminders.
package notify

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"
)

func init() {
	beeep.AppName = "mynd"
}

// Send shows a desktop notification.
func Send(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Alert shows a desktop notification with an audible cue.
func Alert(title, message string) error {
	return beeep.Alert(title, message, "")
}

// After fires a one-shot notification once the delay elapses, or returns
// early when the context is canceled.
func After(ctx context.Context, delay time.Duration, title, message string) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return Alert(title, message)
	}
}
