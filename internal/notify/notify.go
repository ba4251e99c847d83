// Package notify is the user-facing alert surface. Failure to deliver is
// never an error of the planner core; implementations log and move on.
package notify

import (
	"context"
	"log"
)

// Notifier delivers a plain-text message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// LogNotifier writes notifications to the process log. It is the fallback
// surface when no external channel is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, message string) error {
	log.Printf("[notify] %s", message)
	return nil
}

// Multi fans a notification out to several surfaces. Individual delivery
// failures are logged, not propagated.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, message string) error {
	for _, n := range m {
		if err := n.Notify(ctx, message); err != nil {
			log.Printf("[warn] notify: %v", err)
		}
	}
	return nil
}
