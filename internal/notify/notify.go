// Package notify publishes the daily completion status to whatever is
// responsible for reminding the user.
package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// ReminderTitle and ReminderBody are the daily nudge copy.
const (
	ReminderTitle = "Priesthood Path"
	ReminderBody  = "Your daily mission is waiting. Take 2 minutes to record your thoughts and strengthen your service."
)

// Notifier receives the completion status after every applied mutation.
// Failures are reported but never affect progress.
type Notifier interface {
	Notify(ctx context.Context, completed bool, dateKey string) error
}

// Noop ignores every status.
type Noop struct{}

func (Noop) Notify(context.Context, bool, string) error { return nil }

// LogNotifier writes each status update as a structured log line.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(w io.Writer) *LogNotifier {
	return &LogNotifier{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, completed bool, dateKey string) error {
	n.logger.InfoContext(ctx, "mission_status", "completed", completed, "date", dateKey)
	return nil
}

// Multi fans a status out to several notifiers and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, completed bool, dateKey string) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, completed, dateKey); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
