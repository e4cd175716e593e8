package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Status is the cached completion flag a reminder checks before nudging.
type Status struct {
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// NeedsNudge reports whether a reminder is due for today: nothing recorded,
// a stale date, or today not yet completed.
func (s Status) NeedsNudge(today string) bool {
	return s.Date != today || !s.Completed
}

// StatusFileNotifier persists the latest Status as JSON so a separate
// reminder process (cron, systemd timer, `pathkeeper nudge`) can read it.
type StatusFileNotifier struct {
	path string
}

func NewStatusFileNotifier(path string) *StatusFileNotifier {
	return &StatusFileNotifier{path: path}
}

func (n *StatusFileNotifier) Path() string { return n.path }

func (n *StatusFileNotifier) Notify(ctx context.Context, completed bool, dateKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(Status{Completed: completed, Date: dateKey})
	if err != nil {
		return fmt.Errorf("encoding status: %w", err)
	}
	return writeFileAtomic(n.path, data)
}

// ReadStatus loads the cached status. A missing or unreadable file yields
// the zero Status, which always needs a nudge.
func ReadStatus(path string) (Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("reading status %s: %w", path, err)
	}
	var s Status
	if err := json.Unmarshal(data, &s); err != nil {
		return Status{}, nil
	}
	return s, nil
}

// ReminderDue reports whether a nudge should fire at now: only at or after
// hour, and only while today's mission is still open.
func ReminderDue(s Status, now time.Time, hour int) bool {
	if now.Hour() < hour {
		return false
	}
	return s.NeedsNudge(now.Format("2006-01-02"))
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating status directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".status-*.json")
	if err != nil {
		return fmt.Errorf("creating temp status file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing status: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing status: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing status file: %w", err)
	}
	return nil
}
