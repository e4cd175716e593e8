package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// SetHabit marks one of today's habits kept or not. The tracker runs
// independently of the path, so no office is needed.
func (e *Engine) SetHabit(ctx context.Context, habit domain.Habit, done bool) (app.Outcome, error) {
	return e.mutate(ctx, "set-habit", func(p *domain.Progress, now time.Time) effect {
		if _, ok := domain.ParseHabit(string(habit)); !ok {
			return rejected(app.RejectUnknownHabit)
		}
		today := progression.DateKey(now)
		day := p.HabitLog[today]
		day.Set(habit, done)
		p.HabitLog[today] = day
		return applied()
	})
}

// Streak is the run of consecutive days, ending today, with a daily
// reflection in the journal.
func (e *Engine) Streak(ctx context.Context) (int, error) {
	written, err := e.journal.WrittenAt(ctx, domain.JournalDaily)
	if err != nil {
		return 0, fmt.Errorf("computing streak: %w", err)
	}
	return progression.Streak(written, e.now()), nil
}
