package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// DebugAdvanceDay pretends the active day was completed yesterday, so the
// next day opens immediately. Phase gates are skipped.
func (e *Engine) DebugAdvanceDay(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "debug-advance-day", func(p *domain.Progress, now time.Time) effect {
		if p.Office == "" {
			return rejected(app.RejectNoOffice)
		}
		if p.Pending != nil {
			return rejected(app.RejectTransitionPending)
		}
		yesterday := progression.DateKey(now.AddDate(0, 0, -1))
		day := activeDay(p, progression.DateKey(now))
		recordActivity(p, yesterday, day)

		if !p.Mastery.IsStarterFinished {
			if day == progression.StarterDays {
				return applied(finishStarter(p))
			}
			p.Starter = domain.DayMark{CompletedDay: day, CompletedDate: yesterday}
			return applied()
		}
		return applied(advanceMastery(p, yesterday, p.Mastery.CurrentDay)...)
	})
}

// DebugCompleteMonth treats the rest of the current month as finished
// yesterday. In the Starter Week that leaves day 7 open for the weekly
// reflection; in mastery the next month opens on its first day, and month 4
// jumps to its last day. Phase gates and badges are skipped.
func (e *Engine) DebugCompleteMonth(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "debug-complete-month", func(p *domain.Progress, now time.Time) effect {
		if p.Office == "" {
			return rejected(app.RejectNoOffice)
		}
		if p.Pending != nil {
			return rejected(app.RejectTransitionPending)
		}
		yesterday := progression.DateKey(now.AddDate(0, 0, -1))

		if !p.Mastery.IsStarterFinished {
			p.Starter = domain.DayMark{CompletedDay: progression.StarterDays, CompletedDate: yesterday}
			recordActivity(p, yesterday, progression.StarterDays-1)
			return applied()
		}

		m := &p.Mastery
		finished := progression.DaysInMonth(m.CurrentMonth)
		if m.CurrentMonth == 2 {
			m.Month2ReflectionComplete = true
		}
		var events []app.Event
		if m.CurrentMonth >= progression.MasteryMonths {
			m.CurrentDay = finished
			finished--
		} else {
			m.CurrentMonth++
			m.CurrentDay = 1
			events = append(events, app.Event{Kind: app.EventMonthAdvanced, Month: m.CurrentMonth})
		}
		p.Starter = domain.DayMark{CompletedDay: finished, CompletedDate: yesterday}
		recordActivity(p, yesterday, progression.AbsoluteDayOf(m.CurrentMonth, m.CurrentDay)-1)
		return applied(events...)
	})
}

// DebugToggleOrder flips between the deacon and elder offices to preview
// both curriculum tracks.
func (e *Engine) DebugToggleOrder(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "debug-toggle-order", func(p *domain.Progress, now time.Time) effect {
		if p.Office.Order() == domain.OrderMelchizedek {
			p.Office = domain.OfficeDeacon
		} else {
			p.Office = domain.OfficeElder
		}
		return applied()
	})
}
