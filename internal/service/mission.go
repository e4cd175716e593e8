package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/curriculum"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/google/uuid"
)

// DailyPrompt is the journal prompt attached to every daily reflection.
const DailyPrompt = "Record how this assignment shaped your confidence and spiritual focus today."

func (e *Engine) ActiveDay(ctx context.Context) (int, bool) {
	var day int
	e.view(ctx, func(p *domain.Progress, today string) {
		day = activeDay(p, today)
	})
	return day, day > 0
}

// ActiveMission resolves today's mission, falling back to synthesized
// content when the catalog has no entry.
func (e *Engine) ActiveMission(ctx context.Context) (domain.Mission, bool) {
	var (
		mission domain.Mission
		ok      bool
	)
	e.view(ctx, func(p *domain.Progress, today string) {
		day := activeDay(p, today)
		if day == 0 {
			return
		}
		mission, ok = curriculum.Resolve(e.catalog, p.Office, day), true
	})
	return mission, ok
}

func (e *Engine) IsCompletedToday(ctx context.Context) bool {
	var done bool
	e.view(ctx, func(p *domain.Progress, today string) {
		done = completedToday(p, today)
	})
	return done
}

func (e *Engine) Reflection(ctx context.Context, day int) string {
	var text string
	e.view(ctx, func(p *domain.Progress, _ string) {
		text = p.Reflections[p.Office][day]
	})
	return text
}

func (e *Engine) SelectOffice(ctx context.Context, office domain.Office, mode app.OfficeChangeMode) (app.Outcome, error) {
	return e.mutate(ctx, "select-office", func(p *domain.Progress, now time.Time) effect {
		if !office.Valid() {
			return rejected(app.RejectUnknownOffice)
		}
		previous := p.Office
		eff := applied()
		if mode == app.OfficeChangeReset {
			name := p.UserName
			*p = *domain.NewProgress()
			p.UserName = name
			eff.wipe = true
		}
		p.Office = office
		if office == domain.OfficeElder && previous != "" && previous != domain.OfficeElder {
			p.HigherUnlocked = true
			eff.outcome.Events = append(eff.outcome.Events, app.Event{Kind: app.EventHigherUnlocked})
		}
		return eff
	})
}

func (e *Engine) SetUserName(ctx context.Context, name string) (app.Outcome, error) {
	return e.mutate(ctx, "set-user-name", func(p *domain.Progress, now time.Time) effect {
		p.UserName = strings.TrimSpace(name)
		return applied()
	})
}

// CompleteMission marks the active day done for today's calendar date.
func (e *Engine) CompleteMission(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "complete-mission", func(p *domain.Progress, now time.Time) effect {
		today := progression.DateKey(now)
		switch {
		case p.Office == "":
			return rejected(app.RejectNoOffice)
		case p.Pending != nil:
			return rejected(app.RejectTransitionPending)
		case completedToday(p, today):
			return rejected(app.RejectAlreadyCompleted)
		case p.Mastery.MasteryComplete:
			return rejected(app.RejectMasteryComplete)
		}

		day := activeDay(p, today)
		recordActivity(p, today, day)

		if !p.Mastery.IsStarterFinished {
			p.Starter = domain.DayMark{CompletedDay: day, CompletedDate: today}
			return applied()
		}

		completedDayValue := p.Mastery.CurrentDay
		if r, ok := progression.PhaseEndingAt(day); ok && !p.PhaseCompletions[r.Key] {
			return applied(raiseGate(p, r, domain.AdvanceMastery, today, completedDayValue))
		}
		return applied(advanceMastery(p, today, completedDayValue)...)
	})
}

// SaveReflection stores the reflection for day and counts it as a manual
// completion.
func (e *Engine) SaveReflection(ctx context.Context, day int, text string) (app.Outcome, error) {
	return e.mutate(ctx, "save-reflection", func(p *domain.Progress, now time.Time) effect {
		today := progression.DateKey(now)
		text = strings.TrimSpace(text)
		switch {
		case p.Office == "":
			return rejected(app.RejectNoOffice)
		case !progression.ValidDay(day):
			return rejected(app.RejectDayOutOfRange)
		case text == "":
			return rejected(app.RejectBlankReflection)
		}

		if p.Reflections[p.Office] == nil {
			p.Reflections[p.Office] = map[int]string{}
		}
		p.Reflections[p.Office][day] = text
		markManual(p, day)
		p.LastActiveDate = today
		p.LastCompletedDay = max(p.LastCompletedDay, day)

		eff := applied()
		eff.journal = append(eff.journal, &domain.JournalEntry{
			ID:        uuid.New().String(),
			Kind:      domain.JournalDaily,
			Office:    p.Office,
			Day:       day,
			Prompt:    DailyPrompt,
			Response:  text,
			CreatedAt: now,
		})

		if i := slices.Index(p.CatchUpQueue, day); i >= 0 {
			p.CatchUpQueue = slices.Delete(p.CatchUpQueue, i, i+1)
			if len(p.CatchUpQueue) == 0 && p.CatchUpMode {
				p.CatchUpMode = false
				p.CatchUpQueue = nil
				eff.outcome.Events = append(eff.outcome.Events, app.Event{Kind: app.EventCatchUpFinished})
			}
		}

		if day == progression.TotalDays {
			unlock := progression.FinalBadge(len(p.ManualCompleted))
			if p.AwardBadge(unlock.Title) {
				unlock.Date = today
				p.BadgeUnlock = &unlock
				eff.outcome.Events = append(eff.outcome.Events, app.Event{Kind: app.EventBadgeUnlocked, Badge: &unlock, Month: 4})
			}
		}
		return eff
	})
}

// SetOverallDay jumps to an absolute day and discards any pending
// transition.
func (e *Engine) SetOverallDay(ctx context.Context, day int) (app.Outcome, error) {
	return e.mutate(ctx, "set-overall-day", func(p *domain.Progress, now time.Time) effect {
		if p.Office == "" {
			return rejected(app.RejectNoOffice)
		}
		if !progression.ValidDay(day) {
			return rejected(app.RejectDayOutOfRange)
		}
		setOverallDay(p, day)
		return applied()
	})
}

// CompleteWeeklyReflection closes the Starter Week with the Sunday
// reflection wizard's answers, keyed by WeeklyPrompt.Key.
func (e *Engine) CompleteWeeklyReflection(ctx context.Context, responses map[string]string) (app.Outcome, error) {
	return e.mutate(ctx, "complete-weekly-reflection", func(p *domain.Progress, now time.Time) effect {
		today := progression.DateKey(now)
		switch {
		case p.Office == "":
			return rejected(app.RejectNoOffice)
		case p.Mastery.IsStarterFinished:
			return rejected(app.RejectStarterFinished)
		case p.Pending != nil:
			return rejected(app.RejectTransitionPending)
		case activeDay(p, today) != progression.StarterDays:
			return rejected(app.RejectDayOutOfRange)
		}

		answers := make(map[string]string, len(WeeklyPrompts))
		for _, q := range WeeklyPrompts {
			if a := strings.TrimSpace(responses[q.Key]); a != "" {
				answers[q.Key] = a
			}
		}
		if len(answers) == 0 {
			return rejected(app.RejectBlankReflection)
		}

		eff := applied()
		eff.journal = append(eff.journal, &domain.JournalEntry{
			ID:        uuid.New().String(),
			Kind:      domain.JournalWeekly,
			Office:    p.Office,
			Day:       progression.StarterDays,
			Prompt:    WeeklyTitle,
			Responses: answers,
			CreatedAt: now,
		})
		for _, q := range WeeklyPrompts {
			a, ok := answers[q.Key]
			if !ok {
				continue
			}
			eff.journal = append(eff.journal, &domain.JournalEntry{
				ID:        uuid.New().String(),
				Kind:      domain.JournalSunday,
				Office:    p.Office,
				Day:       progression.StarterDays,
				Prompt:    q.Question,
				Response:  a,
				CreatedAt: now,
			})
		}

		// Judge the gate on phase 1 as it stood before this submission.
		phase1Done := p.PhaseCompletions[domain.Phase1]
		markManual(p, progression.StarterDays)
		recordActivity(p, today, progression.StarterDays)
		p.Starter = domain.DayMark{CompletedDay: progression.StarterDays, CompletedDate: today}

		if !phase1Done {
			r, _ := progression.PhaseByKey(domain.Phase1)
			eff.outcome.Events = append(eff.outcome.Events, raiseGate(p, r, domain.AdvanceStarter, today, progression.StarterDays))
			return eff
		}
		eff.outcome.Events = append(eff.outcome.Events, finishStarter(p))
		return eff
	})
}

// Reset wipes all progress. Journal history is kept.
func (e *Engine) Reset(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "reset", func(p *domain.Progress, now time.Time) effect {
		*p = *domain.NewProgress()
		eff := applied()
		eff.wipe = true
		return eff
	})
}

func (e *Engine) ClearBadgeUnlock(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "clear-badge-unlock", func(p *domain.Progress, now time.Time) effect {
		p.BadgeUnlock = nil
		return applied()
	})
}

func (e *Engine) ClearHigherUnlocked(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "clear-higher-unlocked", func(p *domain.Progress, now time.Time) effect {
		p.HigherUnlocked = false
		return applied()
	})
}
