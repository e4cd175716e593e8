package service

import (
	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// activeDay is the absolute day the user is working on, or 0 with no office.
func activeDay(p *domain.Progress, today string) int {
	if p.Office == "" {
		return 0
	}
	if p.Mastery.IsStarterFinished {
		return progression.AbsoluteDayOf(p.Mastery.CurrentMonth, p.Mastery.CurrentDay)
	}
	next := 1
	if p.Starter.CompletedDay > 0 {
		next = p.Starter.CompletedDay
		if p.Starter.CompletedDate != today {
			next++
		}
	}
	return min(progression.StarterDays, next)
}

func completedToday(p *domain.Progress, today string) bool {
	return p.Starter.CompletedDate != "" && p.Starter.CompletedDate == today
}

func recordActivity(p *domain.Progress, today string, day int) {
	p.LastActiveDate = today
	p.LastCompletedDay = day
}

// markManual records a hand-written completion of day. When that closes
// out its whole gated phase by hand, the phase is gold. The terminal phase
// only completes at the end of month 4.
func markManual(p *domain.Progress, day int) {
	p.ManualCompleted.Add(day)
	delete(p.GraceDays, day)

	r, ok := progression.GatedPhaseOf(day)
	if !ok {
		return
	}
	if progression.PhaseMetrics(r, p.ManualCompleted, p.GraceDays).FullyManual() {
		p.PhaseStatus[r.Key] = domain.MedalGold
		p.PhaseCompletions[r.Key] = true
	}
}

func finishStarter(p *domain.Progress) app.Event {
	p.Mastery.IsStarterFinished = true
	p.Mastery.CurrentMonth = 1
	p.Mastery.CurrentDay = 1
	p.Starter = domain.DayMark{}
	return app.Event{Kind: app.EventStarterFinished, Month: 1}
}

// advanceMastery moves past the current mastery day, awarding the month-2
// badge and closing the path at the end of month 4.
func advanceMastery(p *domain.Progress, dateKey string, completedDayValue int) []app.Event {
	var events []app.Event
	m := &p.Mastery
	last := progression.DaysInMonth(m.CurrentMonth)

	if m.CurrentMonth == 2 && m.CurrentDay == last {
		badge := progression.Month2Badge(p.Office.Order())
		if p.AwardBadge(badge) {
			unlock := &domain.BadgeUnlock{Title: badge, Month: 2, Date: dateKey}
			p.BadgeUnlock = unlock
			events = append(events, app.Event{Kind: app.EventBadgeUnlocked, Badge: unlock, Month: 2})
		}
		m.Month2ReflectionComplete = true
	}

	switch {
	case m.CurrentMonth >= progression.MasteryMonths && m.CurrentDay >= last:
		// Day 120 holds.
		m.CurrentDay = last
		if !m.MasteryComplete {
			events = append(events, app.Event{Kind: app.EventMasteryComplete, Month: m.CurrentMonth})
		}
		p.PhaseCompletions[domain.Phase5] = true
		m.MasteryComplete = true
	case m.CurrentDay >= last:
		m.CurrentMonth++
		m.CurrentDay = 1
		events = append(events, app.Event{Kind: app.EventMonthAdvanced, Month: m.CurrentMonth})
	default:
		m.CurrentDay++
	}

	p.Starter = domain.DayMark{CompletedDay: completedDayValue, CompletedDate: dateKey}
	return events
}

// setOverallDay repositions the user on an absolute day. The landing day is
// open: its predecessor counts as completed, with no date.
func setOverallDay(p *domain.Progress, day int) {
	if day <= progression.StarterDays {
		p.Mastery.IsStarterFinished = false
		p.Mastery.CurrentMonth = 0
		p.Mastery.CurrentDay = 1
		p.Mastery.Month2ReflectionComplete = false
		p.Starter = domain.DayMark{CompletedDay: max(0, day-1)}
	} else {
		pos, _ := progression.MonthAndDayOf(day)
		p.Mastery.IsStarterFinished = true
		p.Mastery.CurrentMonth = pos.Month
		p.Mastery.CurrentDay = pos.Day
		p.Mastery.Month2ReflectionComplete = p.Mastery.Month2ReflectionComplete || day > 63
		p.Starter = domain.DayMark{CompletedDay: pos.Day - 1}
	}
	p.Pending = nil
}

// raiseGate stores the pending transition for phase range r and returns the
// event to surface.
func raiseGate(p *domain.Progress, r progression.PhaseRange, advance domain.AdvanceKind, dateKey string, completedDayValue int) app.Event {
	m := progression.PhaseMetrics(r, p.ManualCompleted, p.GraceDays)
	kind := domain.TransitionCelebration
	eventKind := app.EventCelebration
	if progression.EvaluateGate(m) == progression.GateReview {
		kind = domain.TransitionReview
		eventKind = app.EventReview
	}
	pending := &domain.PendingTransition{
		Kind:              kind,
		Phase:             r.Key,
		EndDay:            r.End,
		Total:             m.Total,
		ManualCount:       m.ManualCount,
		ExcusedDays:       m.ExcusedDays,
		Advance:           advance,
		DateKey:           dateKey,
		CompletedDayValue: completedDayValue,
	}
	p.Pending = pending
	t := *pending
	return app.Event{Kind: eventKind, Transition: &t}
}

// runDeferredAdvance performs the advancement that was parked behind the
// pending transition.
func runDeferredAdvance(p *domain.Progress, t *domain.PendingTransition) []app.Event {
	p.Pending = nil
	if t.Advance == domain.AdvanceStarter {
		return []app.Event{finishStarter(p)}
	}
	return advanceMastery(p, t.DateKey, t.CompletedDayValue)
}
