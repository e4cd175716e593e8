package service

import (
	"context"
	"maps"
	"slices"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/curriculum"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

func (e *Engine) Snapshot(ctx context.Context) app.Snapshot {
	var s app.Snapshot
	e.view(ctx, func(p *domain.Progress, today string) {
		s = app.Snapshot{
			Today:           today,
			UserName:        p.UserName,
			DisplayName:     progression.DisplayName(p.UserName),
			Office:          p.Office,
			Order:           p.Office.Order(),
			Mastery:         p.Mastery,
			Medals:          make(map[domain.PhaseKey]domain.Medal, len(domain.PhaseKeys)),
			Badges:          slices.Clone(p.Badges),
			HigherUnlocked:  p.HigherUnlocked,
			ManualCompleted: slices.Clone(p.ManualCompleted),
			GraceDays:       maps.Clone(p.GraceDays),
			CatchUpQueue:    slices.Clone(p.CatchUpQueue),
			CatchUpMode:     p.CatchUpMode,
			CompletedToday:  completedToday(p, today),

			LastCompletedDay: p.LastCompletedDay,
			HabitsToday:      p.HabitLog[today],
			WeekHabitDays:    progression.WeekHabitDays(p.HabitLog, e.now()),
		}
		for _, k := range domain.PhaseKeys {
			s.Medals[k] = progression.MedalFor(p, k)
		}
		if p.BadgeUnlock != nil {
			b := *p.BadgeUnlock
			s.BadgeUnlock = &b
		}
		if p.Pending != nil {
			t := *p.Pending
			s.Pending = &t
		}
		if p.Recovery != nil {
			r := *p.Recovery
			s.Recovery = &r
		}

		s.ActiveDay = activeDay(p, today)
		if s.ActiveDay == 0 {
			return
		}
		pos, _ := progression.MonthAndDayOf(s.ActiveDay)
		s.Month, s.DayInMonth = pos.Month, pos.Day
		s.MonthLabel = progression.MonthLabel(pos.Month, s.Order)
		s.Mission = curriculum.Resolve(e.catalog, p.Office, s.ActiveDay)
		s.Reflection = p.Reflections[p.Office][s.ActiveDay]
	})
	return s
}

// DayViews derives the state of every day on the path. Nothing here is
// stored; it is recomputed from the manual set, grace days and active day.
func (e *Engine) DayViews(ctx context.Context) []app.DayView {
	var views []app.DayView
	e.view(ctx, func(p *domain.Progress, today string) {
		active := activeDay(p, today)
		views = make([]app.DayView, 0, progression.TotalDays)
		for day := 1; day <= progression.TotalDays; day++ {
			pos, _ := progression.MonthAndDayOf(day)
			phase, _ := progression.PhaseOf(day)
			_, hasReflection := p.Reflections[p.Office][day]
			views = append(views, app.DayView{
				Day:           day,
				Month:         pos.Month,
				DayInMonth:    pos.Day,
				Phase:         phase.Key,
				State:         progression.StateOf(day, active, p.ManualCompleted, p.GraceDays),
				Title:         curriculum.Resolve(e.catalog, p.Office, day).Title,
				HasReflection: hasReflection,
				GraceDate:     p.GraceDays[day],
			})
		}
	})
	return views
}
