package service

import (
	"context"
	"slices"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// Evaluate checks, at most once per calendar day, whether the user is
// returning after an absence. It returns the prompt to show, or nil.
func (e *Engine) Evaluate(ctx context.Context) (*domain.RecoveryPrompt, error) {
	var prompt *domain.RecoveryPrompt
	_, err := e.mutate(ctx, "evaluate-recovery", func(p *domain.Progress, now time.Time) effect {
		today := progression.DateKey(now)
		if p.Office == "" || p.LastActiveDate == "" {
			return rejected(app.RejectNothingToEvaluate)
		}
		if p.RecoveryShown == today {
			if p.Recovery != nil {
				r := *p.Recovery
				prompt = &r
			}
			return rejected(app.RejectRecoveryNotDue)
		}
		last, err := progression.ParseDateKey(p.LastActiveDate, now.Location())
		if err != nil {
			return rejected(app.RejectNothingToEvaluate)
		}
		gap := progression.GapDays(now, last)
		kind := progression.ClassifyGap(gap)
		if kind == domain.RecoveryNone {
			return rejected(app.RejectRecoveryNotDue)
		}

		active := activeDay(p, today)
		r := &domain.RecoveryPrompt{
			Kind:          kind,
			MissedDays:    progression.MissedDays(active, p.ManualCompleted),
			TargetDay:     progression.TargetDay(p.LastCompletedDay, gap),
			LastCompleted: p.LastCompletedDay,
			GapDays:       gap,
		}
		p.RecoveryShown = today
		switch kind {
		case domain.RecoveryToast:
			r.Message = progression.WelcomeMessage(p.UserName)
			p.Recovery = nil
		case domain.RecoveryCatchUp:
			r.Message = CatchUpTitle(p.UserName)
			p.Recovery = r
		default:
			r.Message = RecenterTitle
			p.Recovery = r
		}
		prompt = r
		return applied(app.Event{Kind: app.EventRecovery, Recovery: r})
	})
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

func openPrompt(p *domain.Progress, kind domain.RecoveryKind) (*domain.RecoveryPrompt, app.RejectReason) {
	if p.Recovery == nil {
		return nil, app.RejectNoPrompt
	}
	if p.Recovery.Kind != kind {
		return nil, app.RejectWrongPrompt
	}
	return p.Recovery, ""
}

// ChooseCatchUp queues every missed day for reflection, oldest first.
func (e *Engine) ChooseCatchUp(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "choose-catch-up", func(p *domain.Progress, now time.Time) effect {
		if _, reason := openPrompt(p, domain.RecoveryCatchUp); reason != "" {
			return rejected(reason)
		}
		queue := progression.MissedDays(activeDay(p, progression.DateKey(now)), p.ManualCompleted)
		p.CatchUpQueue = queue
		p.CatchUpMode = len(queue) > 0
		p.Recovery = nil
		return applied()
	})
}

func (e *Engine) ChooseResume(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "choose-resume", func(p *domain.Progress, now time.Time) effect {
		r, reason := openPrompt(p, domain.RecoveryCatchUp)
		if r == nil {
			return rejected(reason)
		}
		resumeAt(p, progression.DateKey(now), r.TargetDay)
		return applied()
	})
}

func (e *Engine) ChooseRestart(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "choose-restart", func(p *domain.Progress, now time.Time) effect {
		r, reason := openPrompt(p, domain.RecoveryRecenter)
		if r == nil {
			return rejected(reason)
		}
		resumeAt(p, progression.DateKey(now), r.TargetDay)
		return applied()
	})
}

// resumeAt jumps to target, excusing everything left behind with today's
// date, and records target-1 as the last completed day.
func resumeAt(p *domain.Progress, today string, target int) {
	target = min(max(target, 1), progression.TotalDays)
	active := activeDay(p, today)
	excused := progression.MissedDays(active, p.ManualCompleted)
	excused = append(excused, progression.SkippedDays(active, target, p.ManualCompleted)...)

	setOverallDay(p, target)
	for _, d := range excused {
		if d < target {
			p.GraceDays[d] = today
		}
	}
	p.LastCompletedDay = target - 1
	p.LastActiveDate = today
	p.Recovery = nil
	p.CatchUpQueue = nil
	p.CatchUpMode = false
}

func (e *Engine) Dismiss(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "dismiss-recovery", func(p *domain.Progress, now time.Time) effect {
		if p.Recovery == nil {
			return rejected(app.RejectNoPrompt)
		}
		p.Recovery = nil
		return applied()
	})
}

// NextCatchUp returns the oldest day still queued for catch-up.
func (e *Engine) NextCatchUp(ctx context.Context) (int, bool) {
	var (
		day int
		ok  bool
	)
	e.view(ctx, func(p *domain.Progress, _ string) {
		if !p.CatchUpMode || len(p.CatchUpQueue) == 0 {
			return
		}
		day, ok = slices.Min(p.CatchUpQueue), true
	})
	return day, ok
}
