package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
)

func pendingOf(p *domain.Progress, kind domain.TransitionKind) (*domain.PendingTransition, app.RejectReason) {
	if p.Pending == nil {
		return nil, app.RejectNoTransition
	}
	if kind != "" && p.Pending.Kind != kind {
		return nil, app.RejectWrongTransition
	}
	return p.Pending, ""
}

// Acknowledge closes a celebrated phase and performs the parked advance.
func (e *Engine) Acknowledge(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "acknowledge-phase", func(p *domain.Progress, now time.Time) effect {
		t, reason := pendingOf(p, domain.TransitionCelebration)
		if t == nil {
			return rejected(reason)
		}
		p.PhaseCompletions[t.Phase] = true
		return applied(runDeferredAdvance(p, t)...)
	})
}

// ResolveWithSilver accepts a phase with excused days and moves on.
func (e *Engine) ResolveWithSilver(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "resolve-with-silver", func(p *domain.Progress, now time.Time) effect {
		t, reason := pendingOf(p, domain.TransitionReview)
		if t == nil {
			return rejected(reason)
		}
		p.PhaseStatus[t.Phase] = domain.MedalSilver
		p.PhaseCompletions[t.Phase] = true
		return applied(runDeferredAdvance(p, t)...)
	})
}

// ReviewFirst sends the user back to the first excused day of the phase.
func (e *Engine) ReviewFirst(ctx context.Context) (app.Outcome, error) {
	return e.mutate(ctx, "review-first", func(p *domain.Progress, now time.Time) effect {
		t, reason := pendingOf(p, domain.TransitionReview)
		if t == nil {
			return rejected(reason)
		}
		target := t.EndDay
		if len(t.ExcusedDays) > 0 {
			target = t.ExcusedDays[0]
		}
		setOverallDay(p, target)
		return applied()
	})
}
