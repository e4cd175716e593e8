package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/curriculum"
	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/notify"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/alexanderramin/pathkeeper/internal/repository"
	"github.com/google/go-cmp/cmp"
)

// Engine owns the single-user progress aggregate. Every mutation is applied
// to a copy, persisted in one transaction and only then made visible.
type Engine struct {
	mu sync.Mutex

	progress repository.ProgressRepo
	journal  repository.JournalRepo
	uow      db.UnitOfWork
	catalog  curriculum.Catalog
	notifier notify.Notifier
	observer UseCaseObserver
	now      func() time.Time

	state *domain.Progress
}

type Option func(*Engine)

func WithNotifier(n notify.Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func WithObserver(o UseCaseObserver) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithClock overrides the local-time source used for calendar days.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(
	progress repository.ProgressRepo,
	journal repository.JournalRepo,
	uow db.UnitOfWork,
	catalog curriculum.Catalog,
	opts ...Option,
) *Engine {
	e := &Engine{
		progress: progress,
		journal:  journal,
		uow:      uow,
		catalog:  catalog,
		notifier: notify.Noop{},
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	_ app.MissionUseCase   = (*Engine)(nil)
	_ app.PhaseGateUseCase = (*Engine)(nil)
	_ app.RecoveryUseCase  = (*Engine)(nil)
	_ app.JournalUseCase   = (*Engine)(nil)
	_ app.DevToolsUseCase  = (*Engine)(nil)
)

// effect is what a mutation wants persisted besides the new state.
type effect struct {
	outcome app.Outcome
	journal []*domain.JournalEntry
	// wipe deletes every stored progress key before the new state is saved.
	wipe bool
}

func applied(events ...app.Event) effect {
	return effect{outcome: app.Applied(events...)}
}

func rejected(reason app.RejectReason) effect {
	return effect{outcome: app.Rejected(reason)}
}

// today is the local calendar-day key.
func (e *Engine) today() string {
	return progression.DateKey(e.now())
}

// Load reads the stored state, replacing anything cached.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.reloadLocked(ctx)
	return err
}

func (e *Engine) reloadLocked(ctx context.Context) (*domain.Progress, error) {
	startedAt := time.Now()
	p, corrupt, err := e.progress.Load(ctx)
	e.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "load-progress",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"corrupt_keys": len(corrupt), "corrupt": corrupt},
	})
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	e.state = p
	return p, nil
}

func (e *Engine) currentLocked(ctx context.Context) (*domain.Progress, error) {
	if e.state != nil {
		return e.state, nil
	}
	return e.reloadLocked(ctx)
}

// view runs fn against the current state. A store failure degrades to the
// initial state rather than failing a read.
func (e *Engine) view(ctx context.Context, fn func(p *domain.Progress, today string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, err := e.currentLocked(ctx)
	if err != nil {
		p = domain.NewProgress()
	}
	fn(p, e.today())
}

// mutate applies fn to a copy of the state and commits it.
func (e *Engine) mutate(ctx context.Context, name string, fn func(p *domain.Progress, now time.Time) effect) (out app.Outcome, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["status"] = string(out.Status)
		if out.Reason != "" {
			fields["reason"] = string(out.Reason)
		}
		fields["active_day"] = out.ActiveDay
		e.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	cur, err := e.currentLocked(ctx)
	if err != nil {
		return app.Outcome{}, err
	}

	now := e.now()
	today := progression.DateKey(now)
	next := cur.Clone()
	eff := fn(next, now)
	if !eff.outcome.OK() {
		out = eff.outcome
		out.ActiveDay = activeDay(cur, today)
		return out, nil
	}

	err = e.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txJournal := repository.NewSQLiteJournalRepo(tx)

		if eff.wipe {
			if err := txProgress.Clear(ctx); err != nil {
				return err
			}
		}
		if err := txProgress.Save(ctx, next); err != nil {
			return err
		}
		for _, entry := range eff.journal {
			if err := txJournal.Append(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return app.Outcome{}, fmt.Errorf("%s: %w", name, err)
	}
	e.state = next
	fields["journal_entries"] = len(eff.journal)

	if nerr := e.notifier.Notify(ctx, completedToday(next, today), today); nerr != nil {
		fields["notify_error"] = nerr.Error()
	}

	out = eff.outcome
	out.ActiveDay = activeDay(next, today)
	return out, nil
}

// Refresh reloads state written by another process and reports whether it
// differs from what was cached.
func (e *Engine) Refresh(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	before := e.state
	after, err := e.reloadLocked(ctx)
	if err != nil {
		return false, err
	}
	return before == nil || !cmp.Equal(before, after), nil
}

func (e *Engine) ListJournal(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	entries, err := e.journal.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing journal: %w", err)
	}
	return entries, nil
}
