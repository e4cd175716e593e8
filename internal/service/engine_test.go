package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/pathkeeper/internal/curriculum"
	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/repository"
	"github.com/alexanderramin/pathkeeper/internal/testutil"
	"github.com/stretchr/testify/require"
)

type engineHarness struct {
	engine   *Engine
	db       *sql.DB
	clock    *testutil.Clock
	notifier *recordingNotifier
	observer *recordingObserver
}

type recordingNotifier struct {
	mu       sync.Mutex
	statuses []bool
	dates    []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, completed bool, dateKey string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statuses = append(n.statuses, completed)
	n.dates = append(n.dates, dateKey)
	return n.err
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) find(name string) (UseCaseEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Name == name {
			return o.events[i], true
		}
	}
	return UseCaseEvent{}, false
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	seed *domain.Progress
	uow  func(*sql.DB) db.UnitOfWork
}

// seeded stores p before the engine reads anything.
func seeded(p *domain.Progress) harnessOption {
	return func(c *harnessConfig) { c.seed = p }
}

func withUoW(fn func(*sql.DB) db.UnitOfWork) harnessOption {
	return func(c *harnessConfig) { c.uow = fn }
}

// newHarness builds an engine over an in-memory database with a clock
// starting on 2026-02-02.
func newHarness(t *testing.T, opts ...harnessOption) *engineHarness {
	t.Helper()
	cfg := harnessConfig{uow: func(d *sql.DB) db.UnitOfWork { return db.NewSQLiteUnitOfWork(d) }}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := testutil.NewTestDB(t)
	if cfg.seed != nil {
		require.NoError(t, repository.NewSQLiteProgressRepo(conn).Save(context.Background(), cfg.seed))
	}

	catalog, err := curriculum.Load("")
	require.NoError(t, err)

	h := &engineHarness{
		db:       conn,
		clock:    testutil.NewClock(2026, 2, 2),
		notifier: &recordingNotifier{},
		observer: &recordingObserver{},
	}
	h.engine = NewEngine(
		repository.NewSQLiteProgressRepo(conn),
		repository.NewSQLiteJournalRepo(conn),
		cfg.uow(conn),
		catalog,
		WithClock(h.clock.Now),
		WithNotifier(h.notifier),
		WithObserver(h.observer),
	)
	return h
}

// dateKey returns the calendar key offset days from the harness clock.
func (h *engineHarness) dateKey(offset int) string {
	return h.clock.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func (h *engineHarness) stored(t *testing.T) *domain.Progress {
	t.Helper()
	p, _, err := repository.NewSQLiteProgressRepo(h.db).Load(context.Background())
	require.NoError(t, err)
	return p
}

var errInjected = errors.New("injected failure")
