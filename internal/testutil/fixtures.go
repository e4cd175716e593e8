package testutil

import (
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/google/uuid"
)

// Progress options
type ProgressOption func(*domain.Progress)

func WithOffice(o domain.Office) ProgressOption {
	return func(p *domain.Progress) {
		p.Office = o
	}
}

func WithUserName(name string) ProgressOption {
	return func(p *domain.Progress) {
		p.UserName = name
	}
}

// WithStarterDay marks day (1-7) of the Starter Week completed on date.
func WithStarterDay(day int, date string) ProgressOption {
	return func(p *domain.Progress) {
		p.Starter = domain.DayMark{CompletedDay: day, CompletedDate: date}
	}
}

// WithMastery places the user on (month, day) with the Starter Week done.
func WithMastery(month, day int) ProgressOption {
	return func(p *domain.Progress) {
		p.Mastery.IsStarterFinished = true
		p.Mastery.CurrentMonth = month
		p.Mastery.CurrentDay = day
		p.Starter = domain.DayMark{CompletedDay: day - 1}
	}
}

func WithManualDays(days ...int) ProgressOption {
	return func(p *domain.Progress) {
		for _, d := range days {
			p.ManualCompleted.Add(d)
		}
	}
}

// WithManualRange marks every day in [start, end] manually completed.
func WithManualRange(start, end int) ProgressOption {
	return func(p *domain.Progress) {
		for d := start; d <= end; d++ {
			p.ManualCompleted.Add(d)
		}
	}
}

func WithGraceDays(date string, days ...int) ProgressOption {
	return func(p *domain.Progress) {
		for _, d := range days {
			p.GraceDays[d] = date
		}
	}
}

func WithPhaseCompleted(key domain.PhaseKey, medal domain.Medal) ProgressOption {
	return func(p *domain.Progress) {
		p.PhaseCompletions[key] = true
		p.PhaseStatus[key] = medal
	}
}

func WithLastActive(date string, lastCompletedDay int) ProgressOption {
	return func(p *domain.Progress) {
		p.LastActiveDate = date
		p.LastCompletedDay = lastCompletedDay
	}
}

func NewTestProgress(opts ...ProgressOption) *domain.Progress {
	p := domain.NewProgress()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Journal options
type JournalOption func(*domain.JournalEntry)

func WithJournalKind(k domain.JournalKind) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Kind = k
	}
}

func WithCreatedAt(t time.Time) JournalOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = t
	}
}

func WithResponses(r map[string]string) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Responses = r
	}
}

func NewTestJournalEntry(day int, response string, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Kind:      domain.JournalDaily,
		Office:    domain.OfficeDeacon,
		Day:       day,
		Prompt:    "Record how this assignment shaped your confidence and spiritual focus today.",
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clock is a settable time source for engine tests.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at local midnight plus 9h on the given date.
func NewClock(year int, month time.Month, day int) *Clock {
	return &Clock{now: time.Date(year, month, day, 9, 0, 0, 0, time.Local)}
}

func (c *Clock) Now() time.Time { return c.now }

// AdvanceDays moves the clock forward by n calendar days.
func (c *Clock) AdvanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

func (c *Clock) Set(t time.Time) { c.now = t }
