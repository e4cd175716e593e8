package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// KVStore is the string key/value surface the progress document is spread
// across. Values are opaque JSON text.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type ProgressRepo interface {
	// Load returns the stored progress. Fields whose value cannot be decoded
	// fall back to their defaults and are reported in corrupt.
	Load(ctx context.Context) (p *domain.Progress, corrupt []string, err error)
	Save(ctx context.Context, p *domain.Progress) error
	Clear(ctx context.Context) error
}

type JournalRepo interface {
	Append(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	ListByDay(ctx context.Context, day int) ([]*domain.JournalEntry, error)
	// WrittenAt returns the creation times of every entry of kind.
	WrittenAt(ctx context.Context, kind domain.JournalKind) ([]time.Time, error)
}
