package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// UnitOfWork manages transactional boundaries. The callback receives a DBTX
// backed by a *sql.Tx; callers build tx-scoped stores from it so a mission
// completion and its journal entries land together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

const defaultBusyRetry = 10 * time.Second

type SQLiteUnitOfWork struct {
	db        *sql.DB
	busyRetry time.Duration
}

type UnitOfWorkOption func(*SQLiteUnitOfWork)

// WithBusyRetry bounds how long a transaction is retried while another
// process holds the write lock. Zero disables retrying.
func WithBusyRetry(d time.Duration) UnitOfWorkOption {
	return func(u *SQLiteUnitOfWork) { u.busyRetry = d }
}

func NewSQLiteUnitOfWork(db *sql.DB, opts ...UnitOfWorkOption) *SQLiteUnitOfWork {
	u := &SQLiteUnitOfWork{db: db, busyRetry: defaultBusyRetry}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WithinTx runs fn in a transaction. When the store is locked by another
// pathkeeper process (the path browser and a command running side by side)
// the whole transaction is rerun, so fn must not keep state between calls.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	if u.busyRetry <= 0 {
		return u.runTx(ctx, fn)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxElapsedTime = u.busyRetry
	return backoff.Retry(func() error {
		err := u.runTx(ctx, fn)
		if err != nil && !IsBusy(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

func (u *SQLiteUnitOfWork) runTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback: %v (after: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// IsBusy reports whether err is SQLite refusing a lock held by another
// connection.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
