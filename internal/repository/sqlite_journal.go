package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

const journalColumns = `id, kind, office, day, prompt, response, responses, created_at`

func (r *SQLiteJournalRepo) Append(ctx context.Context, e *domain.JournalEntry) error {
	var responses any
	if len(e.Responses) > 0 {
		raw, err := json.Marshal(e.Responses)
		if err != nil {
			return fmt.Errorf("encoding journal responses: %w", err)
		}
		responses = string(raw)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO journal_entries (`+journalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		string(e.Kind),
		string(e.Office),
		e.Day,
		e.Prompt,
		e.Response,
		responses,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE id = ?`, id)
	e, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	return e, nil
}

// ListRecent returns at most limit entries, newest first. A non-positive
// limit returns everything.
func (r *SQLiteJournalRepo) ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()
	return scanJournals(rows)
}

func (r *SQLiteJournalRepo) ListByDay(ctx context.Context, day int) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries
		 WHERE day = ? ORDER BY created_at, rowid`, day)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries by day: %w", err)
	}
	defer rows.Close()
	return scanJournals(rows)
}

func (r *SQLiteJournalRepo) WrittenAt(ctx context.Context, kind domain.JournalKind) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT created_at FROM journal_entries WHERE kind = ? ORDER BY created_at DESC`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing journal dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var createdAt string
		if err := rows.Scan(&createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal date: %w", err)
		}
		out = append(out, parseTime(createdAt))
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournal(row rowScanner) (*domain.JournalEntry, error) {
	var (
		e         domain.JournalEntry
		kind      string
		office    string
		responses sql.NullString
		createdAt string
	)
	if err := row.Scan(&e.ID, &kind, &office, &e.Day, &e.Prompt, &e.Response, &responses, &createdAt); err != nil {
		return nil, err
	}
	e.Kind = domain.JournalKind(kind)
	e.Office = domain.Office(office)
	e.CreatedAt = parseTime(createdAt)
	if raw := stringOrEmpty(responses); raw != "" {
		if err := json.Unmarshal([]byte(raw), &e.Responses); err != nil {
			return nil, fmt.Errorf("decoding journal responses for %s: %w", e.ID, err)
		}
	}
	return &e, nil
}

func scanJournals(rows *sql.Rows) ([]*domain.JournalEntry, error) {
	var out []*domain.JournalEntry
	for rows.Next() {
		e, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
