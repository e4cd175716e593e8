package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// KeyPrefix namespaces every progress key in the store.
const KeyPrefix = "priesthood."

type progressField interface {
	key() string
	encode(p *domain.Progress) ([]byte, error)
	decode(p *domain.Progress, raw []byte) error
}

type jsonField[T any] struct {
	name string
	ref  func(p *domain.Progress) *T
}

func (f jsonField[T]) key() string { return KeyPrefix + f.name }

func (f jsonField[T]) encode(p *domain.Progress) ([]byte, error) {
	return json.Marshal(f.ref(p))
}

// decode leaves the field untouched unless raw parses completely.
func (f jsonField[T]) decode(p *domain.Progress, raw []byte) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*f.ref(p) = v
	return nil
}

func field[T any](name string, ref func(p *domain.Progress) *T) progressField {
	return jsonField[T]{name: name, ref: ref}
}

var progressFields = []progressField{
	field("userName", func(p *domain.Progress) *string { return &p.UserName }),
	field("office", func(p *domain.Progress) *domain.Office { return &p.Office }),
	field("starter", func(p *domain.Progress) *domain.DayMark { return &p.Starter }),
	field("mastery", func(p *domain.Progress) *domain.MasteryState { return &p.Mastery }),
	field("reflections", func(p *domain.Progress) *map[domain.Office]map[int]string { return &p.Reflections }),
	field("manualCompleted", func(p *domain.Progress) *domain.DaySet { return &p.ManualCompleted }),
	field("graceDays", func(p *domain.Progress) *map[int]string { return &p.GraceDays }),
	field("phaseStatus", func(p *domain.Progress) *map[domain.PhaseKey]domain.Medal { return &p.PhaseStatus }),
	field("phaseCompletions", func(p *domain.Progress) *map[domain.PhaseKey]bool { return &p.PhaseCompletions }),
	field("badges", func(p *domain.Progress) *[]string { return &p.Badges }),
	field("badgeUnlock", func(p *domain.Progress) **domain.BadgeUnlock { return &p.BadgeUnlock }),
	field("higherUnlocked", func(p *domain.Progress) *bool { return &p.HigherUnlocked }),
	field("lastActiveDate", func(p *domain.Progress) *string { return &p.LastActiveDate }),
	field("lastCompletedDay", func(p *domain.Progress) *int { return &p.LastCompletedDay }),
	field("recoveryShown", func(p *domain.Progress) *string { return &p.RecoveryShown }),
	field("recovery", func(p *domain.Progress) **domain.RecoveryPrompt { return &p.Recovery }),
	field("catchUpQueue", func(p *domain.Progress) *[]int { return &p.CatchUpQueue }),
	field("catchUpMode", func(p *domain.Progress) *bool { return &p.CatchUpMode }),
	field("pending", func(p *domain.Progress) **domain.PendingTransition { return &p.Pending }),
	field("habitLog", func(p *domain.Progress) *map[string]domain.HabitDay { return &p.HabitLog }),
}

// ProgressKeys returns every key a saved Progress occupies.
func ProgressKeys() []string {
	keys := make([]string, len(progressFields))
	for i, f := range progressFields {
		keys[i] = f.key()
	}
	return keys
}

// SQLiteProgressRepo stores domain.Progress as one JSON value per field.
type SQLiteProgressRepo struct {
	kv KVStore
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{kv: NewSQLiteKVStore(conn)}
}

func (r *SQLiteProgressRepo) Load(ctx context.Context) (*domain.Progress, []string, error) {
	p := domain.NewProgress()
	var corrupt []string
	for _, f := range progressFields {
		raw, err := r.kv.Get(ctx, f.key())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("loading progress: %w", err)
		}
		if err := f.decode(p, []byte(raw)); err != nil {
			corrupt = append(corrupt, f.key())
		}
	}
	sanitize(p)
	return p, corrupt, nil
}

func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.Progress) error {
	for _, f := range progressFields {
		raw, err := f.encode(p)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.key(), err)
		}
		if err := r.kv.Set(ctx, f.key(), string(raw)); err != nil {
			return fmt.Errorf("saving progress: %w", err)
		}
	}
	return nil
}

// Clear removes every progress key, including ones written by older
// versions.
func (r *SQLiteProgressRepo) Clear(ctx context.Context) error {
	keys, err := r.kv.Keys(ctx, KeyPrefix)
	if err != nil {
		return fmt.Errorf("clearing progress: %w", err)
	}
	for _, k := range keys {
		if err := r.kv.Delete(ctx, k); err != nil {
			return fmt.Errorf("clearing progress: %w", err)
		}
	}
	return nil
}

// sanitize pulls decoded values back inside the domain invariants.
func sanitize(p *domain.Progress) {
	if p.Office != "" && !p.Office.Valid() {
		p.Office = ""
	}

	m := &p.Mastery
	m.CurrentMonth = min(max(m.CurrentMonth, 0), progression.MasteryMonths)
	m.CurrentDay = min(max(m.CurrentDay, 1), progression.DaysInMonth(m.CurrentMonth))
	p.Starter.CompletedDay = max(p.Starter.CompletedDay, 0)

	valid := p.ManualCompleted[:0]
	for _, d := range p.ManualCompleted {
		if progression.ValidDay(d) {
			valid = append(valid, d)
		}
	}
	p.ManualCompleted = valid

	for d := range p.GraceDays {
		if !progression.ValidDay(d) {
			delete(p.GraceDays, d)
		}
	}

	for key := range p.HabitLog {
		if _, err := progression.ParseDateKey(key, time.Local); err != nil {
			delete(p.HabitLog, key)
		}
	}

	p.Normalize()
	for d := range p.GraceDays {
		if p.ManualCompleted.Contains(d) {
			delete(p.GraceDays, d)
		}
	}
}
