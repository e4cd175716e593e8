package app

import (
	"context"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// OfficeChangeMode selects what happens to existing progress when the
// office changes.
type OfficeChangeMode string

const (
	OfficeChangeContinue OfficeChangeMode = "continue"
	OfficeChangeReset    OfficeChangeMode = "reset"
)

type MissionUseCase interface {
	SelectOffice(ctx context.Context, office domain.Office, mode OfficeChangeMode) (Outcome, error)
	SetUserName(ctx context.Context, name string) (Outcome, error)
	ActiveDay(ctx context.Context) (int, bool)
	ActiveMission(ctx context.Context) (domain.Mission, bool)
	IsCompletedToday(ctx context.Context) bool
	CompleteMission(ctx context.Context) (Outcome, error)
	SaveReflection(ctx context.Context, day int, text string) (Outcome, error)
	SetOverallDay(ctx context.Context, day int) (Outcome, error)
	CompleteWeeklyReflection(ctx context.Context, responses map[string]string) (Outcome, error)
	Reset(ctx context.Context) (Outcome, error)
	Snapshot(ctx context.Context) Snapshot
	DayViews(ctx context.Context) []DayView
	Reflection(ctx context.Context, day int) string
	ClearBadgeUnlock(ctx context.Context) (Outcome, error)
	ClearHigherUnlocked(ctx context.Context) (Outcome, error)
	Refresh(ctx context.Context) (bool, error)
	SetHabit(ctx context.Context, habit domain.Habit, done bool) (Outcome, error)
}

// PhaseGateUseCase resolves a pending phase transition.
type PhaseGateUseCase interface {
	Acknowledge(ctx context.Context) (Outcome, error)
	ResolveWithSilver(ctx context.Context) (Outcome, error)
	ReviewFirst(ctx context.Context) (Outcome, error)
}

type RecoveryUseCase interface {
	Evaluate(ctx context.Context) (*domain.RecoveryPrompt, error)
	ChooseCatchUp(ctx context.Context) (Outcome, error)
	ChooseResume(ctx context.Context) (Outcome, error)
	ChooseRestart(ctx context.Context) (Outcome, error)
	Dismiss(ctx context.Context) (Outcome, error)
	NextCatchUp(ctx context.Context) (int, bool)
}

type JournalUseCase interface {
	ListJournal(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	Streak(ctx context.Context) (int, error)
}

// DevToolsUseCase exposes the developer shortcuts.
type DevToolsUseCase interface {
	DebugAdvanceDay(ctx context.Context) (Outcome, error)
	DebugCompleteMonth(ctx context.Context) (Outcome, error)
	DebugToggleOrder(ctx context.Context) (Outcome, error)
}
