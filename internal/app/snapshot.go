package app

import (
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

// Snapshot is the read model views render from.
type Snapshot struct {
	Today       string
	UserName    string
	DisplayName string
	Office      domain.Office
	Order       domain.PriesthoodOrder

	// ActiveDay is 0 when no office is selected.
	ActiveDay      int
	Month          int
	DayInMonth     int
	MonthLabel     string
	Mission        domain.Mission
	CompletedToday bool
	Reflection     string

	// LastCompletedDay is the furthest absolute day recorded as done.
	LastCompletedDay int

	HabitsToday   domain.HabitDay
	WeekHabitDays int

	Mastery         domain.MasteryState
	Medals          map[domain.PhaseKey]domain.Medal
	Badges          []string
	BadgeUnlock     *domain.BadgeUnlock
	HigherUnlocked  bool
	ManualCompleted []int
	GraceDays       map[int]string

	Pending      *domain.PendingTransition
	Recovery     *domain.RecoveryPrompt
	CatchUpQueue []int
	CatchUpMode  bool
}

func (s Snapshot) HasOffice() bool { return s.Office != "" }

// DayView is the derived state of one absolute day on the path.
type DayView struct {
	Day           int
	Month         int
	DayInMonth    int
	Phase         domain.PhaseKey
	State         progression.DayState
	Title         string
	HasReflection bool
	GraceDate     string
}
