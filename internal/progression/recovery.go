package progression

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// GapDays counts whole calendar days between lastActive and today, both taken
// at local midnight. Computed on the calendar date so DST shifts never
// produce a short day.
func GapDays(today, lastActive time.Time) int {
	ty, tm, td := today.Date()
	ly, lm, ld := lastActive.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}

// ClassifyGap applies the recovery policy table; the first match wins.
func ClassifyGap(gap int) domain.RecoveryKind {
	switch {
	case gap <= 0:
		return domain.RecoveryNone
	case gap <= 2:
		return domain.RecoveryToast
	case gap <= 6:
		return domain.RecoveryCatchUp
	default:
		return domain.RecoveryRecenter
	}
}

// TargetDay is where a resumed user lands after gap days away.
func TargetDay(lastCompleted, gap int) int {
	return min(TotalDays, lastCompleted+gap)
}

// MissedDays lists the days before activeDay that were never completed by
// hand, ascending.
func MissedDays(activeDay int, manual domain.DaySet) []int {
	missed := make([]int, 0)
	for day := 1; day < activeDay && day <= TotalDays; day++ {
		if !manual.Contains(day) {
			missed = append(missed, day)
		}
	}
	return missed
}

// SkippedDays lists the days a resume jump passes over: from activeDay up to
// the day before target, minus anything completed by hand.
func SkippedDays(activeDay, target int, manual domain.DaySet) []int {
	skipped := make([]int, 0)
	for day := max(1, activeDay); day < target && day <= TotalDays; day++ {
		if !manual.Contains(day) {
			skipped = append(skipped, day)
		}
	}
	return skipped
}

// DisplayName falls back to "Brother" when no name was entered.
func DisplayName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return "Brother"
}

func WelcomeMessage(name string) string {
	return fmt.Sprintf("Welcome back, %s. We missed you yesterday.", DisplayName(name))
}
