package progression

import "github.com/alexanderramin/pathkeeper/internal/domain"

// DayState is the derived, display-only status of a day.
type DayState string

const (
	DayLocked    DayState = "locked"
	DayCurrent   DayState = "current"
	DayCompleted DayState = "completed"
	DayExcused   DayState = "excused"
	DayMissed    DayState = "missed"
)

// StateOf classifies day relative to activeDay. Manual completion wins over
// everything; the active day is current even if it was excused earlier.
func StateOf(day, activeDay int, manual domain.DaySet, grace map[int]string) DayState {
	if manual.Contains(day) {
		return DayCompleted
	}
	if day == activeDay {
		return DayCurrent
	}
	if _, ok := grace[day]; ok {
		return DayExcused
	}
	if day > activeDay {
		return DayLocked
	}
	return DayMissed
}
