package progression

import (
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// WeekHabitDays counts the days of the Sunday-to-Saturday week containing
// today on which every habit was kept.
func WeekHabitDays(log map[string]domain.HabitDay, today time.Time) int {
	y, m, d := today.Date()
	start := time.Date(y, m, d-int(today.Weekday()), 0, 0, 0, 0, today.Location())
	n := 0
	for i := 0; i < 7; i++ {
		if log[DateKey(start.AddDate(0, 0, i))].Complete() {
			n++
		}
	}
	return n
}

// Streak counts consecutive calendar days, ending today, that have at least
// one entry. A day without one breaks the run, today included.
func Streak(written []time.Time, today time.Time) int {
	days := make(map[string]bool, len(written))
	for _, t := range written {
		days[DateKey(t.In(today.Location()))] = true
	}
	y, m, d := today.Date()
	cursor := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	n := 0
	for days[DateKey(cursor)] {
		n++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return n
}
