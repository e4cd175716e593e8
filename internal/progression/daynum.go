package progression

import (
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

const (
	StarterDays   = 7
	TotalDays     = 120
	MasteryMonths = 4

	// DateLayout is the local calendar-day key used for every stored date.
	DateLayout = "2006-01-02"
)

var masteryDaysByMonth = map[int]int{1: 28, 2: 28, 3: 28, 4: 29}

type monthBreak struct {
	month, start, end int
}

var monthBreaks = []monthBreak{
	{month: 1, start: 8, end: 35},
	{month: 2, start: 36, end: 63},
	{month: 3, start: 64, end: 91},
	{month: 4, start: 92, end: 120},
}

// Position locates an absolute day. Month 0 is the Starter Week.
type Position struct {
	Month int
	Day   int
}

// DaysInMonth returns the length of a mastery month. Unknown months fall
// back to 28 days.
func DaysInMonth(month int) int {
	if n, ok := masteryDaysByMonth[month]; ok {
		return n
	}
	return 28
}

// AbsoluteDayOf converts a (month, day-in-month) pair into an absolute day.
// Month 0 (or below) is treated as the Starter Week.
func AbsoluteDayOf(month, dayInMonth int) int {
	if month <= 0 {
		return dayInMonth
	}
	offset := StarterDays
	for m := 1; m < month; m++ {
		offset += DaysInMonth(m)
	}
	return offset + dayInMonth
}

// MonthAndDayOf is the inverse of AbsoluteDayOf. Days outside [1,120]
// return ok=false.
func MonthAndDayOf(absoluteDay int) (Position, bool) {
	if !ValidDay(absoluteDay) {
		return Position{}, false
	}
	if absoluteDay <= StarterDays {
		return Position{Month: 0, Day: absoluteDay}, true
	}
	for _, b := range monthBreaks {
		if absoluteDay >= b.start && absoluteDay <= b.end {
			return Position{Month: b.month, Day: absoluteDay - b.start + 1}, true
		}
	}
	return Position{}, false
}

func ValidDay(day int) bool {
	return day >= 1 && day <= TotalDays
}

// TrackFor resolves which Month 2-4 curriculum variant an office follows.
func TrackFor(office domain.Office) domain.PriesthoodOrder {
	return office.Order()
}

// DateKey formats t as a calendar-day key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a calendar-day key in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, key, loc)
}
