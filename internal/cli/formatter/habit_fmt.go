package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// FormatHabits renders today's tracker and how many days this week had
// every habit kept.
func FormatHabits(day domain.HabitDay, weekDays int) string {
	var b strings.Builder
	for _, h := range domain.Habits {
		b.WriteString(habitMark(day, h) + "\n")
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%d / %d completed", day.Count(), len(domain.Habits))) + "\n")
	b.WriteString(Dim("This week: ") + StyleFg.Render(fmt.Sprintf("%d/7", weekDays)) + Dim(" days with every habit"))
	return RenderBox("Daily Habit Tracker", b.String())
}

// HabitLine is the one-line tracker shown under today's mission.
func HabitLine(day domain.HabitDay) string {
	parts := make([]string, len(domain.Habits))
	for i, h := range domain.Habits {
		parts[i] = habitMark(day, h)
	}
	return StyleHeader.Render("Habits") + "  " + strings.Join(parts, "  ")
}

func habitMark(day domain.HabitDay, h domain.Habit) string {
	if day.Done(h) {
		return StyleGreen.Render("✔ " + h.Label())
	}
	return StyleDim.Render("○ " + h.Label())
}

// FormatStreak renders the daily reflection streak.
func FormatStreak(days int) string {
	switch days {
	case 0:
		return Dim("No reflection streak yet.")
	case 1:
		return StyleYellow.Render("Streak: 1 day")
	}
	return StyleYellow.Render(fmt.Sprintf("Streak: %d days", days))
}
