package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

const gridColumns = 7

// FormatPath renders the 120 days as a grid grouped by month.
func FormatPath(views []app.DayView, order domain.PriesthoodOrder) string {
	var b strings.Builder
	month := -1
	col := 0
	for _, v := range views {
		if v.Month != month {
			if month >= 0 {
				b.WriteString("\n\n")
			}
			month = v.Month
			col = 0
			label := progression.MonthLabel(month, order)
			if month > 0 {
				label = fmt.Sprintf("Month %d · %s", month, label)
			}
			b.WriteString(StyleHeader.Render(label) + "\n")
		} else if col%gridColumns == 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s  ", DayStyle(v.State).Render(fmt.Sprintf("%3d", v.Day)), DayGlyph(v.State)))
		col++
	}
	b.WriteString("\n\n" + Legend())
	return RenderBox("The Path", b.String())
}

// Legend explains the grid glyphs.
func Legend() string {
	states := []progression.DayState{
		progression.DayCompleted, progression.DayExcused, progression.DayMissed,
		progression.DayCurrent, progression.DayLocked,
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = DayGlyph(s) + " " + Dim(string(s))
	}
	return strings.Join(parts, "  ")
}

// FormatPathTable lists days in [from, to] with their titles.
func FormatPathTable(views []app.DayView, from, to int) string {
	headers := []string{"DAY", "MONTH", "STATE", "TITLE", "NOTE"}
	var rows [][]string
	for _, v := range views {
		if v.Day < from || v.Day > to {
			continue
		}
		month := "Starter"
		if v.Month > 0 {
			month = fmt.Sprintf("M%d·D%d", v.Month, v.DayInMonth)
		}
		note := ""
		switch {
		case v.HasReflection:
			note = "reflection"
		case v.GraceDate != "":
			note = "excused " + v.GraceDate
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", v.Day),
			Dim(month),
			DayStateLabel(v.State),
			Truncate(v.Title, 40),
			Dim(note),
		})
	}
	if len(rows) == 0 {
		return Dim("No days in range.") + "\n"
	}
	return RenderTable(headers, rows)
}

// FormatStatus renders the progress overview: medals, badges and counts.
func FormatStatus(s app.Snapshot, streak int) string {
	if !s.HasOffice() {
		return RenderBox("Status", Dim("No office selected."))
	}
	var b strings.Builder
	b.WriteString(OfficePill(s.Office) + Dim("  ·  ") + StyleFg.Render(s.DisplayName) + "\n\n")

	b.WriteString(fmt.Sprintf("%-10s %s\n", "Active", StyleBlue.Render(DayRef(s.ActiveDay))))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "By hand", RenderCounter(len(s.ManualCompleted), progression.TotalDays, 20)))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Excused", StyleYellow.Render(fmt.Sprintf("%d", len(s.GraceDays)))))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Habits", StyleFg.Render(fmt.Sprintf("%d/7", s.WeekHabitDays))+Dim(" days this week")))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Journal", FormatStreak(streak)))
	b.WriteString("\n")

	headers := []string{"PHASE", "DAYS", "MEDAL"}
	rows := make([][]string, 0, len(domain.PhaseKeys))
	for _, k := range domain.PhaseKeys {
		r, _ := progression.PhaseByKey(k)
		rows = append(rows, []string{
			progression.PhaseLabel(k),
			Dim(fmt.Sprintf("%d-%d", r.Start, r.End)),
			MedalIndicator(s.Medals[k]),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n" + Header("Badges") + "\n")
	if len(s.Badges) == 0 {
		b.WriteString(Dim("None yet") + "\n")
	}
	for _, badge := range s.Badges {
		b.WriteString(StyleYellow.Render("★ ") + badge + "\n")
	}

	if s.Pending != nil {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("◆ %s transition waiting (%s)",
			progression.PhaseLabel(s.Pending.Phase), s.Pending.Kind)) + "\n")
	}
	return RenderBox("Status", b.String())
}
