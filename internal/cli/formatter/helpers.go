package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// bodyWidth is the wrap width for prose inside boxes.
const bodyWidth = 64

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(title, content, ColorDim)
}

// RenderAccentBox is RenderBox with a colored border, used for modals that
// need an answer.
func RenderAccentBox(title string, content string, border lipgloss.Color) string {
	return renderBox(title, content, border)
}

func renderBox(title, content string, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Wrap soft-wraps prose to the box body width.
func Wrap(text string) string {
	return lipgloss.NewStyle().Width(bodyWidth).Render(text)
}

// HumanDateFrom returns "Today", "Yesterday" or a short absolute date.
func HumanDateFrom(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestampFrom returns a relative timestamp for recent times and a
// date otherwise.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDateFrom(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDateFrom(t, now)
	}
}

// OfficePill renders the office with its priesthood order, e.g.
// "● Deacon · Aaronic".
func OfficePill(o domain.Office) string {
	if o == "" {
		return StyleDim.Render("○ No office")
	}
	style := StyleGreen
	if o.Order() == domain.OrderMelchizedek {
		style = StylePurple
	}
	return style.Render("● "+o.Label()) + Dim(" · "+string(o.Order()))
}

// Truncate shortens s to n visible runes with an ellipsis.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// DayRef renders an absolute day as "Day 12".
func DayRef(day int) string {
	return fmt.Sprintf("Day %d", day)
}

// DayList renders days as "Day 3, 4 and 9".
func DayList(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%d", d)
	}
	label := "Day "
	if len(days) > 1 {
		label = "Days "
	}
	if len(parts) == 1 {
		return label + parts[0]
	}
	return label + strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
