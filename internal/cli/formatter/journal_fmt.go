package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// FormatJournal renders journal entries newest first as a table, under the
// daily reflection streak.
func FormatJournal(entries []*domain.JournalEntry, now time.Time, streak int) string {
	if len(entries) == 0 {
		return Dim("No journal entries yet.") + "\n"
	}
	headers := []string{"WHEN", "DAY", "KIND", "OFFICE", "ENTRY"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			HumanTimestampFrom(e.CreatedAt, now),
			fmt.Sprintf("%d", e.Day),
			journalKind(e.Kind),
			Dim(e.Office.Label()),
			Truncate(entryText(e), 48),
		})
	}
	return RenderBox("Journal", FormatStreak(streak)+"\n\n"+RenderTable(headers, rows))
}

func journalKind(k domain.JournalKind) string {
	switch k {
	case domain.JournalWeekly:
		return StylePurple.Render("weekly")
	case domain.JournalSunday:
		return StyleBlue.Render("sunday")
	default:
		return StyleFg.Render("daily")
	}
}

// entryText is the single-line body of an entry. Weekly entries join their
// answers in key order.
func entryText(e *domain.JournalEntry) string {
	if e.Kind != domain.JournalWeekly || len(e.Responses) == 0 {
		return e.Response
	}
	keys := make([]string, 0, len(e.Responses))
	for k := range e.Responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Responses[k]
	}
	return strings.Join(parts, "; ")
}
