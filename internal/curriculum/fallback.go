package curriculum

import (
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

const (
	fallbackScripture = "D&C 84:33"
	fallbackURL       = "https://www.churchofjesuschrist.org/study/scriptures/dc-testament/dc/84?lang=eng&id=33#p33"
	fallbackMessage   = "Continue your mastery path with daily, faithful discipline."
	fallbackChallenge = "Record one act of leadership or service completed today."
)

// Fallback synthesizes the generic mission for a day without curated
// content. It is total: out-of-range days are clamped into [1,120].
func Fallback(day int) domain.Mission {
	day = min(max(day, 1), progression.TotalDays)
	pos, _ := progression.MonthAndDayOf(day)
	title := fmt.Sprintf("Month %d - Day %d", pos.Month, pos.Day)
	if pos.Month == 0 {
		title = fmt.Sprintf("Starter Week - Day %d", pos.Day)
	}
	return domain.Mission{
		Day:       day,
		Title:     title,
		Scripture: fallbackScripture,
		URL:       fallbackURL,
		Message:   fallbackMessage,
		Challenge: fallbackChallenge,
	}
}

// Resolve looks day up in c and falls back to the synthesized mission.
func Resolve(c Catalog, office domain.Office, day int) domain.Mission {
	if c != nil {
		if m, ok := c.Lookup(office, day); ok {
			return m
		}
	}
	return Fallback(day)
}
