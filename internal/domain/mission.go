package domain

import "time"

// Mission is the curriculum content for one absolute day.
type Mission struct {
	Day       int    `json:"day"`
	Scripture string `json:"scripture"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Challenge string `json:"challenge"`
	URL       string `json:"url"`
}

type JournalKind string

const (
	JournalDaily  JournalKind = "daily"
	JournalWeekly JournalKind = "weekly"
	JournalSunday JournalKind = "sunday"
)

// JournalEntry is one line of the append-only journal history. Weekly
// entries carry every wizard answer in Responses; daily and sunday entries
// carry a single Prompt/Response pair.
type JournalEntry struct {
	ID        string
	Kind      JournalKind
	Office    Office
	Day       int
	Prompt    string
	Response  string
	Responses map[string]string
	CreatedAt time.Time
}
