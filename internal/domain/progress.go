package domain

import (
	"maps"
	"slices"
)

type PhaseKey string

const (
	Phase1 PhaseKey = "phase1"
	Phase2 PhaseKey = "phase2"
	Phase3 PhaseKey = "phase3"
	Phase4 PhaseKey = "phase4"
	Phase5 PhaseKey = "phase5"
)

// PhaseKeys lists the five program phases in order.
var PhaseKeys = []PhaseKey{Phase1, Phase2, Phase3, Phase4, Phase5}

// Medal is the recorded quality of a passed phase. The empty value means
// nothing explicit was recorded.
type Medal string

const (
	MedalNone   Medal = ""
	MedalSilver Medal = "silver"
	MedalGold   Medal = "gold"
)

// DayMark records the last completed day and the local calendar date it was
// completed on. During the Starter Week CompletedDay is an absolute day; once
// mastery starts it is the day within the current month.
type DayMark struct {
	CompletedDay  int    `json:"completedDay"`
	CompletedDate string `json:"completedDate,omitempty"`
}

type MasteryState struct {
	IsStarterFinished        bool `json:"isStarterFinished"`
	CurrentMonth             int  `json:"currentMonth"`
	CurrentDay               int  `json:"currentDay"`
	Month2ReflectionComplete bool `json:"month2ReflectionComplete"`
	MasteryComplete          bool `json:"masteryComplete"`
}

// BadgeUnlock is the most recent badge award waiting to be shown.
type BadgeUnlock struct {
	Title   string `json:"title"`
	Month   int    `json:"month"`
	Date    string `json:"date"`
	Message string `json:"message,omitempty"`
}

// DaySet is an ascending set of absolute day numbers.
type DaySet []int

func (s DaySet) Contains(day int) bool {
	_, found := slices.BinarySearch(s, day)
	return found
}

// Add inserts day and reports whether the set changed.
func (s *DaySet) Add(day int) bool {
	i, found := slices.BinarySearch(*s, day)
	if found {
		return false
	}
	*s = slices.Insert(*s, i, day)
	return true
}

// Remove deletes day and reports whether the set changed.
func (s *DaySet) Remove(day int) bool {
	i, found := slices.BinarySearch(*s, day)
	if !found {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// CountIn returns how many members fall in [start, end].
func (s DaySet) CountIn(start, end int) int {
	n := 0
	for _, d := range s {
		if d >= start && d <= end {
			n++
		}
	}
	return n
}

// Normalize sorts and deduplicates the set in place.
func (s *DaySet) Normalize() {
	slices.Sort(*s)
	*s = slices.Compact(*s)
}

// Progress is the whole single-user state owned by the mission engine.
type Progress struct {
	UserName         string
	Office           Office
	Starter          DayMark
	Mastery          MasteryState
	Reflections      map[Office]map[int]string
	ManualCompleted  DaySet
	GraceDays        map[int]string
	PhaseStatus      map[PhaseKey]Medal
	PhaseCompletions map[PhaseKey]bool
	Badges           []string
	BadgeUnlock      *BadgeUnlock
	HigherUnlocked   bool
	LastActiveDate   string
	LastCompletedDay int
	RecoveryShown    string
	Recovery         *RecoveryPrompt
	CatchUpQueue     []int
	CatchUpMode      bool
	Pending          *PendingTransition
	// HabitLog is keyed by local calendar date.
	HabitLog map[string]HabitDay
}

// NewProgress returns the initial state used on first launch and after a
// full reset.
func NewProgress() *Progress {
	p := &Progress{
		Mastery: MasteryState{CurrentDay: 1},
	}
	p.Normalize()
	return p
}

// Normalize allocates nil maps and fills missing phase keys so callers can
// index without checks.
func (p *Progress) Normalize() {
	if p.Reflections == nil {
		p.Reflections = map[Office]map[int]string{}
	}
	if p.GraceDays == nil {
		p.GraceDays = map[int]string{}
	}
	if p.PhaseStatus == nil {
		p.PhaseStatus = map[PhaseKey]Medal{}
	}
	if p.PhaseCompletions == nil {
		p.PhaseCompletions = map[PhaseKey]bool{}
	}
	if p.HabitLog == nil {
		p.HabitLog = map[string]HabitDay{}
	}
	for _, k := range PhaseKeys {
		if _, ok := p.PhaseStatus[k]; !ok {
			p.PhaseStatus[k] = MedalNone
		}
		if _, ok := p.PhaseCompletions[k]; !ok {
			p.PhaseCompletions[k] = false
		}
	}
	p.ManualCompleted.Normalize()
}

// HasBadge reports whether name was already awarded.
func (p *Progress) HasBadge(name string) bool {
	return slices.Contains(p.Badges, name)
}

// AwardBadge appends name unless it is already present.
func (p *Progress) AwardBadge(name string) bool {
	if p.HasBadge(name) {
		return false
	}
	p.Badges = append(p.Badges, name)
	return true
}

// Clone returns a deep copy.
func (p *Progress) Clone() *Progress {
	c := *p
	c.Reflections = make(map[Office]map[int]string, len(p.Reflections))
	for office, byDay := range p.Reflections {
		c.Reflections[office] = maps.Clone(byDay)
	}
	c.ManualCompleted = slices.Clone(p.ManualCompleted)
	c.GraceDays = maps.Clone(p.GraceDays)
	c.PhaseStatus = maps.Clone(p.PhaseStatus)
	c.PhaseCompletions = maps.Clone(p.PhaseCompletions)
	c.Badges = slices.Clone(p.Badges)
	c.CatchUpQueue = slices.Clone(p.CatchUpQueue)
	c.HabitLog = maps.Clone(p.HabitLog)
	if p.BadgeUnlock != nil {
		b := *p.BadgeUnlock
		c.BadgeUnlock = &b
	}
	if p.Recovery != nil {
		r := *p.Recovery
		r.MissedDays = slices.Clone(p.Recovery.MissedDays)
		c.Recovery = &r
	}
	if p.Pending != nil {
		t := *p.Pending
		t.ExcusedDays = slices.Clone(p.Pending.ExcusedDays)
		c.Pending = &t
	}
	if c.GraceDays == nil || c.PhaseStatus == nil || c.PhaseCompletions == nil || c.HabitLog == nil {
		c.Normalize()
	}
	return &c
}
