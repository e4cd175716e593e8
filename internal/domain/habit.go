package domain

import "strings"

// Habit is one of the daily practices on the habit tracker.
type Habit string

const (
	HabitScripture Habit = "scripture"
	HabitPrayer    Habit = "prayer"
	HabitService   Habit = "service"
)

// Habits lists the tracked habits in display order.
var Habits = []Habit{HabitScripture, HabitPrayer, HabitService}

func ParseHabit(s string) (Habit, bool) {
	h := Habit(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HabitScripture, HabitPrayer, HabitService:
		return h, true
	}
	return "", false
}

func (h Habit) Label() string {
	switch h {
	case HabitScripture:
		return "Scripture"
	case HabitPrayer:
		return "Prayer"
	case HabitService:
		return "Service"
	}
	return string(h)
}

// HabitDay is the tracker for one calendar day.
type HabitDay struct {
	Scripture bool `json:"scripture"`
	Prayer    bool `json:"prayer"`
	Service   bool `json:"service"`
}

func (d HabitDay) Done(h Habit) bool {
	switch h {
	case HabitScripture:
		return d.Scripture
	case HabitPrayer:
		return d.Prayer
	case HabitService:
		return d.Service
	}
	return false
}

func (d *HabitDay) Set(h Habit, done bool) {
	switch h {
	case HabitScripture:
		d.Scripture = done
	case HabitPrayer:
		d.Prayer = done
	case HabitService:
		d.Service = done
	}
}

// Count is how many habits were kept.
func (d HabitDay) Count() int {
	n := 0
	for _, h := range Habits {
		if d.Done(h) {
			n++
		}
	}
	return n
}

// Complete reports whether every habit was kept.
func (d HabitDay) Complete() bool { return d.Count() == len(Habits) }
