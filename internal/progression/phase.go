package progression

import (
	"slices"
	"strconv"

	"github.com/alexanderramin/pathkeeper/internal/domain"
)

// PhaseRange is the inclusive absolute-day span of one phase.
type PhaseRange struct {
	Key   domain.PhaseKey
	Start int
	End   int
}

func (r PhaseRange) Total() int { return r.End - r.Start + 1 }

func (r PhaseRange) Contains(day int) bool { return day >= r.Start && day <= r.End }

var gatedPhases = []PhaseRange{
	{Key: domain.Phase1, Start: 1, End: 7},
	{Key: domain.Phase2, Start: 8, End: 35},
	{Key: domain.Phase3, Start: 36, End: 63},
	{Key: domain.Phase4, Start: 64, End: 91},
}

// TerminalPhase is completed with the last day of month 4 and is never gated.
var TerminalPhase = PhaseRange{Key: domain.Phase5, Start: 92, End: 120}

// GatedPhaseOf returns the gated phase containing day. Days in the terminal
// phase return ok=false.
func GatedPhaseOf(day int) (PhaseRange, bool) {
	for _, r := range gatedPhases {
		if r.Contains(day) {
			return r, true
		}
	}
	return PhaseRange{}, false
}

// PhaseOf returns the phase containing day, terminal phase included.
func PhaseOf(day int) (PhaseRange, bool) {
	if r, ok := GatedPhaseOf(day); ok {
		return r, true
	}
	if TerminalPhase.Contains(day) {
		return TerminalPhase, true
	}
	return PhaseRange{}, false
}

// PhaseEndingAt returns the gated phase whose boundary is day (7, 35, 63, 91).
func PhaseEndingAt(day int) (PhaseRange, bool) {
	for _, r := range gatedPhases {
		if r.End == day {
			return r, true
		}
	}
	return PhaseRange{}, false
}

// PhaseByKey looks up any phase range by key.
func PhaseByKey(key domain.PhaseKey) (PhaseRange, bool) {
	for _, r := range gatedPhases {
		if r.Key == key {
			return r, true
		}
	}
	if key == TerminalPhase.Key {
		return TerminalPhase, true
	}
	return PhaseRange{}, false
}

type Metrics struct {
	Total       int
	ManualCount int
	ExcusedDays []int
}

// FullyManual reports whether every day in the range was completed by hand.
func (m Metrics) FullyManual() bool { return m.Total > 0 && m.ManualCount >= m.Total }

// MissingCount is the number of days not completed by hand.
func (m Metrics) MissingCount() int { return max(0, m.Total-m.ManualCount) }

// Struggling mirrors the review prompt's advice threshold: fewer than five
// manual days (or the whole phase, when shorter).
func (m Metrics) Struggling() bool { return m.ManualCount < min(5, m.Total) }

// PhaseMetrics counts manual completions and collects excused days inside r.
func PhaseMetrics(r PhaseRange, manual domain.DaySet, grace map[int]string) Metrics {
	excused := make([]int, 0)
	for day := range grace {
		if r.Contains(day) {
			excused = append(excused, day)
		}
	}
	slices.Sort(excused)
	return Metrics{
		Total:       r.Total(),
		ManualCount: manual.CountIn(r.Start, r.End),
		ExcusedDays: excused,
	}
}

type GateDecision string

const (
	GateCelebrate GateDecision = "celebrate"
	GateReview    GateDecision = "review"
)

// EvaluateGate decides how a phase boundary is presented. Excused gaps with
// incomplete manual coverage block advancement behind a review; anything else
// is celebrated.
func EvaluateGate(m Metrics) GateDecision {
	if len(m.ExcusedDays) > 0 && m.ManualCount < m.Total {
		return GateReview
	}
	return GateCelebrate
}

// MedalFor reads back the medal of a phase. A completed phase is gold unless
// silver was recorded explicitly.
func MedalFor(p *domain.Progress, key domain.PhaseKey) domain.Medal {
	status := p.PhaseStatus[key]
	if status == domain.MedalSilver {
		return domain.MedalSilver
	}
	if status == domain.MedalGold || p.PhaseCompletions[key] {
		return domain.MedalGold
	}
	return domain.MedalNone
}

// PhaseContent is the celebration copy shown when a gated phase closes.
type PhaseContent struct {
	Key     domain.PhaseKey
	EndDay  int
	Title   string
	Message string
	Next    string
	Badge   string
}

// TrackLabel names the Month 2 specialization for an order.
func TrackLabel(order domain.PriesthoodOrder) string {
	if order == domain.OrderMelchizedek {
		return "The Healer"
	}
	return "The Gatekeeper"
}

// MonthLabel names a mastery month for the given order.
func MonthLabel(month int, order domain.PriesthoodOrder) string {
	melchizedek := order == domain.OrderMelchizedek
	switch month {
	case 1:
		return "The Scriptural Priesthood"
	case 2:
		return TrackLabel(order)
	case 3:
		if melchizedek {
			return "The Shepherd"
		}
		return "The Watchman"
	case 4:
		if melchizedek {
			return "The Patriarch"
		}
		return "The Preparer"
	}
	return "Starter Week"
}

// CelebrationFor returns the copy for the phase ending at endDay.
func CelebrationFor(endDay int, order domain.PriesthoodOrder) (PhaseContent, bool) {
	switch endDay {
	case 7:
		return PhaseContent{
			Key:     domain.Phase1,
			EndDay:  7,
			Title:   "Foundation Laid",
			Message: "You have mastered the Starter Week. Your foundation is firm and ready to build upon.",
			Next:    "Next: The Scriptural Priesthood",
			Badge:   "/assets/ShieldOfFaith.png",
		}, true
	case 35:
		return PhaseContent{
			Key:     domain.Phase2,
			EndDay:  35,
			Title:   "Doctrines Mastered",
			Message: "Your understanding is deepening. You are ready for specialized training.",
			Next:    "Next: " + TrackLabel(order) + " Track",
			Badge:   "/assets/TheOpenWord.png",
		}, true
	case 63:
		return PhaseContent{
			Key:     domain.Phase3,
			EndDay:  63,
			Title:   "Skills Acquired",
			Message: "You have strengthened your gifts. It is time to look outward and lead.",
			Next:    "Next: Active Stewardship",
			Badge:   "/assets/KeyOfAuthority.png",
		}, true
	case 91:
		return PhaseContent{
			Key:     domain.Phase4,
			EndDay:  91,
			Title:   "Mission Fulfilled",
			Message: "Your service has matured. You are ready to receive the crown.",
			Next:    "Next: Eternal Legacies",
			Badge:   "/assets/SheppardsStaff.png",
		}, true
	}
	return PhaseContent{}, false
}

// PhaseLabel is a short human name for a phase key, e.g. "Phase 2".
func PhaseLabel(key domain.PhaseKey) string {
	for i, k := range domain.PhaseKeys {
		if k == key {
			return "Phase " + strconv.Itoa(i+1)
		}
	}
	return string(key)
}
