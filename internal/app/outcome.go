package app

import "github.com/alexanderramin/pathkeeper/internal/domain"

type Status string

const (
	StatusApplied  Status = "applied"
	StatusRejected Status = "rejected"
)

// RejectReason names the precondition an operation failed. Rejections are
// not errors; the state is left untouched.
type RejectReason string

const (
	RejectNoOffice          RejectReason = "no_office"
	RejectUnknownOffice     RejectReason = "unknown_office"
	RejectAlreadyCompleted  RejectReason = "already_completed"
	RejectBlankReflection   RejectReason = "blank_reflection"
	RejectDayOutOfRange     RejectReason = "day_out_of_range"
	RejectTransitionPending RejectReason = "transition_pending"
	RejectNoTransition      RejectReason = "no_transition"
	RejectWrongTransition   RejectReason = "wrong_transition"
	RejectStarterFinished   RejectReason = "starter_finished"
	RejectNoPrompt          RejectReason = "no_prompt"
	RejectWrongPrompt       RejectReason = "wrong_prompt"
	RejectMasteryComplete   RejectReason = "mastery_complete"
	RejectNothingToEvaluate RejectReason = "nothing_to_evaluate"
	RejectRecoveryNotDue    RejectReason = "recovery_not_due"
	RejectUnknownHabit      RejectReason = "unknown_habit"
)

type EventKind string

const (
	EventCelebration     EventKind = "celebration"
	EventReview          EventKind = "review"
	EventBadgeUnlocked   EventKind = "badge_unlocked"
	EventStarterFinished EventKind = "starter_finished"
	EventMonthAdvanced   EventKind = "month_advanced"
	EventMasteryComplete EventKind = "mastery_complete"
	EventCatchUpFinished EventKind = "catchup_finished"
	EventHigherUnlocked  EventKind = "higher_unlocked"
	EventRecovery        EventKind = "recovery"
)

// Event is something the presentation layer should surface after an
// operation, such as a phase modal or a badge toast.
type Event struct {
	Kind       EventKind
	Transition *domain.PendingTransition
	Badge      *domain.BadgeUnlock
	Recovery   *domain.RecoveryPrompt
	Month      int
}

// Outcome is the result of every mission and recovery operation.
type Outcome struct {
	Status Status
	Reason RejectReason
	Events []Event
	// ActiveDay is the active day after the operation, 0 with no office.
	ActiveDay int
}

func Applied(events ...Event) Outcome {
	return Outcome{Status: StatusApplied, Events: events}
}

func Rejected(reason RejectReason) Outcome {
	return Outcome{Status: StatusRejected, Reason: reason}
}

func (o Outcome) OK() bool { return o.Status == StatusApplied }

// Event returns the first event of the given kind.
func (o Outcome) Event(kind EventKind) (Event, bool) {
	for _, e := range o.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func (o Outcome) Has(kind EventKind) bool {
	_, ok := o.Event(kind)
	return ok
}
