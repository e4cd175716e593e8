package domain

type TransitionKind string

const (
	TransitionCelebration TransitionKind = "celebration"
	TransitionReview      TransitionKind = "review"
)

// AdvanceKind names the advancement deferred behind a phase gate.
type AdvanceKind string

const (
	AdvanceStarter AdvanceKind = "starter"
	AdvanceMastery AdvanceKind = "mastery"
)

// PendingTransition is a phase boundary that was reached but not yet
// acknowledged. Nothing advances until it is resolved.
type PendingTransition struct {
	Kind        TransitionKind `json:"kind"`
	Phase       PhaseKey       `json:"phase"`
	EndDay      int            `json:"endDay"`
	Total       int            `json:"total"`
	ManualCount int            `json:"manualCount"`
	ExcusedDays []int          `json:"excusedDays,omitempty"`

	Advance           AdvanceKind `json:"advance"`
	DateKey           string      `json:"dateKey,omitempty"`
	CompletedDayValue int         `json:"completedDayValue,omitempty"`
}

type RecoveryKind string

const (
	RecoveryNone     RecoveryKind = "none"
	RecoveryToast    RecoveryKind = "toast"
	RecoveryCatchUp  RecoveryKind = "catchup"
	RecoveryRecenter RecoveryKind = "recenter"
)

// RecoveryPrompt is the welcome-back offer produced after an absence.
type RecoveryPrompt struct {
	Kind          RecoveryKind `json:"type"`
	Message       string       `json:"message,omitempty"`
	MissedDays    []int        `json:"missedDays,omitempty"`
	TargetDay     int          `json:"targetDay,omitempty"`
	LastCompleted int          `json:"lastCompleted,omitempty"`
	GapDays       int          `json:"gapDays,omitempty"`
}
