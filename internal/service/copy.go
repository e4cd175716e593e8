package service

import (
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

const (
	CatchUpBody   = "You can review what you missed or resume today with grace."
	RecenterTitle = "Welcome back. Let's re-center."
	RecenterBody  = "Even after time away, your stewardship resumes with hope and renewal."

	ReviewTitle       = "Review & Repair"
	ReviewStruggling  = "To get the most out of the next phase, we recommend completing at least 5 days first."
	ReviewChoice      = "Would you like to review them now to earn your Gold badge, or move forward with Silver?"
	ReviewMissedLabel = "Review Missed Days"
	ProceedLabel      = "Proceed to Next Phase (Silver)"
)

func CatchUpTitle(name string) string {
	return fmt.Sprintf("Welcome back, %s. Ready to catch up?", progression.DisplayName(name))
}

// ReviewMessage is the body of the review modal for a pending review.
func ReviewMessage(t *domain.PendingTransition) string {
	msg := fmt.Sprintf("You have reached the end of this phase with %d excused day(s).", len(t.ExcusedDays))
	m := progression.Metrics{Total: t.Total, ManualCount: t.ManualCount, ExcusedDays: t.ExcusedDays}
	if m.Struggling() {
		return msg + " " + ReviewStruggling
	}
	return msg + " " + ReviewChoice
}
