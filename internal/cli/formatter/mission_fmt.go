package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/alexanderramin/pathkeeper/internal/service"
)

// FormatToday renders the dashboard card for the active day.
func FormatToday(s app.Snapshot) string {
	if !s.HasOffice() {
		return RenderBox("Priesthood Path", Wrap("Choose your office to begin the 120-day path.")+
			"\n\n"+Dim("pathkeeper office set deacon|teacher|priest|elder"))
	}

	var b strings.Builder
	b.WriteString(OfficePill(s.Office) + Dim("  ·  ") + StyleFg.Render(s.DisplayName) + "\n")
	b.WriteString(StyleBlue.Render(fmt.Sprintf("Day %d of %d", s.ActiveDay, progression.TotalDays)))
	if s.Month == 0 {
		b.WriteString(Dim(fmt.Sprintf("  Starter Week, day %d", s.DayInMonth)))
	} else {
		b.WriteString(Dim(fmt.Sprintf("  Month %d, day %d · %s", s.Month, s.DayInMonth, s.MonthLabel)))
	}
	b.WriteString("\n\n")

	m := s.Mission
	b.WriteString(Bold(m.Title) + "\n")
	if m.Scripture != "" {
		b.WriteString(StylePurple.Render(m.Scripture))
		if m.URL != "" {
			b.WriteString(Dim("  " + m.URL))
		}
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString("\n" + Wrap(m.Message) + "\n")
	}
	if m.Challenge != "" {
		b.WriteString("\n" + StyleHeader.Render("Challenge") + "\n" + Wrap(m.Challenge) + "\n")
	}

	b.WriteString("\n")
	switch {
	case s.Pending != nil:
		b.WriteString(StyleYellow.Render("◆ Phase transition waiting") + Dim("  pathkeeper phase"))
	case s.Mastery.MasteryComplete:
		b.WriteString(StyleYellow.Render("★ Path complete"))
	case s.CompletedToday:
		b.WriteString(StyleGreen.Render("✔ Completed today"))
	default:
		b.WriteString(StyleDim.Render("○ Not yet completed") + Dim("  pathkeeper complete"))
	}
	b.WriteString("\n" + HabitLine(s.HabitsToday) + "\n")

	if s.Reflection != "" {
		b.WriteString("\n" + StyleHeader.Render("Reflection") + "\n" + Wrap(s.Reflection) + "\n")
	}
	if s.CatchUpMode && len(s.CatchUpQueue) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Catch-up: ") + DayList(s.CatchUpQueue) + "\n")
	}

	return RenderBox("Today's Mission", b.String())
}

// RejectMessage explains a rejected operation in plain words.
func RejectMessage(r app.RejectReason) string {
	switch r {
	case app.RejectNoOffice:
		return "Choose an office first."
	case app.RejectUnknownOffice:
		return "Unknown office. Choose deacon, teacher, priest or elder."
	case app.RejectAlreadyCompleted:
		return "Today's mission is already complete. Come back tomorrow."
	case app.RejectBlankReflection:
		return "A reflection cannot be blank."
	case app.RejectDayOutOfRange:
		return "That day is not available."
	case app.RejectTransitionPending:
		return "Resolve the phase transition first."
	case app.RejectNoTransition:
		return "There is no phase transition waiting."
	case app.RejectWrongTransition:
		return "That choice does not apply to this phase transition."
	case app.RejectStarterFinished:
		return "The Starter Week is already finished."
	case app.RejectNoPrompt:
		return "There is no recovery prompt open."
	case app.RejectWrongPrompt:
		return "That choice does not apply to this recovery prompt."
	case app.RejectMasteryComplete:
		return "You have finished all 120 days."
	case app.RejectNothingToEvaluate, app.RejectRecoveryNotDue:
		return "Nothing to recover."
	case app.RejectUnknownHabit:
		return "Unknown habit. Choose scripture, prayer or service."
	}
	return string(r)
}

// FormatOutcome renders the result of an operation: a rejection note or the
// events it raised.
func FormatOutcome(o app.Outcome, order domain.PriesthoodOrder) string {
	if !o.OK() {
		return StyleYellow.Render("Not applied: ") + RejectMessage(o.Reason) + "\n"
	}
	var b strings.Builder
	for _, e := range o.Events {
		b.WriteString(FormatEvent(e, order))
	}
	return b.String()
}

// FormatEvent renders one outcome event.
func FormatEvent(e app.Event, order domain.PriesthoodOrder) string {
	switch e.Kind {
	case app.EventCelebration:
		if e.Transition != nil {
			return FormatCelebration(e.Transition, order) + "\n"
		}
	case app.EventReview:
		if e.Transition != nil {
			return FormatReview(e.Transition) + "\n"
		}
	case app.EventBadgeUnlocked:
		if e.Badge != nil {
			return FormatBadge(*e.Badge) + "\n"
		}
	case app.EventStarterFinished:
		return StyleGreen.Render("✔ Starter Week complete.") + " Month 1 begins: " +
			Bold(progression.MonthLabel(1, order)) + "\n"
	case app.EventMonthAdvanced:
		return StyleGreen.Render(fmt.Sprintf("✔ Month %d begins: ", e.Month)) +
			Bold(progression.MonthLabel(e.Month, order)) + "\n"
	case app.EventMasteryComplete:
		return StyleYellow.Render("★ You have completed the 120-day Priesthood Path.") + "\n"
	case app.EventCatchUpFinished:
		return StyleGreen.Render("✔ Catch-up complete. Every missed day has a reflection.") + "\n"
	case app.EventHigherUnlocked:
		return StylePurple.Render("● Melchizedek track unlocked.") + "\n"
	case app.EventRecovery:
		if e.Recovery != nil {
			return FormatRecovery(e.Recovery) + "\n"
		}
	}
	return ""
}

// FormatCelebration renders the modal for a cleanly finished phase.
func FormatCelebration(t *domain.PendingTransition, order domain.PriesthoodOrder) string {
	c, ok := progression.CelebrationFor(t.EndDay, order)
	if !ok {
		c = progression.PhaseContent{Title: progression.PhaseLabel(t.Phase) + " complete"}
	}
	var b strings.Builder
	b.WriteString(Wrap(c.Message) + "\n")
	if c.Next != "" {
		b.WriteString("\n" + StyleBlue.Render(c.Next) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s %d of %d days by hand\n", Dim("Manual:"), t.ManualCount, t.Total))
	b.WriteString("\n" + Dim("Continue with: pathkeeper phase continue"))
	return RenderAccentBox(c.Title, b.String(), ColorGreen)
}

// FormatReview renders the review & repair modal for a phase that closed
// with excused days.
func FormatReview(t *domain.PendingTransition) string {
	var b strings.Builder
	b.WriteString(Wrap(service.ReviewMessage(t)) + "\n\n")
	b.WriteString(Dim("Excused: ") + StyleYellow.Render(DayList(t.ExcusedDays)) + "\n")
	b.WriteString(fmt.Sprintf("%s %d of %d days by hand\n\n", Dim("Manual:"), t.ManualCount, t.Total))
	b.WriteString(StyleBlue.Render(service.ReviewMissedLabel) + Dim("  pathkeeper phase review") + "\n")
	b.WriteString(StyleSilver.Render(service.ProceedLabel) + Dim("  pathkeeper phase silver"))
	return RenderAccentBox(service.ReviewTitle+" · "+progression.PhaseLabel(t.Phase), b.String(), ColorYellow)
}

// FormatBadge renders a badge unlock toast.
func FormatBadge(u domain.BadgeUnlock) string {
	line := StyleYellow.Render("★ Badge unlocked: ") + Bold(u.Title)
	if u.Message != "" {
		line += "\n  " + Wrap(u.Message)
	}
	return line
}

// FormatRecovery renders the welcome-back prompt.
func FormatRecovery(r *domain.RecoveryPrompt) string {
	switch r.Kind {
	case domain.RecoveryToast:
		return StyleGreen.Render("● ") + r.Message
	case domain.RecoveryCatchUp:
		var b strings.Builder
		b.WriteString(Wrap(service.CatchUpBody) + "\n\n")
		if len(r.MissedDays) > 0 {
			b.WriteString(Dim("Missed: ") + StyleRed.Render(DayList(r.MissedDays)) + "\n")
		}
		b.WriteString(fmt.Sprintf("%s %d day(s) · resume at %s\n\n", Dim("Away:"), r.GapDays, DayRef(r.TargetDay)))
		b.WriteString(StyleBlue.Render("Catch up") + Dim("  pathkeeper recover catchup") + "\n")
		b.WriteString(StyleFg.Render("Resume with grace") + Dim("  pathkeeper recover resume"))
		return RenderAccentBox(r.Message, b.String(), ColorBlue)
	case domain.RecoveryRecenter:
		var b strings.Builder
		b.WriteString(Wrap(service.RecenterBody) + "\n\n")
		b.WriteString(fmt.Sprintf("%s %d day(s) · restart at %s\n\n", Dim("Away:"), r.GapDays, DayRef(r.TargetDay)))
		b.WriteString(StyleBlue.Render("Restart") + Dim("  pathkeeper recover restart"))
		return RenderAccentBox(r.Message, b.String(), ColorPurple)
	}
	return ""
}

// FormatNudge renders the evening reminder.
func FormatNudge(title, body string) string {
	return StyleYellow.Render("● "+title) + "\n  " + body + "\n"
}
