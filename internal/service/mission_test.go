package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/db"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/alexanderramin/pathkeeper/internal/repository"
	"github.com/alexanderramin/pathkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyAnswers() map[string]string {
	return map[string]string{
		"ordinance":  "Peaceful and focused.",
		"habit":      "Late nights.",
		"mission":    "Greeting new members.",
		"people":     "Brother Jensen.",
		"commitment": "Prepare the sacrament every week.",
	}
}

func TestStarterWeek_DeaconScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	out, err := h.engine.SelectOffice(ctx, domain.OfficeDeacon, app.OfficeChangeContinue)
	require.NoError(t, err)
	require.True(t, out.OK())

	for day := 1; day <= 7; day++ {
		if day > 1 {
			h.clock.AdvanceDays(1)
		}
		active, ok := h.engine.ActiveDay(ctx)
		require.True(t, ok)
		require.Equal(t, day, active)

		out, err := h.engine.CompleteMission(ctx)
		require.NoError(t, err)
		require.True(t, out.OK(), "day %d: %s", day, out.Reason)
		assert.Equal(t, day, out.ActiveDay, "the completed day stays active until tomorrow")

		out, err = h.engine.SaveReflection(ctx, day, fmt.Sprintf("Reflection for day %d", day))
		require.NoError(t, err)
		require.True(t, out.OK())
	}

	out, err = h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	require.True(t, out.OK(), out.Reason)
	assert.True(t, out.Has(app.EventStarterFinished))
	assert.False(t, out.Has(app.EventReview))

	snap := h.engine.Snapshot(ctx)
	assert.True(t, snap.Mastery.IsStarterFinished)
	assert.Equal(t, 1, snap.Mastery.CurrentMonth)
	assert.Equal(t, 1, snap.Mastery.CurrentDay)
	assert.Equal(t, 8, snap.ActiveDay)
	assert.Equal(t, domain.MedalGold, snap.Medals[domain.Phase1])
	assert.Nil(t, snap.Pending)

	entries, err := h.engine.ListJournal(ctx, 0)
	require.NoError(t, err)
	kinds := map[domain.JournalKind]int{}
	for _, e := range entries {
		kinds[e.Kind]++
	}
	assert.Equal(t, 7, kinds[domain.JournalDaily])
	assert.Equal(t, 1, kinds[domain.JournalWeekly])
	assert.Equal(t, len(WeeklyPrompts), kinds[domain.JournalSunday])
}

func TestStarterWeek_ExcusedDaysRaiseReview(t *testing.T) {
	today := "2026-02-02"
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeTeacher),
		testutil.WithManualDays(1, 2, 5, 6),
		testutil.WithGraceDays(today, 3, 4),
		testutil.WithStarterDay(7, today),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	require.True(t, out.OK())
	ev, ok := out.Event(app.EventReview)
	require.True(t, ok)
	assert.Equal(t, domain.Phase1, ev.Transition.Phase)
	assert.Equal(t, []int{3, 4}, ev.Transition.ExcusedDays)
	assert.Equal(t, 5, ev.Transition.ManualCount)
	assert.Equal(t, 7, out.ActiveDay, "review never auto-advances")

	out, err = h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	assert.Equal(t, app.RejectTransitionPending, out.Reason)

	out, err = h.engine.Acknowledge(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.RejectWrongTransition, out.Reason)

	out, err = h.engine.ResolveWithSilver(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.True(t, out.Has(app.EventStarterFinished))
	assert.Equal(t, 8, out.ActiveDay)

	snap := h.engine.Snapshot(ctx)
	assert.Equal(t, domain.MedalSilver, snap.Medals[domain.Phase1])
	assert.True(t, h.stored(t).PhaseCompletions[domain.Phase1])
}

func TestCompleteWeeklyReflection_ClosingDaySevenCelebrates(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithManualRange(1, 6),
		testutil.WithStarterDay(6, "2026-02-01"),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	require.True(t, out.OK(), out.Reason)
	ev, ok := out.Event(app.EventCelebration)
	require.True(t, ok, "the weekly submission that completes phase 1 still celebrates it")
	assert.Equal(t, domain.Phase1, ev.Transition.Phase)
	assert.False(t, out.Has(app.EventStarterFinished))

	snap := h.engine.Snapshot(ctx)
	assert.False(t, snap.Mastery.IsStarterFinished)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, domain.TransitionCelebration, snap.Pending.Kind)
	assert.Contains(t, snap.ManualCompleted, 7)

	out, err = h.engine.Acknowledge(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.True(t, out.Has(app.EventStarterFinished))
	assert.Equal(t, 8, out.ActiveDay)
	assert.Equal(t, domain.MedalGold, h.engine.Snapshot(ctx).Medals[domain.Phase1])
}

func TestCompleteWeeklyReflection_Guards(t *testing.T) {
	ctx := context.Background()

	h := newHarness(t)
	out, err := h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	assert.Equal(t, app.RejectNoOffice, out.Reason)

	h = newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	out, err = h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	assert.Equal(t, app.RejectDayOutOfRange, out.Reason, "only on day 7")

	h = newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon), testutil.WithStarterDay(6, "2026-01-01"))))
	out, err = h.engine.CompleteWeeklyReflection(ctx, map[string]string{"habit": "   "})
	require.NoError(t, err)
	assert.Equal(t, app.RejectBlankReflection, out.Reason)

	h = newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon), testutil.WithMastery(1, 3))))
	out, err = h.engine.CompleteWeeklyReflection(ctx, weeklyAnswers())
	require.NoError(t, err)
	assert.Equal(t, app.RejectStarterFinished, out.Reason)
}

func TestCompleteMission_IdempotentPerCalendarDay(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficePriest), testutil.WithMastery(1, 5))))
	ctx := context.Background()

	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	before := h.stored(t)
	require.True(t, h.engine.IsCompletedToday(ctx))

	out, err = h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, app.RejectAlreadyCompleted, out.Reason)
	assert.Equal(t, before, h.stored(t), "no state change after the first call")

	h.clock.AdvanceDays(1)
	assert.False(t, h.engine.IsCompletedToday(ctx))
	out, err = h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, 14, out.ActiveDay)
}

func TestCompleteMission_RequiresOffice(t *testing.T) {
	h := newHarness(t)

	out, err := h.engine.CompleteMission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app.RejectNoOffice, out.Reason)
	assert.Empty(t, h.notifier.statuses, "rejections do not notify")
}

func TestCompleteMission_PhaseBoundaryWithExcusedDaysWaitsForReview(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithMastery(1, 28),
		testutil.WithManualRange(8, 19),
		testutil.WithGraceDays("2026-01-20", 20, 21),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	ev, ok := out.Event(app.EventReview)
	require.True(t, ok)
	assert.Equal(t, domain.Phase2, ev.Transition.Phase)
	assert.Equal(t, 35, ev.Transition.EndDay)
	assert.Equal(t, 35, out.ActiveDay)
	assert.False(t, h.engine.IsCompletedToday(ctx))

	for i := 0; i < 3; i++ {
		h.clock.AdvanceDays(1)
		out, err = h.engine.CompleteMission(ctx)
		require.NoError(t, err)
		assert.Equal(t, app.RejectTransitionPending, out.Reason)
		day, _ := h.engine.ActiveDay(ctx)
		assert.Equal(t, 35, day, "review never auto-advances")
	}

	out, err = h.engine.ResolveWithSilver(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.True(t, out.Has(app.EventMonthAdvanced))
	assert.Equal(t, 36, out.ActiveDay)

	snap := h.engine.Snapshot(ctx)
	assert.Equal(t, domain.MedalSilver, snap.Medals[domain.Phase2])
	assert.Equal(t, 2, snap.Mastery.CurrentMonth)
}

func TestReviewFirst_JumpsToFirstExcusedDay(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithMastery(1, 28),
		testutil.WithGraceDays("2026-01-20", 21, 20),
	)))
	ctx := context.Background()

	_, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)

	out, err := h.engine.ReviewFirst(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, 20, out.ActiveDay)
	assert.Nil(t, h.engine.Snapshot(ctx).Pending)

	out, err = h.engine.ReviewFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.RejectNoTransition, out.Reason)
}

func TestCompleteMission_CleanPhaseIsCelebrated(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeElder),
		testutil.WithMastery(3, 28),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	ev, ok := out.Event(app.EventCelebration)
	require.True(t, ok)
	assert.Equal(t, domain.Phase4, ev.Transition.Phase)

	out, err = h.engine.ResolveWithSilver(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.RejectWrongTransition, out.Reason)

	out, err = h.engine.Acknowledge(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, 92, out.ActiveDay)
	assert.True(t, h.engine.IsCompletedToday(ctx), "the deferred advance keeps the completion date")

	snap := h.engine.Snapshot(ctx)
	assert.Equal(t, domain.MedalGold, snap.Medals[domain.Phase4])
	assert.Equal(t, domain.MedalNone, h.stored(t).PhaseStatus[domain.Phase4], "acknowledge leaves the status as-is")
}

func TestCompleteMission_CompletedPhaseAdvancesWithoutGate(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithMastery(2, 28),
		testutil.WithPhaseCompleted(domain.Phase3, domain.MedalGold),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	ev, ok := out.Event(app.EventBadgeUnlocked)
	require.True(t, ok)
	assert.Equal(t, progression.BadgeShieldOfFaith, ev.Badge.Title)
	assert.Equal(t, 64, out.ActiveDay)

	snap := h.engine.Snapshot(ctx)
	assert.True(t, snap.Mastery.Month2ReflectionComplete)
	assert.Contains(t, snap.Badges, progression.BadgeShieldOfFaith)
	require.NotNil(t, snap.BadgeUnlock)

	out, err = h.engine.ClearBadgeUnlock(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Nil(t, h.engine.Snapshot(ctx).BadgeUnlock)
}

func TestCompleteMission_HoldsAtDay120(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeElder),
		testutil.WithMastery(4, 28),
	)))
	ctx := context.Background()

	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, out.ActiveDay)

	h.clock.AdvanceDays(1)
	out, err = h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.True(t, out.Has(app.EventMasteryComplete))
	assert.Equal(t, 120, out.ActiveDay, "there is no day 121")

	snap := h.engine.Snapshot(ctx)
	assert.True(t, snap.Mastery.MasteryComplete)
	assert.Equal(t, 29, snap.Mastery.CurrentDay)
	assert.Equal(t, domain.MedalGold, snap.Medals[domain.Phase5])

	h.clock.AdvanceDays(1)
	out, err = h.engine.CompleteMission(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.RejectMasteryComplete, out.Reason)
}

func TestSaveReflection_Day120Badges(t *testing.T) {
	tests := []struct {
		name      string
		manualEnd int
		want      string
		message   string
	}{
		{name: "master with 110 manual days", manualEnd: 110, want: progression.BadgePriesthoodMaster},
		{name: "finisher with 90 manual days", manualEnd: 90, want: progression.BadgePathFinisher, message: progression.PathFinisherMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, seeded(testutil.NewTestProgress(
				testutil.WithOffice(domain.OfficePriest),
				testutil.WithMastery(4, 29),
				testutil.WithManualRange(1, tt.manualEnd),
			)))
			ctx := context.Background()

			out, err := h.engine.SaveReflection(ctx, 120, "I finished the path.")
			require.NoError(t, err)
			ev, ok := out.Event(app.EventBadgeUnlocked)
			require.True(t, ok)
			assert.Equal(t, tt.want, ev.Badge.Title)
			assert.Equal(t, tt.message, ev.Badge.Message)
			assert.Equal(t, 4, ev.Badge.Month)

			snap := h.engine.Snapshot(ctx)
			assert.Equal(t, []string{tt.want}, snap.Badges)

			out, err = h.engine.SaveReflection(ctx, 120, "Edited.")
			require.NoError(t, err)
			assert.False(t, out.Has(app.EventBadgeUnlocked), "badges are awarded once")
		})
	}
}

func TestSaveReflection_Validation(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()

	out, err := h.engine.SaveReflection(ctx, 1, "   \n\t")
	require.NoError(t, err)
	assert.Equal(t, app.RejectBlankReflection, out.Reason)

	out, err = h.engine.SaveReflection(ctx, 121, "text")
	require.NoError(t, err)
	assert.Equal(t, app.RejectDayOutOfRange, out.Reason)

	out, err = h.engine.SaveReflection(ctx, 0, "text")
	require.NoError(t, err)
	assert.Equal(t, app.RejectDayOutOfRange, out.Reason)

	out, err = h.engine.SaveReflection(ctx, 1, "  trimmed  ")
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, "trimmed", h.engine.Reflection(ctx, 1))
}

func TestSaveReflection_ClearsGraceAndCompletesPhase(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithMastery(2, 3),
		testutil.WithManualDays(1, 2, 3, 4, 5, 6),
		testutil.WithGraceDays("2026-01-10", 7, 20),
		testutil.WithLastActive("2026-02-01", 37),
	)))
	ctx := context.Background()

	out, err := h.engine.SaveReflection(ctx, 7, "Caught up on day seven.")
	require.NoError(t, err)
	require.True(t, out.OK())

	p := h.stored(t)
	assert.True(t, p.ManualCompleted.Contains(7))
	assert.NotContains(t, p.GraceDays, 7)
	assert.Contains(t, p.GraceDays, 20)
	assert.True(t, p.PhaseCompletions[domain.Phase1])
	assert.Equal(t, domain.MedalGold, p.PhaseStatus[domain.Phase1])
	assert.Equal(t, 37, p.LastCompletedDay, "last completed day never moves backwards")
	assert.Equal(t, h.dateKey(0), p.LastActiveDate)
}

func TestSaveReflection_TerminalPhaseWaitsForLastDay(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeElder),
		testutil.WithMastery(4, 10),
		testutil.WithManualRange(92, 119),
	)))
	ctx := context.Background()

	out, err := h.engine.SaveReflection(ctx, 120, "Looking ahead.")
	require.NoError(t, err)
	require.True(t, out.OK())

	p := h.stored(t)
	assert.True(t, p.ManualCompleted.Contains(120))
	assert.False(t, p.PhaseCompletions[domain.Phase5], "phase 5 closes only when month 4 ends")
	assert.Equal(t, domain.MedalNone, p.PhaseStatus[domain.Phase5])
	assert.Equal(t, domain.MedalNone, h.engine.Snapshot(ctx).Medals[domain.Phase5])
}

func TestSetOverallDay(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeElder))))
	ctx := context.Background()

	for _, day := range []int{1, 5, 7, 8, 35, 36, 64, 100, 120} {
		out, err := h.engine.SetOverallDay(ctx, day)
		require.NoError(t, err)
		require.True(t, out.OK())
		assert.Equal(t, day, out.ActiveDay, "day %d", day)
	}

	out, err := h.engine.SetOverallDay(ctx, 121)
	require.NoError(t, err)
	assert.Equal(t, app.RejectDayOutOfRange, out.Reason)

	_, err = h.engine.SetOverallDay(ctx, 70)
	require.NoError(t, err)
	assert.True(t, h.stored(t).Mastery.Month2ReflectionComplete)

	_, err = h.engine.SetOverallDay(ctx, 3)
	require.NoError(t, err)
	p := h.stored(t)
	assert.False(t, p.Mastery.IsStarterFinished)
	assert.Equal(t, 2, p.Starter.CompletedDay)
	assert.Empty(t, p.Starter.CompletedDate)
}

func TestSelectOffice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	out, err := h.engine.SelectOffice(ctx, domain.Office("bishop"), app.OfficeChangeContinue)
	require.NoError(t, err)
	assert.Equal(t, app.RejectUnknownOffice, out.Reason)

	out, err = h.engine.SelectOffice(ctx, domain.OfficeElder, app.OfficeChangeContinue)
	require.NoError(t, err)
	assert.False(t, out.Has(app.EventHigherUnlocked), "first selection unlocks nothing")

	_, err = h.engine.SetUserName(ctx, "  Alma ")
	require.NoError(t, err)
	_, err = h.engine.SelectOffice(ctx, domain.OfficeTeacher, app.OfficeChangeContinue)
	require.NoError(t, err)
	_, err = h.engine.SetOverallDay(ctx, 40)
	require.NoError(t, err)
	_, err = h.engine.SaveReflection(ctx, 39, "kept")
	require.NoError(t, err)

	out, err = h.engine.SelectOffice(ctx, domain.OfficeElder, app.OfficeChangeContinue)
	require.NoError(t, err)
	assert.True(t, out.Has(app.EventHigherUnlocked))
	assert.Equal(t, 40, out.ActiveDay, "continue keeps progress")
	assert.True(t, h.engine.Snapshot(ctx).HigherUnlocked)

	_, err = h.engine.ClearHigherUnlocked(ctx)
	require.NoError(t, err)
	assert.False(t, h.engine.Snapshot(ctx).HigherUnlocked)

	out, err = h.engine.SelectOffice(ctx, domain.OfficePriest, app.OfficeChangeReset)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ActiveDay)
	snap := h.engine.Snapshot(ctx)
	assert.Equal(t, "Alma", snap.UserName)
	assert.Equal(t, domain.OfficePriest, snap.Office)
	assert.Empty(t, snap.ManualCompleted)

	entries, err := h.engine.ListJournal(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "journal history survives a reset")
}

func TestReset_WipesEverything(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithUserName("Moroni"),
		testutil.WithMastery(3, 4),
		testutil.WithManualRange(1, 20),
	)))
	ctx := context.Background()

	out, err := h.engine.Reset(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, 0, out.ActiveDay)

	p := h.stored(t)
	assert.Empty(t, p.Office)
	assert.Empty(t, p.UserName)
	assert.Empty(t, p.ManualCompleted)
	assert.Equal(t, domain.NewProgress().Mastery, p.Mastery)
	_, ok := h.engine.ActiveMission(ctx)
	assert.False(t, ok)
}

func TestActiveMission_FallsBackWithoutCatalogEntry(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon), testutil.WithMastery(1, 2))))

	m, ok := h.engine.ActiveMission(context.Background())
	require.True(t, ok)
	assert.Equal(t, 9, m.Day)
	assert.Equal(t, "Month 1 - Day 2", m.Title)
	assert.Equal(t, "D&C 84:33", m.Scripture)
}

func TestMutation_RollsBackOnStoreFailure(t *testing.T) {
	h := newHarness(t,
		seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))),
		withUoW(func(conn *sql.DB) db.UnitOfWork {
			return &testutil.FailOnNthExecUoW{DB: conn, FailOn: 3, Err: errInjected}
		}),
	)
	ctx := context.Background()

	_, err := h.engine.SaveReflection(ctx, 1, "will not stick")
	require.ErrorIs(t, err, errInjected)

	assert.Empty(t, h.engine.Reflection(ctx, 1), "cached state is not swapped on failure")
	p := h.stored(t)
	assert.False(t, p.ManualCompleted.Contains(1))
	entries, err := repository.NewSQLiteJournalRepo(h.db).ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, h.notifier.statuses)

	ev, ok := h.observer.find("save-reflection")
	require.True(t, ok)
	assert.False(t, ev.Success)
}

func TestNotifier_ReceivesCompletionStatus(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	h.notifier.err = errInjected
	ctx := context.Background()

	_, err := h.engine.SetUserName(ctx, "Sam")
	require.NoError(t, err)
	out, err := h.engine.CompleteMission(ctx)
	require.NoError(t, err, "notifier failures never fail the operation")
	require.True(t, out.OK())

	assert.Equal(t, []bool{false, true}, h.notifier.statuses)
	assert.Equal(t, h.dateKey(0), h.notifier.dates[1])

	ev, ok := h.observer.find("complete-mission")
	require.True(t, ok)
	assert.Equal(t, errInjected.Error(), ev.Fields["notify_error"])
}

func TestCorruptStoredField_FallsBackAndIsObserved(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeElder),
		testutil.WithManualDays(1, 2),
	)))
	ctx := context.Background()
	kv := repository.NewSQLiteKVStore(h.db)
	require.NoError(t, kv.Set(ctx, repository.KeyPrefix+"manualCompleted", "[1,2"))

	snap := h.engine.Snapshot(ctx)
	assert.Equal(t, domain.OfficeElder, snap.Office)
	assert.Empty(t, snap.ManualCompleted)

	ev, ok := h.observer.find("load-progress")
	require.True(t, ok)
	assert.Equal(t, 1, ev.Fields["corrupt_keys"])
}

func TestRefresh_PicksUpExternalWrites(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()
	require.NoError(t, h.engine.Load(ctx))

	changed, err := h.engine.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	other := testutil.NewTestProgress(testutil.WithOffice(domain.OfficeElder))
	require.NoError(t, repository.NewSQLiteProgressRepo(h.db).Save(ctx, other))

	changed, err = h.engine.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.OfficeElder, h.engine.Snapshot(ctx).Office)
}

func TestDayViews_DerivedStates(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(
		testutil.WithOffice(domain.OfficeDeacon),
		testutil.WithMastery(1, 3),
		testutil.WithManualRange(1, 7),
		testutil.WithGraceDays("2026-01-30", 8),
	)))

	views := h.engine.DayViews(context.Background())
	require.Len(t, views, progression.TotalDays)
	assert.Equal(t, progression.DayCompleted, views[0].State)
	assert.Equal(t, progression.DayExcused, views[7].State)
	assert.Equal(t, "2026-01-30", views[7].GraceDate)
	assert.Equal(t, progression.DayMissed, views[8].State)
	assert.Equal(t, progression.DayCurrent, views[9].State)
	assert.Equal(t, progression.DayLocked, views[10].State)
	assert.Equal(t, domain.Phase2, views[9].Phase)
	assert.Equal(t, 1, views[9].Month)
	assert.Equal(t, 3, views[9].DayInMonth)
}

func TestDebugTools(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()

	for want := 2; want <= 7; want++ {
		out, err := h.engine.DebugAdvanceDay(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, out.ActiveDay)
	}
	out, err := h.engine.DebugAdvanceDay(ctx)
	require.NoError(t, err)
	assert.True(t, out.Has(app.EventStarterFinished))
	assert.Equal(t, 8, out.ActiveDay)

	out, err = h.engine.DebugAdvanceDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, out.ActiveDay)
	assert.False(t, h.engine.IsCompletedToday(ctx), "debug completions are dated yesterday")

	_, err = h.engine.DebugToggleOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OfficeElder, h.engine.Snapshot(ctx).Office)
	_, err = h.engine.DebugToggleOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OfficeDeacon, h.engine.Snapshot(ctx).Office)
}

func TestDebugCompleteMonth(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()

	out, err := h.engine.DebugCompleteMonth(ctx)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, 7, out.ActiveDay, "the weekly reflection closes the Starter Week")
	assert.False(t, h.engine.IsCompletedToday(ctx))

	_, err = h.engine.SetOverallDay(ctx, 40)
	require.NoError(t, err)
	for _, want := range []int{64, 92} {
		out, err = h.engine.DebugCompleteMonth(ctx)
		require.NoError(t, err)
		require.True(t, out.OK())
		assert.True(t, out.Has(app.EventMonthAdvanced))
		assert.Equal(t, want, out.ActiveDay)
	}
	p := h.stored(t)
	assert.True(t, p.Mastery.Month2ReflectionComplete)
	assert.Equal(t, 91, p.LastCompletedDay)
	assert.Equal(t, h.dateKey(-1), p.LastActiveDate)
	assert.Empty(t, p.Badges, "badges are not awarded by the shortcut")

	out, err = h.engine.DebugCompleteMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, out.ActiveDay)
	assert.False(t, out.Has(app.EventMonthAdvanced))
	assert.False(t, h.stored(t).Mastery.MasteryComplete)
}
