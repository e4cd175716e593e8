package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHabit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	out, err := h.engine.SetHabit(ctx, domain.Habit("fasting"), true)
	require.NoError(t, err)
	assert.Equal(t, app.RejectUnknownHabit, out.Reason)

	// 2026-02-02 is a Monday; Sunday was a full day.
	h.clock.AdvanceDays(-1)
	for _, habit := range domain.Habits {
		out, err = h.engine.SetHabit(ctx, habit, true)
		require.NoError(t, err)
		require.True(t, out.OK())
	}
	h.clock.AdvanceDays(1)

	out, err = h.engine.SetHabit(ctx, domain.HabitPrayer, true)
	require.NoError(t, err)
	require.True(t, out.OK(), "habits do not need an office")
	out, err = h.engine.SetHabit(ctx, domain.HabitScripture, true)
	require.NoError(t, err)
	require.True(t, out.OK())
	out, err = h.engine.SetHabit(ctx, domain.HabitScripture, false)
	require.NoError(t, err)
	require.True(t, out.OK())

	p := h.stored(t)
	assert.Equal(t, domain.HabitDay{Prayer: true}, p.HabitLog[h.dateKey(0)])
	assert.True(t, p.HabitLog[h.dateKey(-1)].Complete())

	s := h.engine.Snapshot(ctx)
	assert.Equal(t, domain.HabitDay{Prayer: true}, s.HabitsToday)
	assert.Equal(t, 1, s.WeekHabitDays)
}

func TestReset_ClearsHabits(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()

	_, err := h.engine.SetHabit(ctx, domain.HabitService, true)
	require.NoError(t, err)
	_, err = h.engine.Reset(ctx)
	require.NoError(t, err)

	assert.Empty(t, h.stored(t).HabitLog)
}

func TestStreak_CountsConsecutiveDailyReflections(t *testing.T) {
	h := newHarness(t, seeded(testutil.NewTestProgress(testutil.WithOffice(domain.OfficeDeacon))))
	ctx := context.Background()

	n, err := h.engine.Streak(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for day := 1; day <= 3; day++ {
		out, err := h.engine.SaveReflection(ctx, day, "Served at home.")
		require.NoError(t, err)
		require.True(t, out.OK())
		if day < 3 {
			h.clock.AdvanceDays(1)
		}
	}
	n, err = h.engine.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	h.clock.AdvanceDays(1)
	n, err = h.engine.Streak(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "the streak needs today's reflection")
}
