package progression

import (
	"testing"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyGap_Boundaries(t *testing.T) {
	tests := []struct {
		gap  int
		want domain.RecoveryKind
	}{
		{-1, domain.RecoveryNone},
		{0, domain.RecoveryNone},
		{1, domain.RecoveryToast},
		{2, domain.RecoveryToast},
		{3, domain.RecoveryCatchUp},
		{6, domain.RecoveryCatchUp},
		{7, domain.RecoveryRecenter},
		{40, domain.RecoveryRecenter},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyGap(tc.gap), "gap %d", tc.gap)
	}
}

func TestGapDays_IgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2026, 5, 1, 23, 59, 0, 0, time.Local)
	today := time.Date(2026, 5, 2, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, GapDays(today, last))
	assert.Equal(t, 0, GapDays(last, last))
	assert.Equal(t, 4, GapDays(time.Date(2026, 5, 5, 8, 0, 0, 0, time.Local), last))
}

func TestGapDays_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	last := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	today := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, GapDays(today, last))
}

func TestTargetDay_CapsAt120(t *testing.T) {
	assert.Equal(t, 14, TargetDay(10, 4))
	assert.Equal(t, 120, TargetDay(118, 9))
}

func TestMissedDays(t *testing.T) {
	manual := domain.DaySet{1, 2, 4}
	assert.Equal(t, []int{3, 5}, MissedDays(6, manual))
	assert.Empty(t, MissedDays(1, manual))
}

func TestSkippedDays(t *testing.T) {
	assert.Equal(t, []int{11, 12, 13}, SkippedDays(11, 14, domain.DaySet{1, 10}))
	assert.Equal(t, []int{11, 13}, SkippedDays(11, 14, domain.DaySet{12}))
	assert.Empty(t, SkippedDays(14, 14, nil))
}

func TestWelcomeMessage(t *testing.T) {
	assert.Equal(t, "Welcome back, Brother. We missed you yesterday.", WelcomeMessage("  "))
	assert.Equal(t, "Welcome back, Sam. We missed you yesterday.", WelcomeMessage("Sam"))
}
