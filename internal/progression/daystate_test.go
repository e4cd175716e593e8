package progression

import (
	"testing"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	manual := domain.DaySet{1, 2, 12}
	grace := map[int]string{3: "2026-02-01", 10: "2026-02-01", 15: "2026-02-01"}
	active := 10

	assert.Equal(t, DayCompleted, StateOf(1, active, manual, grace))
	assert.Equal(t, DayExcused, StateOf(3, active, manual, grace))
	assert.Equal(t, DayMissed, StateOf(4, active, manual, grace))
	assert.Equal(t, DayCurrent, StateOf(10, active, manual, grace), "active day wins over grace")
	assert.Equal(t, DayCompleted, StateOf(12, active, manual, grace), "manual wins over locked")
	assert.Equal(t, DayExcused, StateOf(15, active, manual, grace))
	assert.Equal(t, DayLocked, StateOf(16, active, manual, grace))
}

func TestStateOf_ExactlyOneStatePerDay(t *testing.T) {
	manual := domain.DaySet{5, 6, 40}
	grace := map[int]string{6: "x", 7: "x", 50: "x"}
	counts := map[DayState]int{}
	for day := 1; day <= TotalDays; day++ {
		counts[StateOf(day, 30, manual, grace)]++
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, TotalDays, total)
	assert.Equal(t, 1, counts[DayCurrent])
}
