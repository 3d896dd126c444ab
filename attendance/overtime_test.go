package attendance

import (
	"slices"
	"testing"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeOvertimeEdges(t *testing.T) {
	assert.Empty(t, DistributeOvertime(10, 0, NewRand(1)))
	assert.Equal(t, []int{0, 0, 0}, DistributeOvertime(0, 3, NewRand(1)))
	assert.Equal(t, []int{0, 0}, DistributeOvertime(-4, 2, NewRand(1)))
}

func TestDistributeOvertimeWithinCap(t *testing.T) {
	cases := []struct{ required, days int }{
		{1, 1},
		{2, 1},
		{3, 3},
		{5, 10},
		{10, 22},
		{12, 26},
	}

	for _, c := range cases {
		for seed := uint64(1); seed <= 50; seed++ {
			schedule := DistributeOvertime(c.required, c.days, NewRand(seed))

			require.Len(t, schedule, c.days)
			assert.Equal(t, c.required, sum(schedule), "R=%d N=%d seed=%d", c.required, c.days, seed)
			assert.LessOrEqual(t, slices.Max(schedule), MaxOvertimePerDay)
			assert.GreaterOrEqual(t, slices.Min(schedule), 0)
		}
	}
}

func TestDistributeOvertimeNeverExceedsRequestUnderCap(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		schedule := DistributeOvertime(40, 20, NewRand(seed))
		assert.LessOrEqual(t, sum(schedule), 40)
		assert.LessOrEqual(t, slices.Max(schedule), MaxOvertimePerDay)
	}
}

func TestDistributeOvertimeRelaxesCap(t *testing.T) {
	cases := []struct{ required, days int }{
		{5, 2},
		{7, 1},
		{30, 10},
		{100, 22},
	}

	for _, c := range cases {
		for seed := uint64(1); seed <= 20; seed++ {
			schedule := DistributeOvertime(c.required, c.days, NewRand(seed))

			require.Len(t, schedule, c.days)
			assert.Equal(t, c.required, sum(schedule))
			assert.Greater(t, slices.Max(schedule), MaxOvertimePerDay)
			assert.GreaterOrEqual(t, slices.Min(schedule), MaxOvertimePerDay)
		}
	}
}

func TestDistributeOvertimeSingleDayFallback(t *testing.T) {
	assert.Equal(t, []int{7}, DistributeOvertime(7, 1, &scriptedRand{vals: []int{0}}))
}

func TestDistributeOvertimeShortfallNotMadeUp(t *testing.T) {
	// R=3 over 2 days gives 15 attempts. The script always picks day 0,
	// so after the cap is reached every attempt is wasted.
	schedule := DistributeOvertime(3, 2, &scriptedRand{vals: []int{0, 2}})

	assert.Equal(t, []int{2, 0}, schedule)
}

func TestDistributeOvertimeClampsHugeRequest(t *testing.T) {
	schedule := DistributeOvertime(3_000_000_000, 20, NewRand(1))

	require.Len(t, schedule, 20)
	assert.Equal(t, domain.MaxOvertimeHours, sum(schedule))
}
