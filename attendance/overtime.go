package attendance

import "github.com/orayew2002/rast-attendance/domain"

const (
	// MaxOvertimePerDay is the per-day cap honored by the random phase.
	MaxOvertimePerDay = 2

	attemptsPerHour = 5
)

// increments biases proposals toward a single hour.
var increments = [...]int{1, 1, 2}

// DistributeOvertime spreads required hours over days attended days.
//
// The first phase proposes random increments to random days for at most
// 5*required attempts, never letting a day pass MaxOvertimePerDay. It stops
// when the total is reached, when every day is capped, or when attempts run
// out; an exhausted budget leaves the shortfall in place.
//
// The second phase runs only when the request cannot fit under the cap
// (required > MaxOvertimePerDay*days). It raises every day to the cap and then
// adds the remaining hours one at a time to random days, ignoring the cap, so
// the returned schedule always sums to required in that regime.
//
// required is clamped to [0, domain.MaxOvertimeHours].
func DistributeOvertime(required, days int, rng Rand) []int {
	if days <= 0 {
		return nil
	}
	required = min(max(required, 0), domain.MaxOvertimeHours)

	schedule := make([]int, days)
	total := distributeCapped(schedule, required, rng)

	if total < required && required > MaxOvertimePerDay*days {
		relaxCap(schedule, total, required, rng)
	}

	return schedule
}

func distributeCapped(schedule []int, required int, rng Rand) int {
	total := 0
	for attempt := 0; attempt < attemptsPerHour*required && total < required; attempt++ {
		day := rng.IntN(len(schedule))
		add := increments[rng.IntN(len(increments))]
		if total+add > required {
			add = required - total
		}

		if schedule[day] < MaxOvertimePerDay {
			add = min(add, MaxOvertimePerDay-schedule[day])
			schedule[day] += add
			total += add
		}

		if allCapped(schedule) {
			break
		}
	}
	return total
}

func relaxCap(schedule []int, total, required int, rng Rand) {
	for i, h := range schedule {
		if h < MaxOvertimePerDay {
			total += MaxOvertimePerDay - h
			schedule[i] = MaxOvertimePerDay
		}
	}
	for ; total < required; total++ {
		schedule[rng.IntN(len(schedule))]++
	}
}

func allCapped(schedule []int) bool {
	for _, h := range schedule {
		if h < MaxOvertimePerDay {
			return false
		}
	}
	return true
}

func sum(hours []int) int {
	total := 0
	for _, h := range hours {
		total += h
	}
	return total
}
