package attendance

import "github.com/orayew2002/rast-attendance/domain"

// SelectAbsences marks exactly k of the working days absent, chosen uniformly
// without replacement. When k is zero or exceeds the number of working days
// nothing is marked: an over-request is ignored, not clamped.
//
// The returned mask is aligned with working.
func SelectAbsences(working []domain.CalendarDay, k int, rng Rand) []bool {
	n := len(working)
	absent := make([]bool, n)
	if k <= 0 || k > n {
		return absent
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates: the first k slots are the sample
	for i := range k {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		absent[idx[i]] = true
	}

	return absent
}
