package attendance

import (
	"time"

	"github.com/orayew2002/rast-attendance/domain"
)

const (
	arrivalHour   = 9
	departureHour = 18

	// arrival jitter is [-5, +10] minutes, departure [0, +10]
	arrivalEarliest = -5
	arrivalSpan     = 16
	departureSpan   = 11
)

// SynthesizeDay builds the sheet row for one calendar day. overtime is only
// read for attended working days.
func SynthesizeDay(day domain.CalendarDay, absent bool, overtime int, rng Rand) domain.DayRecord {
	rec := domain.DayRecord{
		Date:  day.Date,
		Kind:  day.Kind,
		Shift: domain.ShiftLabel,
	}

	switch {
	case day.Kind == domain.KindSunday:
		rec.Remark = domain.RemarkSunday
	case day.Kind == domain.KindHoliday:
		rec.Remark = day.Holiday
	case absent:
		rec.Absent = true
		rec.Remark = domain.RemarkAbsent
	default:
		rec.TimeIn = clock(arrivalHour, arrivalEarliest+rng.IntN(arrivalSpan))
		rec.TimeOut = clock(departureHour+overtime, rng.IntN(departureSpan))
		rec.Overtime = overtime
		rec.Remark = domain.RemarkOnTime
	}

	return rec
}

// clock formats hour:00 shifted by minutes; times past midnight wrap.
func clock(hour, minutes int) string {
	t := time.Date(2000, time.January, 1, hour, minutes, 0, 0, time.UTC)
	return t.Format(domain.ClockLayout)
}
