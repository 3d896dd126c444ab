package attendance

import (
	"time"

	"github.com/orayew2002/rast-attendance/domain"
)

// Month is the classified calendar of one target month.
type Month struct {
	Year     int
	Month    int
	Days     []domain.CalendarDay
	Sundays  int
	Holidays int
}

// Partition classifies every day of year/month. Sunday takes precedence over
// a holiday on the same date, so such a day is counted only as a Sunday.
func Partition(year, month int, holidays domain.Holidays) Month {
	n := domain.DaysInMonth(year, month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	m := Month{Year: year, Month: month, Days: make([]domain.CalendarDay, 0, n)}
	for i := range n {
		date := first.AddDate(0, 0, i)
		day := domain.CalendarDay{Date: date}

		if date.Weekday() == time.Sunday {
			day.Kind = domain.KindSunday
			m.Sundays++
		} else if name, ok := holidays.Lookup(date); ok {
			day.Kind = domain.KindHoliday
			day.Holiday = name
			m.Holidays++
		}

		m.Days = append(m.Days, day)
	}

	return m
}

// Working returns the working days in calendar order.
func (m Month) Working() []domain.CalendarDay {
	var days []domain.CalendarDay
	for _, d := range m.Days {
		if d.Kind == domain.KindWorking {
			days = append(days, d)
		}
	}
	return days
}

// WorkingDays is len(m.Working()) without the allocation.
func (m Month) WorkingDays() int {
	return len(m.Days) - m.Sundays - m.Holidays
}
