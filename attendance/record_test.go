package attendance

import (
	"testing"
	"time"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDay(t *testing.T) {
	date := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		day      domain.CalendarDay
		absent   bool
		overtime int
		vals     []int
		want     domain.DayRecord
	}{
		{
			name: "sunday",
			day:  domain.CalendarDay{Date: date, Kind: domain.KindSunday},
			want: domain.DayRecord{Date: date, Kind: domain.KindSunday, Shift: domain.ShiftLabel, Remark: "SUNDAY"},
		},
		{
			name: "holiday",
			day:  domain.CalendarDay{Date: date, Kind: domain.KindHoliday, Holiday: "Kashmir Day"},
			want: domain.DayRecord{Date: date, Kind: domain.KindHoliday, Shift: domain.ShiftLabel, Remark: "Kashmir Day"},
		},
		{
			name:     "absent ignores overtime",
			day:      domain.CalendarDay{Date: date},
			absent:   true,
			overtime: 2,
			want:     domain.DayRecord{Date: date, Shift: domain.ShiftLabel, Remark: "Absent", Absent: true},
		},
		{
			name: "earliest arrival latest departure",
			day:  domain.CalendarDay{Date: date},
			vals: []int{0, 10},
			want: domain.DayRecord{Date: date, Shift: domain.ShiftLabel, TimeIn: "08:55", TimeOut: "18:10", Remark: "On Time"},
		},
		{
			name:     "overtime shifts departure",
			day:      domain.CalendarDay{Date: date},
			overtime: 2,
			vals:     []int{15, 0},
			want: domain.DayRecord{
				Date: date, Shift: domain.ShiftLabel, TimeIn: "09:10", TimeOut: "20:00", Overtime: 2, Remark: "On Time",
			},
		},
		{
			name:     "relaxed overtime wraps past midnight",
			day:      domain.CalendarDay{Date: date},
			overtime: 7,
			vals:     []int{5, 3},
			want: domain.DayRecord{
				Date: date, Shift: domain.ShiftLabel, TimeIn: "09:00", TimeOut: "01:03", Overtime: 7, Remark: "On Time",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeDay(tt.day, tt.absent, tt.overtime, &scriptedRand{vals: tt.vals})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeDayJitterBounds(t *testing.T) {
	rng := NewRand(99)
	day := domain.CalendarDay{Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}

	for range 500 {
		rec := SynthesizeDay(day, false, 1, rng)

		in, err := time.Parse(domain.ClockLayout, rec.TimeIn)
		assert.NoError(t, err)
		out, err := time.Parse(domain.ClockLayout, rec.TimeOut)
		assert.NoError(t, err)

		inMin := in.Hour()*60 + in.Minute()
		outMin := out.Hour()*60 + out.Minute()
		assert.GreaterOrEqual(t, inMin, 9*60-5)
		assert.LessOrEqual(t, inMin, 9*60+10)
		assert.GreaterOrEqual(t, outMin, 19*60)
		assert.LessOrEqual(t, outMin, 19*60+10)
	}
}
