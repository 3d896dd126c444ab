package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// ShiftLabel is printed in the shift column of every day row.
	ShiftLabel = "(0900:1800)"

	// StandardHoursPerDay is the payable length of one attended day.
	StandardHoursPerDay = 9

	// FallbackDaysInMonth is used when year/month do not name a real month.
	FallbackDaysInMonth = 30

	// MaxOvertimeHours bounds the requested overtime of one employee: every
	// hour of the longest month.
	MaxOvertimeHours = 24 * 31

	DateLayout  = "02-Jan-06"
	ClockLayout = "15:04"
)

// Remarks written into the last column of a day row.
const (
	RemarkSunday = "SUNDAY"
	RemarkAbsent = "Absent"
	RemarkOnTime = "On Time"
)

// Employee is one roster row as uploaded by the user.
type Employee struct {
	Seq           string
	Code          string
	Name          string
	OvertimeHours int
	// AbsentDays is kept raw; RequestedAbsences coerces it.
	AbsentDays string
}

// RequestedAbsences returns the absence count, or 0 when the raw value is
// blank, unparseable, negative, not finite or above math.MaxInt32.
func (e Employee) RequestedAbsences() int {
	raw := strings.TrimSpace(e.AbsentDays)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > math.MaxInt32 {
			return 0
		}
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// DayKind classifies a calendar day. Exactly one kind holds per day.
type DayKind int

const (
	KindWorking DayKind = iota
	KindSunday
	KindHoliday
)

func (k DayKind) String() string {
	switch k {
	case KindSunday:
		return "sunday"
	case KindHoliday:
		return "holiday"
	default:
		return "working"
	}
}

// CalendarDay is one classified day of the target month.
type CalendarDay struct {
	Date    time.Time
	Kind    DayKind
	Holiday string
}

// DayRecord is one output row of an attendance sheet.
type DayRecord struct {
	Date     time.Time
	Kind     DayKind
	Shift    string
	TimeIn   string
	TimeOut  string
	Overtime int
	Remark   string
	Absent   bool
}

// DateLabel formats the date the way the sheet prints it (e.g. 01-Feb-26).
func (r DayRecord) DateLabel() string {
	return r.Date.Format(DateLayout)
}

// OvertimeLabel is blank for zero overtime.
func (r DayRecord) OvertimeLabel() string {
	if r.Overtime <= 0 {
		return ""
	}
	return strconv.Itoa(r.Overtime)
}

// Attended reports whether the row carries clock times.
func (r DayRecord) Attended() bool {
	return r.Kind == KindWorking && !r.Absent
}

// EmployeeSummary holds the footing totals of one sheet.
type EmployeeSummary struct {
	DaysInMonth   int `json:"days_in_month"`
	Sundays       int `json:"sundays"`
	Holidays      int `json:"holidays"`
	WorkingDays   int `json:"working_days"`
	PresentDays   int `json:"present_days"`
	AbsentDays    int `json:"absent_days"`
	OvertimeHours int `json:"overtime_hours"`
	StandardHours int `json:"standard_hours"`
	PayableHours  int `json:"payable_hours"`
}

// IndexEntry is one row of the roster-level index. Absent and Overtime echo
// the requested values, not the generated ones.
type IndexEntry struct {
	Seq       string `json:"seq"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SheetName string `json:"sheet_name"`
	Absent    int    `json:"absent"`
	Overtime  int    `json:"overtime_hours"`
}

// EmployeeReport is the generated month for a single employee.
type EmployeeReport struct {
	Employee Employee
	Records  []DayRecord
	Summary  EmployeeSummary
}

// Report is everything the serializers need to render one request.
type Report struct {
	Company   string
	Year      int
	Month     int
	Employees []EmployeeReport
	Index     []IndexEntry
}

// MonthLabel returns e.g. "AUGUST 2025"; invalid months fall back to the
// numeric form.
func (r Report) MonthLabel() string {
	if r.Month < 1 || r.Month > 12 {
		return strconv.Itoa(r.Month) + "/" + strconv.Itoa(r.Year)
	}
	return strings.ToUpper(time.Month(r.Month).String()) + " " + strconv.Itoa(r.Year)
}

// Title is the report title line of every employee sheet.
func (r Report) Title() string {
	return "ATTENDANCE SHEETS FOR THE MONTH OF " + r.MonthLabel()
}

// DaysInMonth returns the number of days of the given month, computed as the
// day before the first day of the following month. Invalid input yields
// FallbackDaysInMonth.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return FallbackDaysInMonth
	}
	first := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, -1).Day()
}
