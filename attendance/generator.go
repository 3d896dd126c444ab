package attendance

import (
	"time"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/excel"
)

// ProgressFunc receives (i+1)/total after each employee.
type ProgressFunc func(fraction float64)

// Request is everything one generation run consumes.
type Request struct {
	Company  string
	Year     int
	Month    int
	Holidays []domain.Holiday
	Roster   []domain.Employee
}

// Generator turns a roster into per-employee attendance months. It holds no
// state between calls other than its random source.
type Generator struct {
	rng      Rand
	progress ProgressFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a Generator drawing from rng.
func New(rng Rand, opts ...Option) *Generator {
	g := &Generator{rng: rng}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate processes the roster in order. One employee's bad fields never
// stop the others.
func (g *Generator) Generate(req Request) domain.Report {
	holidays := domain.NewHolidays(req.Year, req.Month, req.Holidays)
	names := excel.NewSheetNamer(excel.IndexSheet)

	report := domain.Report{
		Company:   req.Company,
		Year:      req.Year,
		Month:     req.Month,
		Employees: make([]domain.EmployeeReport, 0, len(req.Roster)),
		Index:     make([]domain.IndexEntry, 0, len(req.Roster)),
	}

	total := len(req.Roster)
	for i, emp := range req.Roster {
		month := Partition(req.Year, req.Month, holidays)
		report.Employees = append(report.Employees, g.GenerateEmployee(emp, month))
		report.Index = append(report.Index, domain.IndexEntry{
			Seq:       emp.Seq,
			Code:      emp.Code,
			Name:      emp.Name,
			SheetName: names.Next(emp.Code, emp.Name),
			Absent:    emp.RequestedAbsences(),
			Overtime:  emp.OvertimeHours,
		})

		if g.progress != nil {
			g.progress(float64(i+1) / float64(total))
		}
	}

	return report
}

// GenerateEmployee runs absence selection, overtime distribution and row
// synthesis for one employee over an already partitioned month.
func (g *Generator) GenerateEmployee(emp domain.Employee, month Month) domain.EmployeeReport {
	working := month.Working()
	absent := SelectAbsences(working, emp.RequestedAbsences(), g.rng)

	attended := 0
	absentOn := make(map[time.Time]bool, len(working))
	for i, d := range working {
		if absent[i] {
			absentOn[d.Date] = true
			continue
		}
		attended++
	}

	schedule := DistributeOvertime(emp.OvertimeHours, attended, g.rng)

	records := make([]domain.DayRecord, 0, len(month.Days))
	next := 0
	for _, day := range month.Days {
		isAbsent := day.Kind == domain.KindWorking && absentOn[day.Date]
		overtime := 0
		if day.Kind == domain.KindWorking && !isAbsent {
			overtime = schedule[next]
			next++
		}
		records = append(records, SynthesizeDay(day, isAbsent, overtime, g.rng))
	}

	return domain.EmployeeReport{
		Employee: emp,
		Records:  records,
		Summary:  summarize(month, attended, len(working)-attended, schedule),
	}
}

func summarize(month Month, present, absent int, schedule []int) domain.EmployeeSummary {
	overtime := sum(schedule)
	standard := present * domain.StandardHoursPerDay
	return domain.EmployeeSummary{
		DaysInMonth:   len(month.Days),
		Sundays:       month.Sundays,
		Holidays:      month.Holidays,
		WorkingDays:   month.WorkingDays(),
		PresentDays:   present,
		AbsentDays:    absent,
		OvertimeHours: overtime,
		StandardHours: standard,
		PayableHours:  standard + overtime,
	}
}
