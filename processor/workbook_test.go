package processor

import (
	"bytes"
	"testing"
	"time"

	"github.com/orayew2002/rast-attendance/attendance"
	"github.com/orayew2002/rast-attendance/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) domain.Report {
	t.Helper()
	req := attendance.Request{
		Company: "ABC COMPANY",
		Year:    2026,
		Month:   2,
		Holidays: []domain.Holiday{
			{Date: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), Name: "Kashmir Day"},
		},
		Roster: []domain.Employee{
			{Seq: "1", Code: "E01", Name: "Ali", OvertimeHours: 10, AbsentDays: "2"},
			{Seq: "2", Code: "E02", Name: "Bea: Lead", OvertimeHours: 0},
		},
	}
	return attendance.New(attendance.NewRand(7)).Generate(req)
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestRenderWorkbookSheets(t *testing.T) {
	data, err := RenderWorkbook(sampleReport(t))
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{"Index", "E01_Ali", "E02_Bea Lead"}, f.GetSheetList())
}

func TestRenderWorkbookEmployeeSheet(t *testing.T) {
	report := sampleReport(t)
	data, err := RenderWorkbook(report)
	require.NoError(t, err)

	f := open(t, data)
	sheet := "E01_Ali"

	assert.Equal(t, "Company Name:", cell(t, f, sheet, "A1"))
	assert.Equal(t, "ABC COMPANY", cell(t, f, sheet, "B1"))
	assert.Equal(t, "ATTENDANCE SHEETS FOR THE MONTH OF FEBRUARY 2026", cell(t, f, sheet, "B2"))
	assert.Equal(t, "Ali", cell(t, f, sheet, "B3"))
	assert.Equal(t, "E01", cell(t, f, sheet, "B4"))

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	var ranges []string
	for _, m := range merged {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.ElementsMatch(t, []string{"B1:F1", "B2:F2", "B3:F3", "B4:F4"}, ranges)

	assert.Equal(t, "DATE", cell(t, f, sheet, "A6"))
	assert.Equal(t, "REMARKS", cell(t, f, sheet, "F6"))

	assert.Equal(t, "01-Feb-26", cell(t, f, sheet, "A7"))
	assert.Equal(t, "(0900:1800)", cell(t, f, sheet, "B7"))
	assert.Equal(t, "SUNDAY", cell(t, f, sheet, "F7"))
	assert.Equal(t, "Kashmir Day", cell(t, f, sheet, "F11"))
	assert.Equal(t, "28-Feb-26", cell(t, f, sheet, "A34"))

	for i, rec := range report.Employees[0].Records {
		row := 7 + i
		assert.Equal(t, rec.Remark, cell(t, f, sheet, "F"+itoa(row)))
		assert.Equal(t, rec.TimeIn, cell(t, f, sheet, "C"+itoa(row)))
		assert.Equal(t, rec.OvertimeLabel(), cell(t, f, sheet, "E"+itoa(row)))
	}

	s := report.Employees[0].Summary
	assert.Equal(t, "SUMMARY:", cell(t, f, sheet, "A36"))
	assert.Equal(t, "Total Days in Month", cell(t, f, sheet, "A37"))
	assert.Equal(t, "28", cell(t, f, sheet, "B37"))
	assert.Equal(t, "4", cell(t, f, sheet, "B38"))
	assert.Equal(t, "1", cell(t, f, sheet, "B39"))
	assert.Equal(t, itoa(s.PresentDays), cell(t, f, sheet, "B40"))
	assert.Equal(t, "2", cell(t, f, sheet, "B41"))
	assert.Equal(t, "", cell(t, f, sheet, "A43"))
	assert.Equal(t, "Total Standard Hours", cell(t, f, sheet, "A44"))
	assert.Equal(t, "("+itoa(s.PresentDays)+" Days x 9 Hrs)", cell(t, f, sheet, "C44"))
	assert.Equal(t, "(Sum of OT HRS)", cell(t, f, sheet, "C45"))
	assert.Equal(t, itoa(s.PayableHours), cell(t, f, sheet, "B46"))
}

func TestRenderWorkbookIndex(t *testing.T) {
	data, err := RenderWorkbook(sampleReport(t))
	require.NoError(t, err)

	f := open(t, data)

	assert.Equal(t, "S. No", cell(t, f, "Index", "A1"))
	assert.Equal(t, "OT Hours", cell(t, f, "Index", "E1"))
	assert.Equal(t, "1", cell(t, f, "Index", "A2"))
	assert.Equal(t, "E01", cell(t, f, "Index", "B2"))
	assert.Equal(t, "2", cell(t, f, "Index", "D2"))
	assert.Equal(t, "10", cell(t, f, "Index", "E2"))

	formula, err := f.GetCellFormula("Index", "C3")
	require.NoError(t, err)
	assert.Equal(t, `HYPERLINK("#'E02_Bea Lead'!A1","Bea: Lead")`, formula)
}

func TestRenderWorkbookEmptyRoster(t *testing.T) {
	data, err := RenderWorkbook(domain.Report{Company: "X", Year: 2026, Month: 2})
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{"Index"}, f.GetSheetList())
	assert.Equal(t, "", cell(t, f, "Index", "A2"))
}

func TestRenderWorkbookMismatchedIndex(t *testing.T) {
	report := sampleReport(t)
	report.Index = report.Index[:1]

	_, err := RenderWorkbook(report)
	assert.Error(t, err)
}

func TestRenderWorkbookKeepsBracketedText(t *testing.T) {
	req := attendance.Request{
		Company: "ACME [1:1]",
		Year:    2026,
		Month:   2,
		Holidays: []domain.Holiday{
			{Date: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), Name: "Day [3:2]"},
		},
		Roster: []domain.Employee{
			{Seq: "1", Code: "E01", Name: "Ali [0:2]", OvertimeHours: 4},
		},
	}
	report := attendance.New(attendance.NewRand(1)).Generate(req)

	data, err := RenderWorkbook(report)
	require.NoError(t, err)

	f := open(t, data)
	sheet := report.Index[0].SheetName

	assert.Equal(t, "ACME [1:1]", cell(t, f, sheet, "B1"))
	assert.Equal(t, "Ali [0:2]", cell(t, f, sheet, "B3"))
	assert.Equal(t, "Day [3:2]", cell(t, f, sheet, "F11"))
	assert.Equal(t, "On Time", cell(t, f, sheet, "F12"))

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	var ranges []string
	for _, m := range merged {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.ElementsMatch(t, []string{"B1:F1", "B2:F2", "B3:F3", "B4:F4"}, ranges)
}
