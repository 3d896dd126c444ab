package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/excel"
	"github.com/xuri/excelize/v2"
)

// ---------- ReplaceHandler ----------

// ReplaceHandler accumulates key→value pairs and registers a single shared
// handler for all of them. Because the registry stops at the first matched
// handler per cell, sharing one handler ensures ALL pairs are replaced in one
// pass, even when a cell contains several keys at once.
//
// Usage:
//
//	rh := template.NewReplaceHandler()
//	rh.Add("{{company}}", "ABC COMPANY")
//	rh.Add("{{employee_code}}", "E01")
//	rh.Register(registry)
type ReplaceHandler struct {
	pairs []replacePair
}

type replacePair struct{ key, val string }

// NewReplaceHandler creates an empty ReplaceHandler.
func NewReplaceHandler() *ReplaceHandler {
	return &ReplaceHandler{}
}

// Add appends a key→val pair. Returns h so calls can be chained.
func (h *ReplaceHandler) Add(key, val string) *ReplaceHandler {
	h.pairs = append(h.pairs, replacePair{key, val})
	return h
}

// Register registers h into r for every key added via Add.
func (h *ReplaceHandler) Register(r *Registry) {
	for _, p := range h.pairs {
		r.Register(p.key, h.apply)
	}
}

func (h *ReplaceHandler) apply(f *excelize.File, sheet string, row, col int, value string) error {
	cell := excel.CellName(row, col)

	styleID, _ := f.GetCellStyle(sheet, cell)

	replaced := value
	for _, p := range h.pairs {
		replaced = strings.ReplaceAll(replaced, p.key, p.val)
	}

	if err := f.SetCellStr(sheet, cell, replaced); err != nil {
		return fmt.Errorf("replace handler: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("restore style: %w", err)
		}
	}

	return nil
}

// RegisterHeaderHandlers fills the caption block of an employee sheet.
func RegisterHeaderHandlers(r *Registry, report domain.Report, emp domain.Employee) {
	NewReplaceHandler().
		Add(KeyCompany, report.Company).
		Add(KeyTitle, report.Title()).
		Add(KeyEmployeeName, emp.Name).
		Add(KeyEmployeeCode, emp.Code).
		Register(r)
}

// ---------- {{days}} ----------

// RegisterDaysHandler registers the {{days}} handler. It expands the
// placeholder row into one row per record, pushing everything below down.
func RegisterDaysHandler(r *Registry, sm *StyleManager, records []domain.DayRecord) {
	r.Register(KeyDays, func(f *excelize.File, sheet string, row, col int, _ string) error {
		return writeDays(f, sm, sheet, row, col, records)
	})
}

func writeDays(f *excelize.File, sm *StyleManager, sheet string, row, col int, records []domain.DayRecord) error {
	if len(records) == 0 {
		return f.SetCellStr(sheet, excel.CellName(row, col), "")
	}

	if len(records) > 1 {
		// row is 0-based: the placeholder sits on sheet row row+1
		if err := f.InsertRows(sheet, row+2, len(records)-1); err != nil {
			return fmt.Errorf("insert day rows: %w", err)
		}
	}

	centered, err := sm.Centered()
	if err != nil {
		return fmt.Errorf("day style: %w", err)
	}
	right, err := sm.Right()
	if err != nil {
		return fmt.Errorf("day style: %w", err)
	}

	for i, rec := range records {
		if err := writeDayRow(f, sheet, row+i, col, rec, centered, right); err != nil {
			return fmt.Errorf("day %s: %w", rec.DateLabel(), err)
		}
	}

	return nil
}

func writeDayRow(f *excelize.File, sheet string, row, col int, rec domain.DayRecord, centered, right int) error {
	values := []string{rec.DateLabel(), rec.Shift, rec.TimeIn, rec.TimeOut, "", rec.Remark}
	const otCol = 4

	for c, val := range values {
		cell := excel.CellName(row, col+c)

		var err error
		if c == otCol && rec.Overtime > 0 {
			err = f.SetCellInt(sheet, cell, int64(rec.Overtime))
		} else {
			err = f.SetCellStr(sheet, cell, val)
		}
		if err != nil {
			return err
		}

		style := centered
		if c == otCol {
			style = right
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

// ---------- {{summary}} ----------

type footRow struct {
	label string
	value int
	note  string
}

func footing(s domain.EmployeeSummary) []footRow {
	return []footRow{
		{label: "Total Days in Month", value: s.DaysInMonth},
		{label: "Sundays", value: s.Sundays},
		{label: "Gazetted Holidays", value: s.Holidays},
		{label: "Total Present Days", value: s.PresentDays},
		{label: "Absent", value: s.AbsentDays},
		{label: "Over Time Hrs.", value: s.OvertimeHours},
		{},
		{
			label: "Total Standard Hours",
			value: s.StandardHours,
			note:  fmt.Sprintf("(%d Days x %d Hrs)", s.PresentDays, domain.StandardHoursPerDay),
		},
		{label: "Total OT Hours", value: s.OvertimeHours, note: "(Sum of OT HRS)"},
		{label: "Total Payable Hours", value: s.PayableHours},
	}
}

// RegisterSummaryHandler registers the {{summary}} handler that writes the
// footing block starting at the placeholder cell.
func RegisterSummaryHandler(r *Registry, sm *StyleManager, summary domain.EmployeeSummary) {
	r.Register(KeySummary, func(f *excelize.File, sheet string, row, col int, _ string) error {
		return writeSummary(f, sm, sheet, row, col, summary)
	})
}

func writeSummary(f *excelize.File, sm *StyleManager, sheet string, row, col int, s domain.EmployeeSummary) error {
	labelStyle, err := sm.BoldBordered()
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}
	valueStyle, err := sm.Right()
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}

	head := excel.CellName(row, col)
	if err := f.SetCellStr(sheet, head, "SUMMARY:"); err != nil {
		return fmt.Errorf("summary caption: %w", err)
	}
	if err := f.SetCellStyle(sheet, head, head, labelStyle); err != nil {
		return fmt.Errorf("summary caption style: %w", err)
	}

	for i, fr := range footing(s) {
		if fr.label == "" {
			continue
		}
		r := row + 1 + i

		labelCell := excel.CellName(r, col)
		valueCell := excel.CellName(r, col+1)
		if err := f.SetCellStr(sheet, labelCell, fr.label); err != nil {
			return fmt.Errorf("summary %q: %w", fr.label, err)
		}
		if err := f.SetCellInt(sheet, valueCell, int64(fr.value)); err != nil {
			return fmt.Errorf("summary %q: %w", fr.label, err)
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, labelStyle); err != nil {
			return err
		}

		last := valueCell
		if fr.note != "" {
			last = excel.CellName(r, col+2)
			if err := f.SetCellStr(sheet, last, fr.note); err != nil {
				return fmt.Errorf("summary %q note: %w", fr.label, err)
			}
		}
		if err := f.SetCellStyle(sheet, valueCell, last, valueStyle); err != nil {
			return err
		}
	}

	return nil
}

// ---------- {{index}} ----------

// RegisterIndexHandler registers the {{index}} handler that writes one row
// per employee, the name linking to the employee's sheet.
func RegisterIndexHandler(r *Registry, sm *StyleManager, entries []domain.IndexEntry) {
	r.Register(KeyIndex, func(f *excelize.File, sheet string, row, col int, _ string) error {
		return writeIndex(f, sm, sheet, row, col, entries)
	})
}

func writeIndex(f *excelize.File, sm *StyleManager, sheet string, row, col int, entries []domain.IndexEntry) error {
	if len(entries) == 0 {
		return f.SetCellStr(sheet, excel.CellName(row, col), "")
	}

	centered, err := sm.Centered()
	if err != nil {
		return fmt.Errorf("index style: %w", err)
	}
	link, err := sm.Link()
	if err != nil {
		return fmt.Errorf("index style: %w", err)
	}

	for i, e := range entries {
		r := row + i

		if err := setNumberOrString(f, sheet, excel.CellName(r, col), e.Seq); err != nil {
			return fmt.Errorf("index %s: %w", e.Code, err)
		}
		if err := f.SetCellStr(sheet, excel.CellName(r, col+1), e.Code); err != nil {
			return fmt.Errorf("index %s: %w", e.Code, err)
		}
		nameCell := excel.CellName(r, col+2)
		if err := f.SetCellFormula(sheet, nameCell, excel.InternalLink(e.SheetName, e.Name)); err != nil {
			return fmt.Errorf("index %s link: %w", e.Code, err)
		}
		if err := f.SetCellInt(sheet, excel.CellName(r, col+3), int64(e.Absent)); err != nil {
			return fmt.Errorf("index %s: %w", e.Code, err)
		}
		if err := f.SetCellInt(sheet, excel.CellName(r, col+4), int64(e.Overtime)); err != nil {
			return fmt.Errorf("index %s: %w", e.Code, err)
		}

		if err := f.SetCellStyle(sheet, excel.CellName(r, col), excel.CellName(r, col+4), centered); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, nameCell, nameCell, link); err != nil {
			return err
		}
	}

	return nil
}

func setNumberOrString(f *excelize.File, sheet, cell, value string) error {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return f.SetCellInt(sheet, cell, int64(n))
	}
	return f.SetCellStr(sheet, cell, value)
}

// ---------- RegisterMergeHandler ----------

// mergeCodePat only matches a code that ends the value, so brackets inside
// user text placed before it survive.
var mergeCodePat = regexp.MustCompile(`\[(\d+):(\d+)\]$`)

// RegisterMergeHandler registers a handler that detects a trailing
// [extraRows:extraCols] code, strips it, and merges the cell with its neighbours.
//
//	[0:4] → merge 4 cols to the right (B:F for a value in column B)
//	[1:0] → merge with 1 row below
//	[0:0] → strip code only, no merge
//
// Run this in the last pass, after all row insertions are done, and only over
// layout-owned rows (see CaptionRows): user text can end in a code too.
func RegisterMergeHandler(r *Registry) {
	r.Register("[", handleMergeCode)
}

func handleMergeCode(f *excelize.File, sheet string, row, col int, value string) error {
	m := mergeCodePat.FindStringSubmatch(value)
	if m == nil {
		return nil
	}

	extraRows, _ := strconv.Atoi(m[1])
	extraCols, _ := strconv.Atoi(m[2])

	cleaned := value[:len(value)-len(m[0])]

	cell := excel.CellName(row, col)
	styleID, _ := f.GetCellStyle(sheet, cell)

	if err := f.SetCellStr(sheet, cell, cleaned); err != nil {
		return fmt.Errorf("merge handler: set value: %w", err)
	}

	if extraRows == 0 && extraCols == 0 {
		return nil
	}

	bottomRight := excel.CellName(row+extraRows, col+extraCols)
	if err := f.MergeCell(sheet, cell, bottomRight); err != nil {
		return fmt.Errorf("merge handler: merge: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(sheet, cell, bottomRight, styleID); err != nil {
			return fmt.Errorf("merge handler: style: %w", err)
		}
	}

	return nil
}
