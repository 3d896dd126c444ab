package processor

import (
	"fmt"
	"strings"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/excel"
	"github.com/orayew2002/rast-attendance/template"
	"github.com/xuri/excelize/v2"
)

// RenderWorkbook builds the attendance workbook: an Index sheet followed by
// one sheet per employee, in roster order.
//
// Each sheet is first laid out with placeholders and then filled in passes:
//  1. captions and the footing block,
//  2. the per-day table (inserts rows, pushing the footing down),
//  3. merge codes, limited to the caption rows.
func RenderWorkbook(report domain.Report) ([]byte, error) {
	if len(report.Index) != len(report.Employees) {
		return nil, fmt.Errorf("index has %d entries for %d employees", len(report.Index), len(report.Employees))
	}

	f := excelize.NewFile()
	defer f.Close()

	sm := template.NewStyleManager(f)

	if err := f.SetSheetName("Sheet1", excel.IndexSheet); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	if err := template.WriteIndexLayout(f, sm, excel.IndexSheet); err != nil {
		return nil, fmt.Errorf("index layout: %w", err)
	}

	for i, er := range report.Employees {
		sheet := report.Index[i].SheetName
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if err := template.WriteSheetLayout(f, sm, sheet); err != nil {
			return nil, fmt.Errorf("sheet %q layout: %w", sheet, err)
		}

		if err := fillEmployeeSheet(f, sm, sheet, report, er); err != nil {
			return nil, err
		}
	}

	index := template.New()
	template.RegisterIndexHandler(index, sm, report.Index)
	if err := runPass(New(index), f, excel.IndexSheet); err != nil {
		return nil, err
	}

	merges := template.New()
	template.RegisterMergeHandler(merges)
	for _, entry := range report.Index {
		if err := New(merges).ProcessRows(f, entry.SheetName, template.CaptionRows); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func fillEmployeeSheet(f *excelize.File, sm *template.StyleManager, sheet string, report domain.Report, er domain.EmployeeReport) error {
	captions := template.New()
	template.RegisterHeaderHandlers(captions, report, er.Employee)
	template.RegisterSummaryHandler(captions, sm, er.Summary)
	if err := runPass(New(captions), f, sheet); err != nil {
		return err
	}

	days := template.New()
	template.RegisterDaysHandler(days, sm, er.Records)
	return runPass(New(days), f, sheet)
}

// runPass processes sheet and fails when a placeholder of the pass was not
// found, i.e. the layout and the handlers disagree.
func runPass(p *Processor, f *excelize.File, sheet string) error {
	if err := p.ProcessSheet(f, sheet); err != nil {
		return err
	}
	if missing := p.Missing(); len(missing) > 0 {
		return fmt.Errorf("sheet %q: placeholders not found: %s", sheet, strings.Join(missing, ", "))
	}
	return nil
}
