package template

import (
	"fmt"

	"github.com/orayew2002/rast-attendance/excel"
	"github.com/xuri/excelize/v2"
)

// Placeholders written by the layouts and consumed by the handlers.
const (
	KeyCompany      = "{{company}}"
	KeyTitle        = "{{title}}"
	KeyEmployeeName = "{{employee_name}}"
	KeyEmployeeCode = "{{employee_code}}"
	KeyDays         = "{{days}}"
	KeySummary      = "{{summary}}"
	KeyIndex        = "{{index}}"

	// spans the value cell over columns B:F
	headerSpan = "[0:4]"
)

// DayColumns is the header of the per-day table.
var DayColumns = []string{"DATE", "SHIFT G", "TIME IN", "TIME OUT", "OT HRS", "REMARKS"}

// IndexColumns is the header of the index sheet.
var IndexColumns = []string{"S. No", "CODE", "Name", "Absent", "OT Hours"}

var (
	dayWidths   = []float64{15, 15, 12, 12, 10, 20}
	indexWidths = []float64{8, 14, 32, 10, 10}
)

const (
	// CaptionRows is the number of caption rows on top of an employee sheet.
	// They are the only cells carrying merge codes.
	CaptionRows = 4

	// DayTableRow is the 0-based row of the per-day table header.
	DayTableRow = 5
)

type layoutCell struct {
	row, col int
	value    string
	style    func(sm *StyleManager) (int, error)
}

var sheetLayout = []layoutCell{
	{0, 0, "Company Name:", (*StyleManager).Title},
	{0, 1, KeyCompany + headerSpan, (*StyleManager).Title},
	{1, 0, "Report Title:", (*StyleManager).Label},
	{1, 1, KeyTitle + headerSpan, (*StyleManager).Plain},
	{2, 0, "Employee Name:", (*StyleManager).Label},
	{2, 1, KeyEmployeeName + headerSpan, (*StyleManager).Plain},
	{3, 0, "Employee Code:", (*StyleManager).Label},
	{3, 1, KeyEmployeeCode + headerSpan, (*StyleManager).Plain},
	{DayTableRow + 1, 0, KeyDays, (*StyleManager).Centered},
	{DayTableRow + 3, 0, KeySummary, (*StyleManager).BoldBordered},
}

// WriteSheetLayout writes the skeleton of one employee sheet: captions,
// placeholders, the table header, column widths and an A4 portrait page
// fitted to one page.
func WriteSheetLayout(f *excelize.File, sm *StyleManager, sheet string) error {
	for _, c := range sheetLayout {
		if err := setStyled(f, sm, sheet, c.row, c.col, c.value, c.style); err != nil {
			return err
		}
	}

	if err := writeHeaderRow(f, sm, sheet, DayTableRow, DayColumns); err != nil {
		return err
	}

	if err := setWidths(f, sheet, dayWidths); err != nil {
		return err
	}

	return fitToPage(f, sheet)
}

// WriteIndexLayout writes the index header and the {{index}} placeholder.
func WriteIndexLayout(f *excelize.File, sm *StyleManager, sheet string) error {
	if err := writeHeaderRow(f, sm, sheet, 0, IndexColumns); err != nil {
		return err
	}

	if err := f.SetCellStr(sheet, excel.CellName(1, 0), KeyIndex); err != nil {
		return fmt.Errorf("index placeholder: %w", err)
	}

	return setWidths(f, sheet, indexWidths)
}

func writeHeaderRow(f *excelize.File, sm *StyleManager, sheet string, row int, columns []string) error {
	for col, title := range columns {
		if err := setStyled(f, sm, sheet, row, col, title, (*StyleManager).Header); err != nil {
			return err
		}
	}
	return nil
}

func setStyled(f *excelize.File, sm *StyleManager, sheet string, row, col int, value string, style func(*StyleManager) (int, error)) error {
	cell := excel.CellName(row, col)
	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}

	styleID, err := style(sm)
	if err != nil {
		return fmt.Errorf("style %s: %w", cell, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("set style %s: %w", cell, err)
	}

	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for col, w := range widths {
		colName := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, colName, colName, w); err != nil {
			return fmt.Errorf("width %s: %w", colName, err)
		}
	}
	return nil
}

func fitToPage(f *excelize.File, sheet string) error {
	var (
		portrait = "portrait"
		a4       = 9
		one      = 1
		fit      = true
	)

	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &a4,
		Orientation: &portrait,
		FitToWidth:  &one,
		FitToHeight: &one,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
		return fmt.Errorf("sheet props: %w", err)
	}

	return nil
}
