package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/orayew2002/rast-attendance/excel"
	excelize "github.com/xuri/excelize/v2"
)

const rosterSheet = "Sheet1"

// WriteToFile writes employees as a roster workbook to path.
func WriteToFile(employees []domain.Employee, path string) error {
	f, err := build(employees)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes returns employees as a roster workbook.
func WriteToBytes(employees []domain.Employee) ([]byte, error) {
	f, err := build(employees)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(employees []domain.Employee) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeHeaders(f, rosterSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, rosterSheet, employees); err != nil {
		f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := autoFitColumns(f, rosterSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto fit columns: %w", err)
	}

	return f, nil
}

func writeHeaders(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell := excel.CellName(0, col)
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, employees []domain.Employee) error {
	for i, emp := range employees {
		row := i + 1 // row 0 is headers
		values := []any{
			numberOrString(emp.Seq),
			emp.Code,
			emp.Name,
			emp.OvertimeHours,
			numberOrString(emp.AbsentDays),
		}
		for col, val := range values {
			cell := excel.CellName(row, col)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("employee %s, col %d: %w", emp.Code, col, err)
			}
		}
	}

	return nil
}

func numberOrString(s string) any {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}

func autoFitColumns(f *excelize.File, sheet string) error {
	widths := []float64{6, 12, 30, 16, 14}
	for col, w := range widths {
		colName := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, colName, colName, w); err != nil {
			return err
		}
	}
	return nil
}
