package employee

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/orayew2002/rast-attendance/domain"
	excelize "github.com/xuri/excelize/v2"
)

var (
	ErrMissingColumn   = errors.New("missing roster column")
	ErrNoRows          = errors.New("roster has no employee rows")
	ErrInvalidOvertime = errors.New("invalid overtime hours")
)

type field int

const (
	fieldSeq field = iota
	fieldCode
	fieldName
	fieldOvertime
	fieldAbsent
)

// aliases maps normalized header text to a roster field.
var aliases = map[string]field{
	"s#":            fieldSeq,
	"sno":           fieldSeq,
	"srno":          fieldSeq,
	"#":             fieldSeq,
	"code":          fieldCode,
	"empcode":       fieldCode,
	"employeecode":  fieldCode,
	"name":          fieldName,
	"employeename":  fieldName,
	"overtimehours": fieldOvertime,
	"overtime":      fieldOvertime,
	"othours":       fieldOvertime,
	"absentdays":    fieldAbsent,
	"absent":        fieldAbsent,
}

var required = []struct {
	field field
	name  string
}{
	{fieldCode, ColCode},
	{fieldName, ColName},
	{fieldOvertime, ColOvertime},
}

// ReadRoster parses the first sheet of an uploaded roster workbook. The first
// row is the header; fully blank rows are skipped. Absence values are kept
// raw so one bad cell never rejects the file.
func ReadRoster(r io.Reader) ([]domain.Employee, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read roster rows: %w", err)
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) ([]domain.Employee, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	columns := mapHeader(rows[0])
	for _, req := range required {
		if _, ok := columns[req.field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, req.name)
		}
	}

	var employees []domain.Employee
	for i, row := range rows[1:] {
		get := func(fl field) string {
			col, ok := columns[fl]
			if !ok || col >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[col])
		}

		emp := domain.Employee{
			Seq:        get(fieldSeq),
			Code:       get(fieldCode),
			Name:       get(fieldName),
			AbsentDays: get(fieldAbsent),
		}
		if emp.Code == "" && emp.Name == "" {
			continue
		}

		line := i + 2 // 1-based, after the header
		ot, err := parseOvertime(get(fieldOvertime))
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", line, emp.Code, err)
		}
		emp.OvertimeHours = ot

		if emp.Seq == "" {
			emp.Seq = strconv.Itoa(len(employees) + 1)
		}
		emp.Seq = trimFloat(emp.Seq)

		employees = append(employees, emp)
	}

	if len(employees) == 0 {
		return nil, ErrNoRows
	}

	return employees, nil
}

func mapHeader(header []string) map[field]int {
	columns := make(map[field]int)
	for col, title := range header {
		fl, ok := aliases[normalize(title)]
		if !ok {
			continue
		}
		if _, seen := columns[fl]; !seen {
			columns[fl] = col
		}
	}
	return columns
}

// normalize lowercases and drops everything but letters, digits and '#'.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '#' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseOvertime accepts blank (0) and whole or fractional numbers up to
// domain.MaxOvertimeHours; fractions are truncated.
func parseOvertime(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > domain.MaxOvertimeHours {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOvertime, raw)
	}
	return int(v), nil
}

// trimFloat turns "3.0" (raw numeric cells) into "3".
func trimFloat(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > 1e15 {
		return s
	}
	return strconv.FormatInt(int64(v), 10)
}
