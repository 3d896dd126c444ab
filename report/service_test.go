package report

import (
	"bytes"
	"testing"

	"github.com/orayew2002/rast-attendance/attendance"
	"github.com/orayew2002/rast-attendance/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestService(seed uint64) *Service {
	logger := zerolog.Nop()
	return NewService(&logger, "NFP", seed)
}

func request() attendance.Request {
	return attendance.Request{
		Company: "ABC COMPANY",
		Year:    2025,
		Month:   8,
		Roster: []domain.Employee{
			{Seq: "1", Code: "E01", Name: "Ali", OvertimeHours: 12, AbsentDays: "1"},
			{Seq: "2", Code: "E02", Name: "Sara", OvertimeHours: 0},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": XLSX, "xlsx": XLSX, " HTML ": HTML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "NFP_Attendance_August_2025.xlsx", FileName("NFP", 2025, 8, XLSX))
	assert.Equal(t, "Attendance_February_2026.html", FileName("", 2026, 2, HTML))
	assert.Equal(t, "NFP_Attendance_13_2025.xlsx", FileName("NFP", 2025, 13, XLSX))
}

func TestBuildWorkbook(t *testing.T) {
	out, err := newTestService(0).Build(request(), XLSX, 9)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "NFP_Attendance_August_2025.xlsx", out.FileName)
	assert.Len(t, out.Report.Employees, 2)

	f, err := excelize.OpenReader(bytes.NewReader(out.Body))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Index", "E01_Ali", "E02_Sara"}, f.GetSheetList())
}

func TestBuildHTML(t *testing.T) {
	out, err := newTestService(0).Build(request(), HTML, 9)
	require.NoError(t, err)

	assert.Equal(t, HTML, out.Format)
	assert.Equal(t, "text/html; charset=utf-8", out.Format.ContentType())
	assert.Contains(t, string(out.Body), "ATTENDANCE SHEETS FOR THE MONTH OF AUGUST 2025")
}

func TestPreviewUsesDefaultSeed(t *testing.T) {
	svc := newTestService(77)

	first := svc.Preview(request(), 0)
	second := svc.Preview(request(), 0)
	assert.Equal(t, first, second)

	explicit := svc.Preview(request(), 77)
	assert.Equal(t, first, explicit)
}
