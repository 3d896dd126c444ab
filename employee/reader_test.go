package employee

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/orayew2002/rast-attendance/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"S#", "CODE", "NAME", "Overtime Hours", "ABSENT DAYS"},
		{"1", "E01", "Ali", "10", "2"},
		{},
		{"", "", "", "", ""},
		{"3", "E03", "Omar", "", "abc"},
		{"4.0", "E04", "Bea", "7.6"},
	}

	got, err := parseRows(rows)
	require.NoError(t, err)

	assert.Equal(t, []domain.Employee{
		{Seq: "1", Code: "E01", Name: "Ali", OvertimeHours: 10, AbsentDays: "2"},
		{Seq: "3", Code: "E03", Name: "Omar", OvertimeHours: 0, AbsentDays: "abc"},
		{Seq: "4", Code: "E04", Name: "Bea", OvertimeHours: 7, AbsentDays: ""},
	}, got)
	assert.Equal(t, 0, got[1].RequestedAbsences())
}

func TestParseRowsHeaderAliases(t *testing.T) {
	rows := [][]string{
		{" Employee Code ", "Employee Name", "OT Hours"},
		{"E01", "Ali", "3"},
		{"E02", "Sara", "0"},
	}

	got, err := parseRows(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Seq)
	assert.Equal(t, "2", got[1].Seq)
	assert.Equal(t, 3, got[0].OvertimeHours)
}

func TestParseRowsOvertimeUpperBound(t *testing.T) {
	got, err := parseRows([][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "744"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.MaxOvertimeHours, got[0].OvertimeHours)
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want error
	}{
		{"empty sheet", nil, ErrNoRows},
		{"header only", [][]string{{"CODE", "NAME", "Overtime Hours"}}, ErrNoRows},
		{"missing overtime", [][]string{{"CODE", "NAME"}, {"E01", "Ali"}}, ErrMissingColumn},
		{"missing code", [][]string{{"NAME", "Overtime Hours"}, {"Ali", "1"}}, ErrMissingColumn},
		{"text overtime", [][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "ten"}}, ErrInvalidOvertime},
		{"negative overtime", [][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "-1"}}, ErrInvalidOvertime},
		{"huge overtime", [][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "3000000000"}}, ErrInvalidOvertime},
		{"infinite overtime", [][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "Inf"}}, ErrInvalidOvertime},
		{"overtime past a month", [][]string{{"CODE", "NAME", "Overtime Hours"}, {"E01", "Ali", "745"}}, ErrInvalidOvertime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRows(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReadRosterFromWorkbook(t *testing.T) {
	in := []domain.Employee{
		{Seq: "1", Code: "E01", Name: "Ali", OvertimeHours: 10, AbsentDays: "2"},
		{Seq: "2", Code: "E02", Name: "Sara", OvertimeHours: 0},
	}

	data, err := WriteToBytes(in)
	require.NoError(t, err)

	got, err := ReadRoster(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestWriteToFileReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	in := Sample(3)
	require.NoError(t, WriteToFile(in, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadRoster(f)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range in {
		assert.Equal(t, in[i].Code, got[i].Code)
		assert.Equal(t, in[i].Name, got[i].Name)
		assert.Equal(t, in[i].OvertimeHours, got[i].OvertimeHours)
	}
}

func TestReadRosterRejectsGarbage(t *testing.T) {
	_, err := ReadRoster(bytes.NewReader([]byte("CODE,NAME\n")))
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	sample := Sample(5)

	require.Len(t, sample, 5)
	for i, e := range sample {
		assert.NotEmpty(t, e.Name)
		assert.Equal(t, i+1, mustAtoi(t, e.Seq))
		assert.GreaterOrEqual(t, e.OvertimeHours, 0)
		assert.LessOrEqual(t, e.RequestedAbsences(), 3)
	}

	data, err := WriteToBytes(sample)
	require.NoError(t, err)
	back, err := ReadRoster(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, back, 5)
}
