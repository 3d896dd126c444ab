package employee

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"S#":             "s#",
		"S. No":          "sno",
		"Overtime Hours": "overtimehours",
		" ABSENT DAYS ":  "absentdays",
	}
	for in, want := range cases {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
