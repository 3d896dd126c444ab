package excel

import (
	"strconv"
	"strings"
)

const (
	// MaxSheetName is Excel's limit on sheet name length, in characters.
	MaxSheetName = 31

	// IndexSheet is the name of the roster summary sheet.
	IndexSheet = "Index"
)

var forbidden = strings.NewReplacer(
	":", "", "/", "", `\`, "", "?", "", "*", "", "[", "", "]", "",
)

// SheetName builds "CODE_NAME" without characters Excel rejects, cut to
// MaxSheetName characters.
func SheetName(code, name string) string {
	s := forbidden.Replace(strings.TrimSpace(code) + "_" + strings.TrimSpace(name))
	s = strings.Trim(s, "'")
	return truncate(s, MaxSheetName)
}

// SheetNamer hands out unique sheet names within one workbook.
type SheetNamer struct {
	used map[string]struct{}
}

// NewSheetNamer reserves the given names up front.
func NewSheetNamer(reserved ...string) *SheetNamer {
	n := &SheetNamer{used: make(map[string]struct{})}
	for _, r := range reserved {
		n.used[strings.ToLower(r)] = struct{}{}
	}
	return n
}

// Next returns SheetName(code, name), suffixed with " (2)", " (3)"... when a
// case-insensitive duplicate was already issued.
func (n *SheetNamer) Next(code, name string) string {
	base := SheetName(code, name)
	if base == "" || base == "_" {
		base = "Sheet"
	}

	candidate := base
	for i := 2; ; i++ {
		if _, taken := n.used[strings.ToLower(candidate)]; !taken {
			break
		}
		suffix := " (" + strconv.Itoa(i) + ")"
		candidate = truncate(base, MaxSheetName-len(suffix)) + suffix
	}

	n.used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// sheet references inside formulas double single quotes
func escapeQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func escapeFormulaString(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
