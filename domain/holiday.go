package domain

import (
	"fmt"
	"strings"
	"time"
)

const holidayKeyLayout = "2006-01-02"

// Holiday is a single declared non-working day.
type Holiday struct {
	Date time.Time
	Name string
}

// Holidays maps a calendar date to its label. Several names declared on one
// date share the label, joined with " / ".
type Holidays map[string]string

// NewHolidays builds the set from a list, keeping only dates inside
// year/month. Entries with a blank name are skipped.
func NewHolidays(year, month int, list []Holiday) Holidays {
	h := make(Holidays)
	for _, hol := range list {
		y, m, _ := hol.Date.Date()
		if y != year || int(m) != month {
			continue
		}
		h.Add(hol.Date, hol.Name)
	}
	return h
}

// Add declares name on date.
func (h Holidays) Add(date time.Time, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	key := date.Format(holidayKeyLayout)
	if existing, ok := h[key]; ok {
		h[key] = existing + " / " + name
		return
	}
	h[key] = name
}

// Lookup returns the label for date, if any.
func (h Holidays) Lookup(date time.Time) (string, bool) {
	name, ok := h[date.Format(holidayKeyLayout)]
	return name, ok
}

// ParseHoliday reads "2006-01-02 Name" or "2006-01-02=Name".
func ParseHoliday(s string) (Holiday, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " =\t")
	if idx < 0 {
		return Holiday{}, fmt.Errorf("holiday %q: want \"YYYY-MM-DD Name\"", s)
	}
	date, err := time.Parse(holidayKeyLayout, s[:idx])
	if err != nil {
		return Holiday{}, fmt.Errorf("holiday %q: %w", s, err)
	}
	name := strings.TrimSpace(s[idx+1:])
	if name == "" {
		return Holiday{}, fmt.Errorf("holiday %q: missing name", s)
	}
	return Holiday{Date: date, Name: name}, nil
}

// ParseHolidayLines parses one holiday per non-empty line.
func ParseHolidayLines(text string) ([]Holiday, error) {
	var list []Holiday
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseHoliday(line)
		if err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, nil
}
