// Package dates resolves the small date-expression grammar used to select
// log entries: relative day counts, named days, ISO-ish dates, and
// abbreviated weekdays with an optional week offset.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Weekdays is an injected table of abbreviated weekday names, Monday first.
type Weekdays []string

// DefaultWeekdays covers the default locale.
var DefaultWeekdays = Weekdays{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Resolver turns date-expression text into calendar dates. The zero value
// uses DefaultWeekdays.
type Resolver struct {
	Weekdays Weekdays
}

var (
	reFullDashed  = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])-([12]\d|0[1-9]|3[01])$`)
	reFullPlain   = regexp.MustCompile(`^(\d{4})(0[1-9]|1[0-2])([12]\d|0[1-9]|3[01])$`)
	reMonthDashed = regexp.MustCompile(`^(0[1-9]|1[0-2])-([12]\d|0[1-9]|3[01])$`)
	reMonthPlain  = regexp.MustCompile(`^(0[1-9]|1[0-2])([12]\d|0[1-9]|3[01])$`)
)

// Day truncates t to midnight UTC of its calendar date. All resolved dates
// and range bounds are normalized this way so comparisons are date-only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Resolve parses text against the grammar, trying each form in order:
//
//  1. Number of days before relative; "0" is the relative day itself.
//     Four or more digits never match here so they parse as dates instead.
//  2. Literal "today", or anything starting with "yester".
//  3. YYYY-MM-DD, YYYYMMDD, MM-DD, or MMDD. Month-day forms resolve to the
//     most recent occurrence strictly before the relative date.
//  4. Abbreviated weekday with optional week count: "mon" and "mon1" are the
//     last Monday, "mon2" is the one before that. A weekday never resolves
//     to the relative date itself.
//
// The boolean reports whether text matched any form.
func (r Resolver) Resolve(text string, relative time.Time) (time.Time, bool) {
	relative = Day(relative)

	if isDigits(text) && len(text) < 4 {
		n, err := strconv.Atoi(text)
		if err != nil {
			return time.Time{}, false
		}
		return relative.AddDate(0, 0, -n), true
	}

	text = strings.ToLower(text)

	switch {
	case text == "today":
		return relative, true
	case strings.HasPrefix(text, "yester"):
		return relative.AddDate(0, 0, -1), true
	}

	if len(text) >= 2 && isDigits(text[:2]) {
		if day, ok := r.resolveCalendar(text, relative); ok {
			return day, true
		}
		return time.Time{}, false
	}

	return r.resolveWeekday(text, relative)
}

// resolveCalendar handles the ISO-ish forms. A month-day on or after the
// relative date rolls back one year.
func (r Resolver) resolveCalendar(text string, relative time.Time) (time.Time, bool) {
	if m := firstMatch(text, reFullDashed, reFullPlain); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := firstMatch(text, reMonthDashed, reMonthPlain); m != nil {
		day, ok := makeDate(relative.Year(), atoi(m[1]), atoi(m[2]))
		if !ok {
			return time.Time{}, false
		}
		if !day.Before(relative) {
			day, ok = makeDate(relative.Year()-1, atoi(m[1]), atoi(m[2]))
		}
		return day, ok
	}

	return time.Time{}, false
}

// resolveWeekday handles "mon", "mon1", "mon4" and friends.
func (r Resolver) resolveWeekday(text string, relative time.Time) (time.Time, bool) {
	names := r.Weekdays
	if len(names) == 0 {
		names = DefaultWeekdays
	}

	lookFor := -1
	var suffix string
	for i, name := range names {
		if strings.HasPrefix(text, name) {
			lookFor = i
			suffix = text[len(name):]
			break
		}
	}
	if lookFor < 0 || (suffix != "" && !isDigits(suffix)) {
		return time.Time{}, false
	}

	days := daysBack(lookFor, mondayIndex(relative.Weekday()))
	if suffix != "" {
		weeks := atoi(suffix)
		if weeks > 1 {
			days += 7 * (weeks - 1)
		}
	}
	return relative.AddDate(0, 0, -days), true
}

// daysBack is the number of days from the relative weekday back to the last
// occurrence of lookFor. Both are Monday-first indexes. The result is always
// in [1,7]: the same weekday means a full week back, never zero.
func daysBack(lookFor, relative int) int {
	days := relative - lookFor
	if days <= 0 {
		days = 7 - lookFor + relative
	}
	return days
}

// mondayIndex converts Go's Sunday-first weekday to a Monday-first index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// makeDate builds a normalized date, rejecting impossible days such as
// February 30 that time.Date would otherwise roll into the next month.
func makeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func firstMatch(text string, patterns ...*regexp.Regexp) []string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
