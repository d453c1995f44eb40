package dates

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRelativeDays(t *testing.T) {
	ref := date(2020, time.June, 1)
	r := Resolver{}

	cases := []struct {
		text string
		want time.Time
	}{
		{"0", ref},
		{"1", date(2020, time.May, 31)},
		{"7", date(2020, time.May, 25)},
		{"101", date(2020, time.February, 21)},
	}
	for _, tc := range cases {
		got, ok := r.Resolve(tc.text, ref)
		if !ok {
			t.Fatalf("Resolve(%q) did not match", tc.text)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestResolveNamedDays(t *testing.T) {
	ref := date(2020, time.June, 1)
	r := Resolver{}

	for _, tc := range []struct {
		text string
		want time.Time
	}{
		{"today", ref},
		{"Today", ref},
		{"yesterday", date(2020, time.May, 31)},
		{"yesterdee", date(2020, time.May, 31)},
	} {
		got, ok := r.Resolve(tc.text, ref)
		if !ok || !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %s ok=%v, want %s", tc.text, got, ok, tc.want)
		}
	}
}

func TestResolveCalendarDates(t *testing.T) {
	ref := date(2020, time.June, 1)
	r := Resolver{}

	cases := []struct {
		text string
		want time.Time
	}{
		// Four-digit numeric strings are dates, never day counts.
		{"0401", date(2020, time.April, 1)},
		{"04-01", date(2020, time.April, 1)},
		// A month-day on or after the reference rolls back a year.
		{"0801", date(2019, time.August, 1)},
		{"08-01", date(2019, time.August, 1)},
		{"06-01", date(2019, time.June, 1)},
		{"2019-08-01", date(2019, time.August, 1)},
		{"20190801", date(2019, time.August, 1)},
	}
	for _, tc := range cases {
		got, ok := r.Resolve(tc.text, ref)
		if !ok {
			t.Fatalf("Resolve(%q) did not match", tc.text)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestResolveRejectsMalformedDates(t *testing.T) {
	ref := date(2020, time.June, 1)
	r := Resolver{}

	for _, text := range []string{"2019-0801", "201908-01", "1301", "0230", "0a01", "junk"} {
		if got, ok := r.Resolve(text, ref); ok {
			t.Errorf("Resolve(%q) = %s, want no match", text, got)
		}
	}
}

func TestResolveWeekday(t *testing.T) {
	// 2020-04-01 was a Wednesday.
	wednesday := date(2020, time.April, 1)
	r := Resolver{}

	cases := []struct {
		text string
		ref  time.Time
		want time.Time
	}{
		{"mon", wednesday, date(2020, time.March, 30)},
		{"mon1", wednesday, date(2020, time.March, 30)},
		{"mon2", date(2020, time.April, 2), date(2020, time.March, 23)},
		{"fri", date(2020, time.April, 2), date(2020, time.March, 27)},
		{"fri2", wednesday, date(2020, time.March, 20)},
		{"mon4", date(2020, time.March, 31), date(2020, time.March, 9)},
		{"fri4", date(2020, time.March, 31), date(2020, time.March, 6)},
		// Same weekday as the reference means a full week back, never today.
		{"wed", wednesday, date(2020, time.March, 25)},
	}
	for _, tc := range cases {
		got, ok := r.Resolve(tc.text, tc.ref)
		if !ok {
			t.Fatalf("Resolve(%q) did not match", tc.text)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q, %s) = %s, want %s", tc.text, tc.ref.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestResolveWeekdayCustomTable(t *testing.T) {
	r := Resolver{Weekdays: Weekdays{"lun", "mar", "mie", "jue", "vie", "sab", "dom"}}
	wednesday := date(2020, time.April, 1)

	got, ok := r.Resolve("lun", wednesday)
	if !ok || !got.Equal(date(2020, time.March, 30)) {
		t.Fatalf("Resolve(lun) = %s ok=%v, want 2020-03-30", got, ok)
	}
	if _, ok := r.Resolve("mon", wednesday); ok {
		t.Fatal("Resolve(mon) matched with a table that does not contain it")
	}
}

func TestDaysBackAlwaysWithinWeek(t *testing.T) {
	for lookFor := 0; lookFor < 7; lookFor++ {
		for relative := 0; relative < 7; relative++ {
			got := daysBack(lookFor, relative)
			if got < 1 || got > 7 {
				t.Errorf("daysBack(%d, %d) = %d, want 1..7", lookFor, relative, got)
			}
		}
	}
}
