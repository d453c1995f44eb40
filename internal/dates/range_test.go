package dates

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDateRangeDays(t *testing.T) {
	jan1 := date(2020, time.January, 1)
	if got := Single(jan1).Days(); got != 1 {
		t.Errorf("single day range Days() = %d, want 1", got)
	}
	week := DateRange{Begin: jan1, Close: date(2020, time.January, 7)}
	if got := week.Days(); got != 7 {
		t.Errorf("week range Days() = %d, want 7", got)
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Begin: date(2020, time.January, 2), Close: date(2020, time.January, 4)}

	in := time.Date(2020, time.January, 2, 0, 0, 1, 0, time.UTC)
	if !r.Contains(in) {
		t.Errorf("Contains(%s) = false, want true", in)
	}
	lastMoment := time.Date(2020, time.January, 4, 23, 59, 59, 0, time.UTC)
	if !r.Contains(lastMoment) {
		t.Errorf("Contains(%s) = false, want true", lastMoment)
	}
	before := time.Date(2020, time.January, 1, 23, 59, 59, 0, time.UTC)
	if r.Contains(before) {
		t.Errorf("Contains(%s) = true, want false", before)
	}
}

func TestDateRangeString(t *testing.T) {
	single := Single(date(2020, time.January, 2))
	if got := single.String(); got != "20Jan02Thu" {
		t.Errorf("String() = %q, want 20Jan02Thu", got)
	}
	span := DateRange{Begin: date(2020, time.January, 1), Close: date(2020, time.January, 7)}
	if got := span.String(); got != "20Jan01Wed-20Jan07Tue" {
		t.Errorf("String() = %q, want 20Jan01Wed-20Jan07Tue", got)
	}
}

func TestResolveRangeWithDayCount(t *testing.T) {
	r := Resolver{}
	ref := date(2020, time.June, 1)

	dr, err := r.ResolveRange("2020-01-01", "7", ref)
	if err != nil {
		t.Fatalf("ResolveRange: %v", err)
	}
	if !dr.Begin.Equal(date(2020, time.January, 1)) || !dr.Close.Equal(date(2020, time.January, 7)) {
		t.Errorf("range = %s, want 2020-01-01..2020-01-07", dr)
	}
	if dr.Days() != 7 {
		t.Errorf("Days() = %d, want 7", dr.Days())
	}
}

func TestResolveRangeWithEndDate(t *testing.T) {
	r := Resolver{}
	ref := date(2020, time.June, 1)

	dr, err := r.ResolveRange("6", "today", ref)
	if err != nil {
		t.Fatalf("ResolveRange: %v", err)
	}
	if !dr.Begin.Equal(date(2020, time.May, 26)) || !dr.Close.Equal(ref) {
		t.Errorf("range = %s, want 2020-05-26..2020-06-01", dr)
	}
	if dr.Days() != 7 {
		t.Errorf("Days() = %d, want 7", dr.Days())
	}
}

func TestResolveRangeErrors(t *testing.T) {
	r := Resolver{}
	ref := date(2020, time.June, 1)

	cases := []struct {
		begin, through string
		wantErr        error
	}{
		{"day", "1", ErrInvalidDate},
		{"6", "day", ErrInvalidDate},
		{"6", "0", ErrDayCount},
		{"20200101", "1010", ErrDayCount},
	}
	for _, tc := range cases {
		if _, err := r.ResolveRange(tc.begin, tc.through, ref); !errors.Is(err, tc.wantErr) {
			t.Errorf("ResolveRange(%q, %q) error = %v, want %v", tc.begin, tc.through, err, tc.wantErr)
		}
	}
}

func TestResolveRangeReversedSuggestsCorrection(t *testing.T) {
	r := Resolver{}
	// 2020-04-01 was a Wednesday; sun resolves after sun2.
	ref := date(2020, time.April, 1)

	if _, err := r.ResolveRange("sun2", "sun", ref); err != nil {
		t.Fatalf("chronological range: %v", err)
	}

	_, err := r.ResolveRange("sun", "sun2", ref)
	if !errors.Is(err, ErrReversed) {
		t.Fatalf("reversed range error = %v, want ErrReversed", err)
	}
	if !strings.Contains(err.Error(), "did you mean '-r ") {
		t.Errorf("reversed range error %q missing corrective hint", err)
	}
}

func TestResolveRangesMergesAndSorts(t *testing.T) {
	r := Resolver{}
	ref := date(2020, time.June, 1)

	ranges, err := r.ResolveRanges(
		[]string{"0,yesterday"},
		[][2]string{{"2020-01-01", "7"}},
		ref,
	)
	if err != nil {
		t.Fatalf("ResolveRanges: %v", err)
	}
	if len(ranges) != 3 {
		t.Fatalf("len(ranges) = %d, want 3", len(ranges))
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Begin.Before(ranges[i-1].Begin) {
			t.Errorf("ranges not sorted: %s before %s", ranges[i], ranges[i-1])
		}
	}
	if !ranges[0].Begin.Equal(date(2020, time.January, 1)) {
		t.Errorf("earliest range = %s, want the explicit January range", ranges[0])
	}
}

func TestResolveRangesRejectsInvalidDate(t *testing.T) {
	r := Resolver{}
	if _, err := r.ResolveRanges([]string{"bogus"}, nil, date(2020, time.June, 1)); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}
