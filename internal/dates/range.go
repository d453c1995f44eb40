package dates

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate reports text that matched no form of the date grammar.
var ErrInvalidDate = errors.New("unrecognized date")

// ErrDayCount reports a range day count outside 1..999.
var ErrDayCount = errors.New("day count out of range")

// ErrReversed reports a range whose end resolves before its start.
var ErrReversed = errors.New("range dates reversed")

// DateRange is an inclusive closed interval of calendar dates.
type DateRange struct {
	Begin time.Time
	Close time.Time
}

// Days is the number of calendar days the range covers, at least 1.
func (r DateRange) Days() int {
	return int(r.Close.Sub(r.Begin)/(24*time.Hour)) + 1
}

// Contains reports whether the timestamp's calendar date falls within the
// range, endpoints included.
func (r DateRange) Contains(ts time.Time) bool {
	d := Day(ts)
	return !d.Before(r.Begin) && !d.After(r.Close)
}

// String shows a single date as 20Jan02Thu, or both endpoints joined
// with a dash.
func (r DateRange) String() string {
	const layout = "06Jan02Mon"
	b := r.Begin.Format(layout)
	if r.Begin.Equal(r.Close) {
		return b
	}
	return b + "-" + r.Close.Format(layout)
}

// Single wraps one date as a one-day range.
func Single(d time.Time) DateRange {
	d = Day(d)
	return DateRange{Begin: d, Close: d}
}

// Sort orders ranges ascending by begin date.
func Sort(ranges []DateRange) {
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Begin.Before(ranges[j].Begin)
	})
}

// ResolveRange builds a range from a start expression and either an end
// expression or a day count in 1..999. Counts of four or more digits are
// rejected rather than read as MMDD dates.
func (r Resolver) ResolveRange(begin, through string, relative time.Time) (DateRange, error) {
	start, ok := r.Resolve(begin, relative)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, begin)
	}

	var end time.Time
	if isDigits(through) {
		count, err := strconv.Atoi(through)
		if err != nil || count <= 0 {
			return DateRange{}, fmt.Errorf("%w: %q must be a positive number", ErrDayCount, through)
		}
		if count > 999 {
			return DateRange{}, fmt.Errorf("%w: %q must be less than 1000", ErrDayCount, through)
		}
		end = start.AddDate(0, 0, count-1)
	} else {
		end, ok = r.Resolve(through, relative)
		if !ok {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDate, through)
		}
	}

	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: did you mean '-r %s %s'?",
			ErrReversed, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return DateRange{Begin: start, Close: end}, nil
}

// ResolveRanges merges single-date expressions (possibly comma separated)
// and begin/through pairs into ranges sorted ascending by begin. Overlaps
// and duplicates are kept as given.
func (r Resolver) ResolveRanges(single []string, pairs [][2]string, relative time.Time) ([]DateRange, error) {
	var ranges []DateRange

	for _, item := range single {
		for _, text := range strings.Split(item, ",") {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			d, ok := r.Resolve(text, relative)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrInvalidDate, text)
			}
			ranges = append(ranges, Single(d))
		}
	}

	for _, pair := range pairs {
		dr, err := r.ResolveRange(pair[0], pair[1], relative)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}

	Sort(ranges)
	return ranges, nil
}
