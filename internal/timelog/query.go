package timelog

import (
	"sort"
	"strings"
	"time"

	"github.com/jidn/idid-cli/internal/dates"
)

// DefaultStartText marks a record that resumes tracking after a gap. A
// marker line never becomes an entry and never donates its end time across
// the gap it closes.
const DefaultStartText = "*~*~*--------------------"

// LineSource yields stored lines in descending chronological order.
// BackwardScanner satisfies it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Reconstruct rebuilds complete entries from a reverse line stream,
// keeping those whose begin date falls in at least one range and whose
// text passes every filter. Results come back in chronological order.
//
// The pass works backward: each line's end timestamp becomes the start of
// the entry assembled from the previously read (chronologically later)
// line. The pass stops once a line's date precedes the earliest range
// begin, so cost tracks the span requested rather than the file size.
// The oldest line in the file has nothing to supply its start and is
// never emitted.
func Reconstruct(ranges []dates.DateRange, filters []Filter, src LineSource, startText string) ([]Entry, error) {
	matching := []Entry{}
	if len(ranges) == 0 {
		return matching, nil
	}
	if startText == "" {
		startText = DefaultStartText
	}

	sorted := make([]dates.DateRange, len(ranges))
	copy(sorted, ranges)
	dates.Sort(sorted)
	earliest := sorted[0].Begin

	isStart := func(e Entry) bool {
		return strings.HasPrefix(e.Text, startText)
	}

	var pending *Entry
	for src.Scan() {
		line := src.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseLine(line)
		if err != nil {
			return nil, err
		}

		// The pending entry began when this one ceased.
		if pending != nil {
			pending.Begin = entry.Cease
			if !isStart(*pending) && containsAny(sorted, pending.Begin) && accept(filters, pending.Text) {
				matching = append(matching, *pending)
			}
		}

		// No older line can fall inside any requested range.
		if dates.Day(entry.Cease).Before(earliest) {
			break
		}

		if isStart(entry) {
			pending = nil
		} else {
			e := entry
			pending = &e
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matching, func(i, j int) bool {
		a, b := matching[i], matching[j]
		if !a.Begin.Equal(b.Begin) {
			return a.Begin.Before(b.Begin)
		}
		if !a.Cease.Equal(b.Cease) {
			return a.Cease.Before(b.Cease)
		}
		return a.Text < b.Text
	})
	return matching, nil
}

func containsAny(ranges []dates.DateRange, ts time.Time) bool {
	for _, r := range ranges {
		if r.Contains(ts) {
			return true
		}
	}
	return false
}
