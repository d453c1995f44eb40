// Package timelog reads accomplishment entries back out of the append-only
// TSV log. Lines store only an end timestamp and a description; an entry's
// start time is reconstructed from the end time of the line before it.
package timelog

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a completed span of tracked work. Begin is inferred, never
// stored: it equals the Cease of the previous line in the log.
type Entry struct {
	Begin time.Time
	Cease time.Time
	Text  string
}

// Duration is the span from Begin to Cease, never negative for entries
// produced by Reconstruct.
func (e Entry) Duration() time.Duration {
	return e.Cease.Sub(e.Begin)
}

// String shows the cease date, time, duration, and text, for verbose output.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s(%s)%s",
		e.Cease.Format("Jan02Mon"),
		e.Cease.Format("15:04"),
		HMM(e.Duration()),
		e.Text,
	)
}

// Timestamp layouts written by the append path, offset-aware first.
var lineLayouts = []string{
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// LineLayout is the format appended entries are written with.
const LineLayout = "2006-01-02 15:04:05-07:00"

// ParseLine splits a stored line into its end timestamp and description.
// Both Begin and Cease are set to the stored timestamp; Reconstruct fills
// in the real Begin from the adjacent line.
func ParseLine(line string) (Entry, error) {
	stamp, text, found := strings.Cut(line, "\t")
	if !found {
		return Entry{}, fmt.Errorf("line missing tab separator: %q", line)
	}

	for _, layout := range lineLayouts {
		if ts, err := time.Parse(layout, stamp); err == nil {
			return Entry{Begin: ts, Cease: ts, Text: text}, nil
		}
	}
	return Entry{}, fmt.Errorf("bad timestamp %q", stamp)
}

// FormatLine renders the stored form of a record, without the trailing
// newline. Tabs inside text are not supported by the format and are
// replaced with spaces so they cannot corrupt later parsing.
func FormatLine(at time.Time, text string) string {
	text = strings.ReplaceAll(text, "\t", " ")
	return at.Format(LineLayout) + "\t" + text
}

// HMM renders a duration as h:mm, rounded to the nearest minute.
func HMM(d time.Duration) string {
	d = roundDuration(d, time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", h, m)
}

// roundDuration rounds half away from zero to the nearest multiple.
func roundDuration(d, nearest time.Duration) time.Duration {
	if nearest <= 0 {
		return d
	}
	return (d + nearest/2) / nearest * nearest
}
