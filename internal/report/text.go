// Package report renders reconstructed entries as fixed-width text tables
// or HTML. Renderers are pure functions of the entry list.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gosuri/uitable"

	"github.com/jidn/idid-cli/internal/timelog"
)

// DefaultWidth is the report width in characters.
const DefaultWidth = 80

var detailTitles = [3]string{"Began", "Ended", "Hours"}

const (
	fieldSep = "  "
	textSep  = "  "
)

// Detail lists one line per entry with begin, cease, duration, and wrapped
// text, followed by a total:
//
//	Began  Ended  Hours  [Mon, Jan 01]
//	-----  -----  -----
//	08:01  10:11   2:10  Fixed #101038
//	10:11  11:57   1:46  Fixed #101039
//	============   3:56
func Detail(entries []timelog.Entry, width int) []string {
	if len(entries) == 0 {
		return nil
	}
	if width <= 0 {
		width = DefaultWidth
	}

	sorted := make([]timelog.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Begin.Before(sorted[j].Begin) })

	var out []string
	fieldsWidth := 0
	for _, title := range detailTitles {
		fieldsWidth += len(title)
	}
	fieldsWidth += 2 * len(fieldSep)

	title := strings.Join(detailTitles[:], fieldSep)
	title += textSep + sorted[0].Begin.Format("[Mon, Jan 02]")
	out = append(out, title)

	dashes := make([]string, len(detailTitles))
	for i, t := range detailTitles {
		dashes[i] = strings.Repeat("-", len(t))
	}
	out = append(out, strings.Join(dashes, fieldSep))

	textWidth := width - fieldsWidth - len(textSep)
	var total time.Duration
	for _, e := range sorted {
		total += e.Duration()
		fields := strings.Join([]string{
			e.Begin.Format("15:04"),
			e.Cease.Format("15:04"),
			fmt.Sprintf("%5s", timelog.HMM(e.Duration())),
		}, fieldSep)

		wrapped := wrap(e.Text, textWidth)
		out = append(out, fields+textSep+wrapped[0])
		for _, cont := range wrapped[1:] {
			out = append(out, strings.Repeat(" ", fieldsWidth)+textSep+cont)
		}
	}

	out = append(out, fmt.Sprintf("%s %6s", strings.Repeat("=", fieldsWidth-7), timelog.HMM(total)))
	return out
}

// DaySummary totals entries per day:
//
//	Wed, Jan 01    8:15
//	Thu, Jan 02   10:05
//	============  18:20
func DaySummary(entries []timelog.Entry) []string {
	if len(entries) == 0 {
		return nil
	}

	byDay := make(map[time.Time][]timelog.Entry)
	var days []time.Time
	var grandTotal time.Duration
	for _, e := range entries {
		day := time.Date(e.Begin.Year(), e.Begin.Month(), e.Begin.Day(), 0, 0, 0, 0, time.UTC)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], e)
		grandTotal += e.Duration()
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	tbl := uitable.New()
	tbl.Separator = fieldSep
	tbl.RightAlign(1)
	for _, day := range days {
		var total time.Duration
		for _, e := range byDay[day] {
			total += e.Duration()
		}
		tbl.AddRow(day.Format("Mon, Jan 02"), timelog.HMM(total))
	}

	out := strings.Split(tbl.String(), "\n")
	out = append(out, fmt.Sprintf("============%7s", timelog.HMM(grandTotal)))
	return out
}

// wrap splits text into lines at most width wide, breaking on spaces. It
// always returns at least one line.
func wrap(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}
