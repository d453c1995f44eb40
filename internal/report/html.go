package report

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/jidn/idid-cli/internal/timelog"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head lang="en-US">
  <title>{{.Title}}</title>
  <meta name="publisher" content="jidn/idid">
  <style>
    body { font-family: Calibri, Helvetica, sans-serif; }
    .idid { border-collapse: collapse; margin:0; min-width:400px; width:100% }
    .idid thead tr { background-color: #007cba; color: #ffffff; text-align: left; }
    .idid th,
    .idid td { padding: 6px 7px; }
    .idid td { vertical-align:top; }
    .idid tbody tr:nth-of-type(even){ background-color: #f3f3f3; }
    .idid tbody { border-bottom: 3px solid #007cba; }
    details summary { cursor: pointer; }
    summary { font-size:150% }
  </style>
</head><body>
<h2>Total hours - {{.GrandTotal}}</h2>
{{range .Days}}{{if .Collapse}}<details><summary>{{.Title}}  - {{.Total}}</summary>
{{else}}<h1>{{.Title}}</h1>
{{end}}<table class="idid">
<thead>
<tr><th>Begin</th><th>Cease</th><th>Hours</th><th>Description</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Begin}}</td><td>{{.Cease}}</td><td>{{.Hours}}</td><td>{{.Text}}</td></tr>
{{end}}<tr><td></td><td></td><td>{{.Total}}</td><td><b>TOTAL</b></td></tr>
</tbody></table>
{{if .Collapse}}</details>
{{end}}{{end}}</body></html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlHead))

type htmlRow struct {
	Begin, Cease, Hours, Text string
}

type htmlDay struct {
	Title    string
	Total    string
	Collapse bool
	Rows     []htmlRow
}

type htmlReport struct {
	Title      string
	GrandTotal string
	Days       []htmlDay
}

// HTML renders one section per day, newest day first and expanded, older
// days collapsed behind <details> disclosure widgets.
func HTML(entries []timelog.Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	sorted := make([]timelog.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Begin.Before(sorted[j].Begin) })

	byDay := make(map[time.Time][]timelog.Entry)
	var days []time.Time
	var grandTotal time.Duration
	for _, e := range sorted {
		day := time.Date(e.Begin.Year(), e.Begin.Month(), e.Begin.Day(), 0, 0, 0, 0, time.UTC)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], e)
		grandTotal += e.Duration()
	}
	// Newest first; only the newest day is shown expanded.
	sort.Slice(days, func(i, j int) bool { return days[j].Before(days[i]) })

	const dayLayout = "Mon Jan 02, 2006"
	title := fmt.Sprintf("Report %s", sorted[0].Begin.Format(dayLayout))
	if !sameDay(sorted[0].Begin, sorted[len(sorted)-1].Begin) {
		title += " - " + sorted[len(sorted)-1].Begin.Format(dayLayout)
	}

	data := htmlReport{
		Title:      title,
		GrandTotal: timelog.HMM(grandTotal),
	}
	for i, day := range days {
		section := htmlDay{
			Title:    day.Format(dayLayout),
			Collapse: i > 0,
		}
		var total time.Duration
		for _, e := range byDay[day] {
			total += e.Duration()
			section.Rows = append(section.Rows, htmlRow{
				Begin: e.Begin.Format("15:04"),
				Cease: e.Cease.Format("15:04"),
				Hours: timelog.HMM(e.Duration()),
				Text:  e.Text,
			})
		}
		section.Total = timelog.HMM(total)
		data.Days = append(data.Days, section)
	}

	var buf strings.Builder
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
