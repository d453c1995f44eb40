// Package ui is the read-only Bubble Tea browser for the work log. One
// day is shown at a time; arrow keys move between days.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jidn/idid-cli/internal/dates"
	"github.com/jidn/idid-cli/internal/timelog"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	totalStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for browsing one day of entries.
type Model struct {
	ctx    context.Context
	reader *timelog.Reader

	currentDate time.Time
	entries     []timelog.Entry
	selected    int

	loading    bool
	statusLine string
	errorLine  string
}

type entriesLoadedMsg struct {
	date    time.Time
	entries []timelog.Entry
	err     error
}

// NewModel seeds the browser at today's date.
func NewModel(ctx context.Context, reader *timelog.Reader) Model {
	return Model{
		ctx:         ctx,
		reader:      reader,
		currentDate: dates.Day(time.Now()),
		loading:     true,
		statusLine:  "Loading today's entries...",
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadEntriesCmd(m.currentDate)
}

// Update wires state transitions from key presses and async loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case entriesLoadedMsg:
		return m.handleEntriesLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "left", "h", "p":
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case "right", "l", "n":
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case "t":
		return m.gotoDate(dates.Day(time.Now()))
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m Model) handleEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if !msg.date.Equal(m.currentDate) {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.date.Format("2006-01-02"), msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.entries = msg.entries
	if m.selected >= len(m.entries) {
		m.selected = 0
	}
	if len(m.entries) == 0 {
		m.statusLine = fmt.Sprintf("%s has no entries.", msg.date.Format("2006-01-02"))
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.entries), plural(len(m.entries)))
	}
	return m, nil
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	if date.Equal(m.currentDate) {
		return m.reload()
	}

	m.currentDate = date
	m.entries = nil
	m.selected = 0
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	return m, m.loadEntriesCmd(date)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.currentDate.Format("2006-01-02"))
	m.errorLine = ""
	return m, m.loadEntriesCmd(m.currentDate)
}

func (m Model) loadEntriesCmd(date time.Time) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := reader.Query(ctx, []dates.DateRange{dates.Single(date)}, nil)
		if err != nil {
			return entriesLoadedMsg{date: date, err: err}
		}
		return entriesLoadedMsg{date: date, entries: entries}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Format("Monday, 02 January 2006")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.entries) == 0 {
		b.WriteString("(no entries)\n")
	} else {
		var total time.Duration
		for i, entry := range m.entries {
			total += entry.Duration()
			line := fmt.Sprintf("%s - %s  %5s  %s",
				entry.Begin.Format("15:04"),
				entry.Cease.Format("15:04"),
				timelog.HMM(entry.Duration()),
				entry.Text)
			if i == m.selected {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(totalStyle.Render(fmt.Sprintf("Total %s", timelog.HMM(total))))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteByte('\n')
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteByte('\n')
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(faintStyle.Render("<-/h prev  ->/l next  j/k select  t today  r reload  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
