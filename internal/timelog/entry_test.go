package timelog

import (
	"strings"
	"testing"
	"time"
)

func TestParseLine(t *testing.T) {
	entry, err := ParseLine("2021-10-22 07:58:55-06:00\tmorning email")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	want := time.Date(2021, time.October, 22, 7, 58, 55, 0, time.FixedZone("", -6*3600))
	if !entry.Cease.Equal(want) {
		t.Errorf("cease = %s, want %s", entry.Cease, want)
	}
	if !entry.Begin.Equal(entry.Cease) {
		t.Errorf("begin = %s, want same as cease before reconstruction", entry.Begin)
	}
	if entry.Text != "morning email" {
		t.Errorf("text = %q, want %q", entry.Text, "morning email")
	}
}

func TestParseLineWithoutOffset(t *testing.T) {
	entry, err := ParseLine("2021-10-22 07:58:55\tmorning email")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if entry.Cease.Hour() != 7 || entry.Cease.Second() != 55 {
		t.Errorf("cease = %s, want 07:58:55", entry.Cease)
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"no tab here",
		"not-a-timestamp\ttext",
		"",
	} {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q) succeeded, want error", line)
		}
	}
}

func TestFormatLineRoundTrip(t *testing.T) {
	at := time.Date(2021, time.October, 22, 7, 58, 55, 0, time.FixedZone("", -6*3600))
	line := FormatLine(at, "morning email")
	if line != "2021-10-22 07:58:55-06:00\tmorning email" {
		t.Fatalf("FormatLine = %q", line)
	}

	entry, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !entry.Cease.Equal(at) || entry.Text != "morning email" {
		t.Fatalf("round trip = %s, want original timestamp and text", entry)
	}
}

func TestHMM(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "0:01"},
		{89 * time.Second, "0:01"},
		{90 * time.Second, "0:02"},
		{5000 * time.Second, "1:23"},
		{30*time.Hour + 45*time.Minute, "30:45"},
		{0, "0:00"},
	}
	for _, tc := range cases {
		if got := HMM(tc.d); got != tc.want {
			t.Errorf("HMM(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Begin: time.Date(2020, time.January, 1, 1, 2, 0, 0, time.UTC),
		Cease: time.Date(2020, time.January, 1, 2, 3, 0, 0, time.UTC),
		Text:  "Test",
	}
	got := e.String()
	if !strings.Contains(got, "02:03") || !strings.Contains(got, "(1:01)") || !strings.HasSuffix(got, "Test") {
		t.Errorf("String() = %q, want cease time, duration, and text", got)
	}
}
