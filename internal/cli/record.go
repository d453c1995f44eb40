package cli

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jidn/idid-cli/internal/files"
	"github.com/jidn/idid-cli/internal/timelog"
)

var confirmColor = color.New(color.FgGreen)

// whenPattern matches HH:MM with an optional am/pm suffix. Only a "p"
// suffix on an hour below 12 shifts into the afternoon.
var whenPattern = regexp.MustCompile(`^(0?\d|1\d|2[0-3]):([0-5]\d)(am|pm)?$`)

// parseWhen turns the -t value into a timestamp. Empty means relative
// itself, a bare number means that many minutes earlier, and HH:MM picks
// the time of day on relative's date.
func parseWhen(text string, relative time.Time) (time.Time, error) {
	if text == "" {
		return relative, nil
	}
	if n, err := strconv.Atoi(text); err == nil && n >= 0 {
		return relative.Add(-time.Duration(n) * time.Minute), nil
	}

	m := whenPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as -t WHEN parameter", text)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 12 && strings.HasPrefix(m[3], "p") {
		hour += 12
	}
	return time.Date(relative.Year(), relative.Month(), relative.Day(),
		hour, minute, relative.Second(), 0, relative.Location()), nil
}

func recordStart(ctx context.Context, cmd *cobra.Command, manager *files.Manager, settings Settings, opts *rootOptions) error {
	at, err := parseWhen(opts.when, time.Now())
	if err != nil {
		return err
	}

	writer := timelog.NewWriter(manager)
	if err := writer.Append(ctx, at, settings.StartText); err != nil {
		return err
	}
	if opts.verbose > 0 {
		confirmColor.Fprintf(cmd.OutOrStdout(), "Thank you. Started at %s.\n", at.Format("15:04"))
	}
	return nil
}

func recordText(ctx context.Context, cmd *cobra.Command, manager *files.Manager, opts *rootOptions, args []string) error {
	at, err := parseWhen(opts.when, time.Now())
	if err != nil {
		return err
	}

	writer := timelog.NewWriter(manager)
	if err := writer.Append(ctx, at, strings.Join(args, " ")); err != nil {
		return err
	}
	if opts.verbose > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), at.Format(timelog.LineLayout))
	}
	return nil
}
