package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jidn/idid-cli/internal/dates"
	"github.com/jidn/idid-cli/internal/files"
	"github.com/jidn/idid-cli/internal/report"
	"github.com/jidn/idid-cli/internal/timelog"
)

var progressColor = color.New(color.FgYellow)

// splitRangePair breaks a -r value such as "2020-01-01 7" or "mon,today"
// into its begin and through tokens.
func splitRangePair(raw string) ([2]string, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(tokens) != 2 {
		return [2]string{}, fmt.Errorf("range %q needs a begin and an end, as in -r 'mon today'", raw)
	}
	return [2]string{tokens[0], tokens[1]}, nil
}

// resolveSelection turns the date and filter flags into query arguments.
func resolveSelection(settings Settings, dateArgs, rangeArgs []string, find, exclude string, relative time.Time) ([]dates.DateRange, []timelog.Filter, error) {
	pairs := make([][2]string, 0, len(rangeArgs))
	for _, raw := range rangeArgs {
		pair, err := splitRangePair(raw)
		if err != nil {
			return nil, nil, err
		}
		pairs = append(pairs, pair)
	}

	resolver := dates.Resolver{Weekdays: settings.Weekdays}
	ranges, err := resolver.ResolveRanges(dateArgs, pairs, relative)
	if err != nil {
		return nil, nil, err
	}

	filters, err := timelog.ParseFilters(find, exclude)
	if err != nil {
		return nil, nil, err
	}
	return ranges, filters, nil
}

// showEntries prints a day detail when every entry falls on one date,
// otherwise a per-day summary. Without -d or -r it reports today and adds
// the still-running time since the last record.
func showEntries(ctx context.Context, cmd *cobra.Command, manager *files.Manager, settings Settings, opts *rootOptions) error {
	now := time.Now()
	defaulted := len(opts.dateArgs) == 0 && len(opts.rangeArgs) == 0
	dateArgs := opts.dateArgs
	if defaulted {
		dateArgs = []string{"0"}
	}

	ranges, filters, err := resolveSelection(settings, dateArgs, opts.rangeArgs, opts.find, opts.exclude, now)
	if err != nil {
		return err
	}
	if opts.verbose > 1 {
		parts := make([]string, len(ranges))
		for i, r := range ranges {
			parts[i] = r.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "For date ranges: %s\n", strings.Join(parts, ", "))
	}

	reader := timelog.NewReader(manager)
	reader.StartText = settings.StartText
	entries, err := reader.Query(ctx, ranges, filters)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) > 0 {
		var lines []string
		if dates.Day(entries[0].Begin).Equal(dates.Day(entries[len(entries)-1].Begin)) {
			lines = report.Detail(entries, settings.ReportWidth)
		} else {
			lines = report.DaySummary(entries)
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}

	if defaulted {
		last, err := reader.Last(ctx)
		if err == nil && dates.Day(last.Begin).Equal(dates.Day(now)) {
			progressColor.Fprintf(out, "%s in progress ...\n", timelog.HMM(now.Sub(last.Cease)))
		}
	}
	return nil
}

// queryEntries is the shared selection path for the report subcommands.
// Without -d or -r it covers the last two weeks, Sunday to today.
func queryEntries(ctx context.Context, settings Settings, opts *rootOptions) ([]timelog.Entry, error) {
	dateArgs, rangeArgs := opts.dateArgs, opts.rangeArgs
	if len(dateArgs) == 0 && len(rangeArgs) == 0 {
		rangeArgs = []string{"sun2 today"}
	}

	ranges, filters, err := resolveSelection(settings, dateArgs, rangeArgs, opts.find, opts.exclude, time.Now())
	if err != nil {
		return nil, err
	}

	manager, err := opts.manager()
	if err != nil {
		return nil, err
	}
	reader := timelog.NewReader(manager)
	reader.StartText = settings.StartText
	return reader.Query(ctx, ranges, filters)
}
