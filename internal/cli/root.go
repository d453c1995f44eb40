// Package cli wires the idid command tree. The bare command records an
// accomplishment when given text, otherwise it reports how time was spent.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jidn/idid-cli/internal/config"
	"github.com/jidn/idid-cli/internal/dates"
	"github.com/jidn/idid-cli/internal/files"
	"github.com/jidn/idid-cli/internal/timelog"
)

// Settings carries the defaults resolved from config and environment
// before flags are parsed. Flags override everything here.
type Settings struct {
	TSVPath     string
	StartText   string
	ReportWidth int
	Weekdays    dates.Weekdays
	Email       config.Email
}

// NewSettings layers environment variables over the loaded config.
// ididTSV and ididSTART win over their config counterparts.
func NewSettings(cfg config.Config) Settings {
	s := Settings{
		TSVPath:     cfg.TSVPath,
		StartText:   cfg.StartText,
		ReportWidth: cfg.ReportWidth,
		Email:       cfg.Email,
	}
	if env := os.Getenv("ididTSV"); env != "" {
		s.TSVPath = env
	}
	if env := os.Getenv("ididSTART"); env != "" {
		s.StartText = env
	}
	if s.StartText == "" {
		s.StartText = timelog.DefaultStartText
	}
	if s.ReportWidth <= 0 {
		s.ReportWidth = 80
	}
	if len(cfg.Weekdays) == 7 {
		s.Weekdays = dates.Weekdays(cfg.Weekdays)
	}
	return s
}

type rootOptions struct {
	dateArgs  []string
	rangeArgs []string
	find      string
	exclude   string
	tsvPath   string
	verbose   int

	when  string
	start bool
	edit  bool
}

func (o *rootOptions) manager() (*files.Manager, error) {
	return files.NewManager(o.tsvPath)
}

// NewRootCommand creates the top-level Cobra command hosting the record
// and report paths plus subcommands.
func NewRootCommand(ctx context.Context, settings Settings) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "idid [TEXT...]",
		Short: "Record accomplishments and report how your time was spent.",
		Long: `Record what you just finished, or look back at where the time went.

With TEXT the command appends an accomplishment ending now (or at -t).
With -s it marks the start of your day. Without either it reports
entries for the selected dates, defaulting to today.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := opts.manager()
			if err != nil {
				return err
			}

			switch {
			case opts.edit:
				return files.OpenInEditor(manager.TSVPath())
			case opts.start:
				return recordStart(ctx, cmd, manager, settings, opts)
			case len(args) > 0:
				return recordText(ctx, cmd, manager, opts, args)
			default:
				return showEntries(ctx, cmd, manager, settings, opts)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringArrayVarP(&opts.dateArgs, "date", "d", nil, "number of DAYS earlier, DOW[n], [YYYY]MMDD; repeat or comma separate")
	pf.StringArrayVarP(&opts.rangeArgs, "range", "r", nil, "quoted pair 'DATE DATE' or 'DATE DAYS'")
	pf.StringVarP(&opts.find, "find", "f", "", "find entries matching REGEX")
	pf.StringVarP(&opts.exclude, "exclude", "x", "", "exclude entries matching REGEX")
	pf.StringVar(&opts.tsvPath, "tsv", settings.TSVPath, "accomplishment TSV file")
	pf.CountVarP(&opts.verbose, "verbose", "v", "verbose, repeat for more")

	cmd.Flags().StringVarP(&opts.when, "when", "t", "", "record either WHEN minutes ago or HH:MM")
	cmd.Flags().BoolVarP(&opts.start, "start", "s", false, "start your day")
	cmd.Flags().BoolVarP(&opts.edit, "edit", "e", false, "edit the TSV file using EDITOR")

	cmd.AddCommand(
		newBrowseCommand(ctx, settings, opts),
		newHTMLCommand(ctx, settings, opts),
		newEmailCommand(ctx, settings, opts),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads config, layers the environment, and runs the root.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, NewSettings(cfg))
	return cmd.Execute()
}

// Main is the wrapper used by cmd/idid/main.go.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
