package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jidn/idid-cli/internal/mail"
	"github.com/jidn/idid-cli/internal/report"
)

func newHTMLCommand(ctx context.Context, settings Settings, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Write the HTML report to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := queryEntries(ctx, settings, opts)
			if err != nil {
				return err
			}
			page, err := report.HTML(entries)
			if err != nil {
				return err
			}
			if page == "" {
				return fmt.Errorf("no entries selected")
			}
			fmt.Fprintln(cmd.OutOrStdout(), page)
			return nil
		},
	}
}

func newEmailCommand(ctx context.Context, settings Settings, opts *rootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email the HTML report using the configured SMTP server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := mail.NewSender(settings.Email)
			if err != nil {
				return err
			}

			entries, err := queryEntries(ctx, settings, opts)
			if err != nil {
				return err
			}
			page, err := report.HTML(entries)
			if err != nil {
				return err
			}
			if page == "" {
				return fmt.Errorf("no entries selected")
			}

			if subject == "" {
				subject = settings.Email.Subject
			}
			if subject == "" {
				subject = "Timesheet for " + time.Now().Format("2006-01-02")
			}
			if err := sender.Send(mail.Message{Subject: subject, HTML: page}); err != nil {
				return err
			}
			if opts.verbose > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Sent %q to %s.\n", subject, settings.Email.To)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "override the email subject")

	return cmd
}
