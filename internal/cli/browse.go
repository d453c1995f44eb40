package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jidn/idid-cli/internal/timelog"
	"github.com/jidn/idid-cli/internal/ui"
)

func newBrowseCommand(ctx context.Context, settings Settings, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the log one day at a time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := opts.manager()
			if err != nil {
				return err
			}
			reader := timelog.NewReader(manager)
			reader.StartText = settings.StartText

			m := ui.NewModel(ctx, reader)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}
