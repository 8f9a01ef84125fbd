package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"agenda"},
		Short:   "Browse the weekly agenda interactively",
		Long: `Browse the weekly agenda interactively.

Pulls from the endpoint on start when one is configured, and redraws
whenever a background sync changes the data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgendaTUI(cmd, app)
		},
	}
}

func runAgendaTUI(cmd *cobra.Command, app *App) error {
	store, err := app.store()
	if err != nil {
		return err
	}

	m := newAgendaModel(app, store)
	unsubscribe := m.subscribe()
	defer unsubscribe()
	store.Start()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running agenda: %w", err)
	}
	return nil
}
