package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/lessonplan/internal/planner"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the state store and display settings.
type App struct {
	Store     *planner.Store
	WeekStart time.Weekday
	Now       func() time.Time

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// agenda browser are only offered when it returns true.
	IsInteractive func() bool

	// Open builds Store from the global flags. It runs once before any
	// subcommand when Store is still nil.
	Open func(configPath, dbPath string) error
}

var errNoStore = errors.New("planner store is not initialised")

func (a *App) store() (*planner.Store, error) {
	if a.Store == nil {
		return nil, errNoStore
	}
	return a.Store, nil
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lessonplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, dbPath string

	root := &cobra.Command{
		Use:           "lessonplan",
		Short:         "Weekly lesson planner with optional spreadsheet sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Store != nil || app.Open == nil {
				return nil
			}
			return app.Open(configPath, dbPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runAgendaTUI(cmd, app)
			}
			return printWeek(cmd, app, app.now())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/lessonplan/config.toml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "database path, overrides the config file")

	root.AddCommand(
		newWeekCmd(app),
		newMonthCmd(app),
		newLessonCmd(app),
		newNextCmd(app),
		newClassCmd(app),
		newUnitCmd(app),
		newSyncCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newTUICmd(app),
	)

	return root
}
