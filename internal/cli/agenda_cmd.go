package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the lessons of one week, ordered by day and shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := app.now()
			if date != "" {
				parsed, err := time.ParseInLocation(domain.DateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				ref = parsed
			}
			return printWeek(cmd, app, ref)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "any day of the week to show (YYYY-MM-DD, default today)")
	return cmd
}

func printWeek(cmd *cobra.Command, app *App, ref time.Time) error {
	store, err := app.store()
	if err != nil {
		return err
	}
	lessons, units := store.Lessons(), store.Units()
	start, end := agenda.Window(ref, app.WeekStart)
	week := agenda.WeeklyAgenda(lessons, units, ref, app.WeekStart)

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(start, end, week, units, app.now()))
	return nil
}

func newMonthCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a calendar of one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			ref := app.now()
			if month != "" {
				parsed, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
				}
				ref = parsed
			}

			days := agenda.MonthGrid(store.Lessons(), ref)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(days, app.WeekStart, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default current)")
	return cmd
}
