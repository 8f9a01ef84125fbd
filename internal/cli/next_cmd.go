package cli

import (
	"fmt"

	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	var days, limit int
	var explain bool

	cmd := &cobra.Command{
		Use:     "next",
		Aliases: []string{"queue"},
		Short:   "List the lessons to prepare next, most urgent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 || limit < 0 {
				return fmt.Errorf("--days and --limit must not be negative")
			}
			store, err := app.store()
			if err != nil {
				return err
			}
			now := app.now()
			queue := scheduler.PrepQueue(store.Lessons(), store.Units(), scheduler.Options{
				Now:     now,
				Horizon: days,
				Limit:   limit,
			})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrepQueue(queue, now, explain))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "look this many days ahead (0 = no limit); overdue lessons are always listed")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum lessons to list (0 = all)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show why each lesson is ranked where it is")
	return cmd
}
