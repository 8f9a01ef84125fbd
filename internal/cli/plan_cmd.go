package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/importer"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newImportCmd(app *App) *cobra.Command {
	var merge, dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load lessons and units from a plan file",
		Long: "Load lessons and units from a JSON plan file in the endpoint format.\n" +
			"By default the file replaces the local dataset; --merge upserts by id instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			pf, err := importer.LoadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan file: %w", err)
			}
			if errs := importer.ValidatePlanFile(pf); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(out, formatter.StyleRed.Render("  • "+e.Error()))
				}
				return fmt.Errorf("plan file has %d problem(s): %w", len(errs), multierr.Combine(errs...))
			}

			mode := importer.Replace
			if merge {
				mode = importer.Merge
			}
			next, rep := importer.Apply(store.Snapshot(), pf, mode)

			fmt.Fprintf(out, "Lessons: %d added, %d updated. Units: %d added, %d updated.\n",
				rep.LessonsAdded, rep.LessonsUpdated, rep.UnitsAdded, rep.UnitsUpdated)
			if len(rep.Dangling) > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("%d lesson(s) reference a unit that does not exist.", len(rep.Dangling))))
			}
			if dryRun {
				fmt.Fprintln(out, formatter.Dim("Dry run: nothing was changed."))
				return nil
			}

			if err := store.ReplaceAll(next); err != nil {
				return fmt.Errorf("applying plan file: %w", err)
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render("Imported.")+syncNote(store))
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "upsert by id and keep entries the file does not mention")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and report without changing anything")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the current lessons and units as a plan file (stdout when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			store, err := app.store()
			if err != nil {
				return err
			}
			snap := store.Snapshot()

			if len(args) == 0 {
				return importer.WritePlanFile(cmd.OutOrStdout(), snap)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating plan file: %w", err)
			}
			defer func() { err = multierr.Append(err, f.Close()) }()

			if err := importer.WritePlanFile(f, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d lessons and %d units to %s.\n",
				len(snap.Lessons), len(snap.Units), args[0])
			return nil
		},
	}
}
