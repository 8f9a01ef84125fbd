package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "class",
		Aliases: []string{"classes"},
		Short:   "Inspect classes (groups of units sharing a class code)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List class codes with their units and shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassList(store.Units()))
			return nil
		},
	})
	return cmd
}

func newUnitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unit",
		Aliases: []string{"units", "block"},
		Short:   "Manage curricular units",
	}

	cmd.AddCommand(
		newUnitListCmd(app),
		newUnitShowCmd(app),
		newUnitAddCmd(app),
		newUnitUpdateCmd(app),
		newUnitRemoveCmd(app),
	)

	return cmd
}

func newUnitListCmd(app *App) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List units with delivery progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			units := store.Units()
			if class != "" {
				units = agenda.UnitsByClass(units, class)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnitList(units, store.Lessons()))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "only units of this class code")
	return cmd
}

func newUnitShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a unit and its lessons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			u, ok := agenda.FindUnit(store.Units(), args[0])
			if !ok {
				return fmt.Errorf("unit not found: %q", args[0])
			}
			lessons := agenda.UnitLessons(store.Lessons(), u.ID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnitDetail(u, lessons, app.now()))
			return nil
		},
	}
}

// unitFlags binds one flag per editable unit field.
type unitFlags struct {
	id, name, class, shift, description, diary, location, drive string
}

func (f *unitFlags) register(fs *pflag.FlagSet, withID bool) {
	if withID {
		fs.StringVar(&f.id, "id", "", "unit id (generated when omitted)")
	}
	fs.StringVar(&f.name, "name", "", "unit name")
	fs.StringVar(&f.class, "class", "", "class code, e.g. \"TI - V1\"")
	fs.StringVar(&f.shift, "shift", "", "shift: Manhã, Tarde or Noite")
	fs.StringVar(&f.description, "description", "", "description")
	fs.StringVar(&f.diary, "diary", "", "class diary link")
	fs.StringVar(&f.location, "location", "", "room or lab")
	fs.StringVar(&f.drive, "drive", "", "drive folder link")
}

var unitFieldFlags = []string{"name", "class", "shift", "description", "diary", "location", "drive"}

// changed reports whether any field flag was set.
func (f *unitFlags) changed(fs *pflag.FlagSet) bool {
	for _, name := range unitFieldFlags {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// apply copies the flags the user actually set onto u.
func (f *unitFlags) apply(fs *pflag.FlagSet, u *domain.Unit) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = strings.TrimSpace(v)
		}
	}
	set("name", &u.Name, f.name)
	set("class", &u.ClassCode, f.class)
	set("shift", &u.Shift, f.shift)
	set("description", &u.Description, f.description)
	set("diary", &u.DiaryLink, f.diary)
	set("location", &u.Location, f.location)
	set("drive", &u.DriveLink, f.drive)
}

func newUnitAddCmd(app *App) *cobra.Command {
	var flags unitFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a unit (opens a form when run interactively without --name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}

			u := domain.Unit{ID: strings.TrimSpace(flags.id)}
			flags.apply(cmd.Flags(), &u)

			if u.Name == "" {
				if !app.interactive() {
					return errors.New("--name is required when not running in a terminal")
				}
				if err := unitForm(&u).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return fmt.Errorf("running unit form: %w", err)
				}
			}

			added, err := store.AddUnit(u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added unit %s [%s]%s\n", added.Name, added.ID, syncNote(store))
			return nil
		},
	}

	flags.register(cmd.Flags(), true)
	return cmd
}

func newUnitUpdateCmd(app *App) *cobra.Command {
	var flags unitFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of a unit (opens a form when run interactively without flags)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			u, ok := agenda.FindUnit(store.Units(), args[0])
			if !ok {
				return fmt.Errorf("unit not found: %q", args[0])
			}

			if !flags.changed(cmd.Flags()) {
				if !app.interactive() {
					return errors.New("nothing to update: pass at least one field flag")
				}
				if err := unitForm(&u).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return fmt.Errorf("running unit form: %w", err)
				}
			} else {
				flags.apply(cmd.Flags(), &u)
			}

			if !store.UpdateUnit(u) {
				return fmt.Errorf("unit not found: %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated unit %s [%s]%s\n", u.Name, u.ID, syncNote(store))
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	return cmd
}

func newUnitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a unit (its lessons are kept)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			if !store.DeleteUnit(args[0]) {
				return fmt.Errorf("unit not found: %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed unit %s%s\n", args[0], syncNote(store))
			if n := len(agenda.UnitLessons(store.Lessons(), args[0])); n > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d lesson(s) still reference it; they now sort last within their day.", n)))
			}
			return nil
		},
	}
}
