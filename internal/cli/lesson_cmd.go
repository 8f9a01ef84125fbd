package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/planner"
	"github.com/spf13/cobra"
)

func newLessonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lesson",
		Aliases: []string{"lessons", "aula"},
		Short:   "Inspect and update lessons",
	}

	cmd.AddCommand(
		newLessonListCmd(app),
		newLessonShowCmd(app),
		newLessonStatusCmd(app),
		newLessonNoteCmd(app),
		newLessonLinkCmd(app),
	)

	return cmd
}

func newLessonListCmd(app *App) *cobra.Command {
	var unitID, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons in date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}

			var want domain.Status
			if status != "" {
				if want, err = domain.ParseStatus(status); err != nil {
					return err
				}
			}

			lessons := store.Lessons()
			if unitID != "" {
				lessons = agenda.UnitLessons(lessons, unitID)
			}
			filtered := lessons[:0]
			for _, l := range lessons {
				if want == "" || l.Status == want {
					filtered = append(filtered, l)
				}
			}
			sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLessonList(filtered, store.Units(), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "only lessons of this unit")
	cmd.Flags().StringVar(&status, "status", "", "only lessons with this status")
	return cmd
}

func newLessonShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show every field of a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			l, ok := agenda.FindLesson(store.Lessons(), args[0])
			if !ok {
				return fmt.Errorf("lesson not found: %q", args[0])
			}

			var unit *domain.Unit
			if u, ok := agenda.FindUnit(store.Units(), l.UnitID); ok {
				unit = &u
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLessonDetail(l, unit, app.now()))
			return nil
		},
	}
}

func newLessonStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a lesson's preparation status",
		Long: "Set a lesson's preparation status.\n\n" +
			"STATUS is one of Preparar, Preparando, Entregue\n" +
			"(or to-prepare, in-preparation, delivered), or \"next\" to advance one step.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			id := args[0]

			var status domain.Status
			if strings.EqualFold(args[1], "next") {
				l, ok := agenda.FindLesson(store.Lessons(), id)
				if !ok {
					return fmt.Errorf("lesson not found: %q", id)
				}
				status = l.Status.Next()
			} else if status, err = domain.ParseStatus(args[1]); err != nil {
				return err
			}

			ok, err := store.UpdateLessonStatus(id, status)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("lesson not found: %q", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lesson %s is now %s%s\n", id, formatter.StatusBadge(status), syncNote(store))
			return nil
		},
	}
}

func newLessonNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note ID TEXT...",
		Short: "Replace a lesson's observations (empty text clears them)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if !store.UpdateLessonObservation(args[0], text) {
				return fmt.Errorf("lesson not found: %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated observations of lesson %s%s\n", args[0], syncNote(store))
			return nil
		},
	}
}

func newLessonLinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link ID URL",
		Short: "Set the material link of a lesson (empty URL clears it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			if !store.UpdateLessonLink(args[0], strings.TrimSpace(args[1])) {
				return fmt.Errorf("lesson not found: %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated link of lesson %s%s\n", args[0], syncNote(store))
			return nil
		},
	}
}

// syncNote tells the user a background push was started for the change.
func syncNote(store *planner.Store) string {
	if store.RemoteURL() == "" {
		return ""
	}
	return formatter.Dim(" (sending to endpoint)")
}
