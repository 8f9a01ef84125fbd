package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lessonplanHuhTheme returns a huh theme matching the formatter palette.
func lessonplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// shiftOptions are the shifts offered by the unit form, in day order.
var shiftOptions = []string{"Manhã", "Tarde", "Noite"}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// unitForm returns a themed form that edits u in place.
func unitForm(u *domain.Unit) *huh.Form {
	if u.Shift == "" {
		u.Shift = shiftOptions[0]
	}
	opts := make([]huh.Option[string], 0, len(shiftOptions)+1)
	for _, s := range shiftOptions {
		opts = append(opts, huh.NewOption(s, s))
	}
	known := false
	for _, s := range shiftOptions {
		known = known || s == u.Shift
	}
	if !known {
		opts = append(opts, huh.NewOption(u.Shift, u.Shift))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("Lógica de Programação").Value(&u.Name).Validate(validateRequired),
			huh.NewInput().Title("Class code").Placeholder("TI - V1").Value(&u.ClassCode).Validate(validateRequired),
			huh.NewSelect[string]().Title("Shift").Options(opts...).Value(&u.Shift),
			huh.NewInput().Title("Location").Placeholder("Sala 3 / Lab B").Value(&u.Location),
		),
		huh.NewGroup(
			huh.NewText().Title("Description").Value(&u.Description),
			huh.NewInput().Title("Class diary link").Value(&u.DiaryLink),
			huh.NewInput().Title("Drive folder link").Value(&u.DriveLink),
		),
	).WithTheme(lessonplanHuhTheme()).WithShowHelp(false)
}
