package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a lesson status.
func StatusColor(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusToPrepare:
		return StyleRed
	case domain.StatusInPreparation:
		return StyleYellow
	case domain.StatusDelivered:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusBadge returns a colored status indicator such as "● Preparando".
func StatusBadge(status domain.Status) string {
	switch status {
	case domain.StatusToPrepare:
		return StyleRed.Render("○ " + string(status))
	case domain.StatusInPreparation:
		return StyleYellow.Render("◐ " + string(status))
	case domain.StatusDelivered:
		return StyleGreen.Render("● " + string(status))
	default:
		return StyleDim.Render("? " + string(status))
	}
}

// ShiftBadge renders a shift label in a color per period of the day.
func ShiftBadge(shift string) string {
	if shift == "" {
		return StyleDim.Render("--")
	}
	lower := strings.ToLower(shift)
	switch {
	case strings.Contains(lower, "manh") || strings.Contains(lower, "morning"):
		return StyleYellow.Render(shift)
	case strings.Contains(lower, "tarde") || strings.Contains(lower, "afternoon"):
		return StyleBlue.Render(shift)
	case strings.Contains(lower, "noite") || strings.Contains(lower, "night") || strings.Contains(lower, "evening"):
		return StylePurple.Render(shift)
	default:
		return StyleFg.Render(shift)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
