package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// LessonDayFrom renders a lesson date relative to now: "Today",
// "Tomorrow", "Yesterday" or "Tue 20 Jan". Unparseable dates are shown
// as stored.
func LessonDayFrom(date string, now time.Time) string {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	return day.Format("Mon 02 Jan")
}

// LessonDayStyled highlights today's date in the header color.
func LessonDayStyled(date string, now time.Time) string {
	text := LessonDayFrom(date, now)
	if text == "Today" {
		return StyleHeader.Render(text)
	}
	return StyleFg.Render(text)
}

// Truncate shortens s to max visible runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// Placeholder returns s, or a dim "--" when s is empty.
func Placeholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return StyleDim.Render("--")
	}
	return s
}
