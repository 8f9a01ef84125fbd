package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/domain"
)

// StatusSummary renders per-status counts on one line.
func StatusSummary(lessons []domain.Lesson) string {
	counts := agenda.StatusCounts(lessons)
	parts := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		parts = append(parts, fmt.Sprintf("%s %d", StatusBadge(s), counts[s]))
	}
	return strings.Join(parts, "   ")
}

// FormatWeek renders the weekly agenda. lessons must already be filtered
// and ordered.
func FormatWeek(start, end time.Time, lessons []domain.Lesson, units []domain.Unit, now time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %s to %s", start.Format("Mon 02 Jan"), end.Format("Mon 02 Jan 2006"))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		u, _ := agenda.FindUnit(units, l.UnitID)
		rows = append(rows, []string{
			LessonDayStyled(l.Date, now),
			ShiftBadge(u.Shift),
			Placeholder(u.ClassCode),
			Placeholder(Truncate(u.Name, 28)),
			l.SequenceLabel,
			Truncate(l.Title, 36),
			StatusBadge(l.Status),
			Dim(l.ID),
		})
	}
	b.WriteString(RenderTable(
		[]string{"DAY", "SHIFT", "CLASS", "UNIT", "LESSON", "TITLE", "STATUS", "ID"},
		rows,
		"No lessons scheduled this week.",
	))

	if len(lessons) > 0 {
		b.WriteString("\n")
		b.WriteString(StatusSummary(lessons))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMonth renders a calendar grid for days, with the lessons of each
// busy day listed below it.
func FormatMonth(days []agenda.Day, weekStart time.Weekday, now time.Time) string {
	if len(days) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header(days[0].Date.Format("January 2006")))
	b.WriteString("\n\n")

	const cellWidth = 6
	for i := 0; i < 7; i++ {
		name := time.Weekday((int(weekStart) + i) % 7).String()[:3]
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-*s", cellWidth, name)))
	}
	b.WriteString("\n")

	lead := (int(days[0].Date.Weekday()) - int(weekStart) + 7) % 7
	b.WriteString(strings.Repeat(" ", lead*cellWidth))
	col := lead
	today := now.Format(domain.DateLayout)
	for _, d := range days {
		num := fmt.Sprintf("%2d", d.Date.Day())
		switch {
		case d.Date.Format(domain.DateLayout) == today:
			num = StyleHeader.Render(num)
		case len(d.Lessons) > 0:
			num = StyleBold.Render(num)
		default:
			num = StyleDim.Render(num)
		}
		marker := "    "
		if n := len(d.Lessons); n > 0 {
			marker = StyleGreen.Render(fmt.Sprintf("·%-3d", n))
		}
		b.WriteString(num + marker)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	busy := false
	for _, d := range days {
		if len(d.Lessons) == 0 {
			continue
		}
		if !busy {
			b.WriteString("\n")
			busy = true
		}
		b.WriteString(Bold(d.Date.Format("Mon 02")))
		b.WriteString("\n")
		for _, l := range d.Lessons {
			fmt.Fprintf(&b, "  %s  %s  %s\n", StatusBadge(l.Status), l.SequenceLabel, Truncate(l.Title, 48))
		}
	}
	if !busy {
		b.WriteString("\n" + Dim("No lessons this month.") + "\n")
	}
	return b.String()
}

// FormatLessonList renders lessons as a table with their unit.
func FormatLessonList(lessons []domain.Lesson, units []domain.Unit, now time.Time) string {
	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		unitName := StyleRed.Render("(unit removed)")
		if u, ok := agenda.FindUnit(units, l.UnitID); ok {
			unitName = Truncate(u.Name, 28)
		}
		rows = append(rows, []string{
			Dim(l.ID),
			LessonDayStyled(l.Date, now),
			unitName,
			l.SequenceLabel,
			Truncate(l.Title, 36),
			StatusBadge(l.Status),
		})
	}
	return RenderTable([]string{"ID", "DATE", "UNIT", "LESSON", "TITLE", "STATUS"}, rows, "No lessons.")
}

// FormatLessonDetail renders every field of l. unit is nil when the lesson
// references a unit that no longer exists.
func FormatLessonDetail(l domain.Lesson, unit *domain.Unit, now time.Time) string {
	unitLine := StyleRed.Render("(unit " + l.UnitID + " removed)")
	if unit != nil {
		unitLine = fmt.Sprintf("%s  %s  %s", unit.Name, Dim(unit.ClassCode), ShiftBadge(unit.Shift))
	}

	lines := []string{
		field("Title", Bold(l.Title)),
		field("Date", fmt.Sprintf("%s %s", LessonDayStyled(l.Date, now), Dim("("+l.Date+")"))),
		field("Unit", unitLine),
		field("Status", StatusBadge(l.Status)),
		field("Description", Placeholder(l.Description)),
		field("Resources", Placeholder(l.ResourceNote)),
		field("Presentation", Placeholder(l.PresentationNote)),
		field("Observations", Placeholder(l.Observations)),
		field("Link", Placeholder(l.Link)),
	}
	return RenderBox(l.SequenceLabel+" · "+l.ID, strings.Join(lines, "\n"))
}

// FormatUnitList renders units with their delivery progress.
func FormatUnitList(units []domain.Unit, lessons []domain.Lesson) string {
	rows := make([][]string, 0, len(units))
	for _, g := range agenda.GroupByUnit(lessons, units) {
		delivered := agenda.StatusCounts(g.Lessons)[domain.StatusDelivered]
		rows = append(rows, []string{
			Dim(g.Unit.ID),
			Placeholder(g.Unit.ClassCode),
			Truncate(g.Unit.Name, 36),
			ShiftBadge(g.Unit.Shift),
			Placeholder(g.Unit.Location),
			fmt.Sprintf("%d/%d", delivered, len(g.Lessons)),
		})
	}
	return RenderTable([]string{"ID", "CLASS", "NAME", "SHIFT", "LOCATION", "DELIVERED"}, rows, "No units.")
}

// FormatUnitDetail renders u with its lessons in date order.
func FormatUnitDetail(u domain.Unit, lessons []domain.Lesson, now time.Time) string {
	lines := []string{
		field("Class", Placeholder(u.ClassCode)),
		field("Shift", ShiftBadge(u.Shift)),
		field("Location", Placeholder(u.Location)),
		field("Description", Placeholder(u.Description)),
		field("Diary", Placeholder(u.DiaryLink)),
		field("Drive", Placeholder(u.DriveLink)),
		"",
		StatusSummary(lessons),
	}
	box := RenderBox(u.Name+" · "+u.ID, strings.Join(lines, "\n"))
	return box + "\n\n" + FormatLessonList(lessons, []domain.Unit{u}, now)
}

// FormatClassList renders one row per class code.
func FormatClassList(units []domain.Unit) string {
	codes := agenda.ClassCodes(units)
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		members := agenda.UnitsByClass(units, code)
		var shifts []string
		seen := make(map[string]bool)
		for _, u := range members {
			if u.Shift != "" && !seen[u.Shift] {
				seen[u.Shift] = true
				shifts = append(shifts, u.Shift)
			}
		}
		rows = append(rows, []string{
			Bold(code),
			fmt.Sprintf("%d", len(members)),
			Placeholder(strings.Join(shifts, ", ")),
		})
	}
	return RenderTable([]string{"CLASS", "UNITS", "SHIFTS"}, rows, "No classes.")
}

func field(label, value string) string {
	return fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%-13s", label)), value)
}
