package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/scheduler"
)

// UrgencyBadge renders a candidate's urgency.
func UrgencyBadge(u scheduler.Urgency) string {
	switch u {
	case scheduler.UrgencyOverdue:
		return StyleRed.Render("▲ overdue")
	case scheduler.UrgencyDueSoon:
		return StyleYellow.Render("△ due soon")
	default:
		return StyleGreen.Render("· on track")
	}
}

// FormatPrepQueue renders the ranked list of lessons still to prepare.
// When explain is set each row is followed by its scoring reasons.
func FormatPrepQueue(queue []scheduler.Candidate, now time.Time, explain bool) string {
	var b strings.Builder
	b.WriteString(Header("Next to prepare"))
	b.WriteString("\n\n")

	if len(queue) == 0 {
		b.WriteString(Dim("Nothing left to prepare.") + "\n")
		return b.String()
	}

	for i, c := range queue {
		unit := StyleRed.Render("(unit removed)")
		if c.Unit != nil {
			unit = Truncate(c.Unit.Name, 28)
		}
		fmt.Fprintf(&b, "%s %s  %s  %s  %s  %s\n",
			Dim(fmt.Sprintf("%2d.", i+1)),
			UrgencyBadge(c.Urgency),
			LessonDayStyled(c.Lesson.Date, now),
			Bold(c.Lesson.SequenceLabel),
			Truncate(c.Lesson.Title, 36),
			Dim("· "+unit+" · "+c.Lesson.ID),
		)
		if !explain {
			continue
		}
		for _, r := range c.Reasons {
			fmt.Fprintf(&b, "      %s %s\n", Dim(fmt.Sprintf("%+.1f", r.WeightDelta)), r.Message)
		}
	}
	return b.String()
}
