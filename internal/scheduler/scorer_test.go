package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 1, 20, 18, 30, 0, 0, time.UTC)

func ids(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Lesson.ID)
	}
	return out
}

func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, daysUntil(now, day))
	assert.Equal(t, 0, daysUntil(now, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, daysUntil(now, time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDeadlineMessage(t *testing.T) {
	tests := map[int]string{
		-3: "Was due 3 days ago",
		-1: "Was due yesterday",
		0:  "Due today",
		1:  "Due tomorrow",
		5:  "Due in 5 days",
	}
	for days, want := range tests {
		assert.Equal(t, want, formatDeadlineMessage(days))
	}
}

func TestPrepQueue_SkipsDeliveredAndBadDates(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("done", "u1", "2026-01-21", testutil.WithStatus(domain.StatusDelivered)),
		testutil.NewTestLesson("broken", "u1", "21/01/2026"),
		testutil.NewTestLesson("todo", "u1", "2026-01-21"),
	}

	got := PrepQueue(lessons, testutil.ScenarioUnits(), Options{Now: now})
	assert.Equal(t, []string{"todo"}, ids(got))
}

func TestPrepQueue_OrdersByUrgencyDateShift(t *testing.T) {
	units := testutil.ScenarioUnits() // u1 morning, u2 evening
	lessons := []domain.Lesson{
		testutil.NewTestLesson("later", "u1", "2026-02-10"),
		testutil.NewTestLesson("soon-evening", "u2", "2026-01-21"),
		testutil.NewTestLesson("soon-morning", "u1", "2026-01-21"),
		testutil.NewTestLesson("late", "u2", "2026-01-15"),
		testutil.NewTestLesson("today", "u2", "2026-01-20"),
	}

	got := PrepQueue(lessons, units, Options{Now: now})
	assert.Equal(t, []string{"late", "today", "soon-morning", "soon-evening", "later"}, ids(got))

	assert.Equal(t, UrgencyOverdue, got[0].Urgency)
	assert.Equal(t, UrgencyDueSoon, got[1].Urgency)
	assert.Equal(t, UrgencyOnTrack, got[4].Urgency)
	assert.Equal(t, 21, got[4].DaysUntil)
}

func TestPrepQueue_HorizonKeepsOverdueAndLimitCaps(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("late", "u1", "2026-01-02"),
		testutil.NewTestLesson("week", "u1", "2026-01-26"),
		testutil.NewTestLesson("far", "u1", "2026-03-01"),
	}

	got := PrepQueue(lessons, testutil.ScenarioUnits(), Options{Now: now, Horizon: 7})
	assert.Equal(t, []string{"late", "week"}, ids(got))

	got = PrepQueue(lessons, testutil.ScenarioUnits(), Options{Now: now, Limit: 1})
	assert.Equal(t, []string{"late"}, ids(got))
}

func TestPrepQueue_ScoreReasons(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("wip", "u1", "2026-01-22", testutil.WithStatus(domain.StatusInPreparation)),
		testutil.NewTestLesson("orphan", "gone", "2026-01-22"),
	}

	got := PrepQueue(lessons, testutil.ScenarioUnits(), Options{Now: now})
	require.Len(t, got, 2)

	wip := got[0]
	require.Equal(t, "wip", wip.Lesson.ID, "a known unit sorts before a missing one on the same day")
	require.NotNil(t, wip.Unit)
	assert.InDelta(t, 40.0+15.0, wip.Score, 0.001)
	require.Len(t, wip.Reasons, 2)
	assert.Equal(t, ReasonDeadline, wip.Reasons[0].Code)
	assert.Equal(t, "Due in 2 days", wip.Reasons[0].Message)
	assert.Equal(t, ReasonMomentum, wip.Reasons[1].Code)

	orphan := got[1]
	assert.Nil(t, orphan.Unit)
	assert.Equal(t, ReasonNoUnit, orphan.Reasons[len(orphan.Reasons)-1].Code)
}

func TestPrepQueue_CustomWeights(t *testing.T) {
	lessons := []domain.Lesson{testutil.NewTestLesson("l", "u1", "2026-01-20")}
	got := PrepQueue(lessons, testutil.ScenarioUnits(), Options{
		Now:     now,
		Weights: &ScoringWeights{Deadline: 0.5},
	})
	require.Len(t, got, 1)
	assert.InDelta(t, 50.0, got[0].Score, 0.001)
}
