package agenda

import (
	"testing"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassCodes_DistinctInOrder(t *testing.T) {
	units := []domain.Unit{
		testutil.NewTestUnit("a", testutil.WithClassCode("ADAG - V5")),
		testutil.NewTestUnit("b", testutil.WithClassCode("DEIU - V1")),
		testutil.NewTestUnit("c", testutil.WithClassCode("ADAG - V5")),
	}

	assert.Equal(t, []string{"ADAG - V5", "DEIU - V1"}, ClassCodes(units))
	assert.Len(t, UnitsByClass(units, "ADAG - V5"), 2)
	assert.Empty(t, UnitsByClass(units, "NONE"))
}

func TestUnitLessons_SortedByDate(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("late", "u1", "2026-02-10"),
		testutil.NewTestLesson("other", "u2", "2026-01-01"),
		testutil.NewTestLesson("early", "u1", "2026-01-15"),
	}

	assert.Equal(t, []string{"early", "late"}, ids(UnitLessons(lessons, "u1")))
}

func TestGroupByUnit_ExcludesDanglingLessons(t *testing.T) {
	units := []domain.Unit{testutil.NewTestUnit("u2")}
	lessons := testutil.ScenarioLessons() // l2 references u1, which is absent

	groups := GroupByUnit(lessons, units)
	require.Len(t, groups, 1)
	assert.Equal(t, "u2", groups[0].Unit.ID)
	assert.Equal(t, []string{"l1"}, ids(groups[0].Lessons))

	orphans := Orphans(lessons, units)
	require.Len(t, orphans, 1)
	assert.Equal(t, "u1", orphans[0].UnitID, "dangling reference is kept, not rewritten")
}

func TestFindHelpers(t *testing.T) {
	u, ok := FindUnit(testutil.ScenarioUnits(), "u2")
	require.True(t, ok)
	assert.Equal(t, "Noite", u.Shift)

	_, ok = FindUnit(nil, "u2")
	assert.False(t, ok)

	l, ok := FindLesson(testutil.ScenarioLessons(), "l2")
	require.True(t, ok)
	assert.Equal(t, "u1", l.UnitID)
}

func TestStatusCounts(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("a", "u1", "2026-01-01", testutil.WithStatus(domain.StatusDelivered)),
		testutil.NewTestLesson("b", "u1", "2026-01-02", testutil.WithStatus(domain.StatusDelivered)),
		testutil.NewTestLesson("c", "u1", "2026-01-03"),
	}

	counts := StatusCounts(lessons)
	assert.Equal(t, 2, counts[domain.StatusDelivered])
	assert.Equal(t, 1, counts[domain.StatusToPrepare])
	assert.Equal(t, 0, counts[domain.StatusInPreparation])
}

func TestMonthGrid(t *testing.T) {
	lessons := []domain.Lesson{
		testutil.NewTestLesson("a", "u1", "2026-02-05"),
		testutil.NewTestLesson("b", "u2", "2026-02-05"),
		testutil.NewTestLesson("c", "u1", "2026-03-01"),
	}

	days := MonthGrid(lessons, time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC))
	require.Len(t, days, 28)
	assert.Equal(t, 1, days[0].Date.Day())
	assert.Equal(t, []string{"a", "b"}, ids(days[4].Lessons))
	for i, d := range days {
		if i != 4 {
			assert.Empty(t, d.Lessons, d.Date.String())
		}
	}

	assert.Equal(t, []string{"c"}, ids(LessonsOn(lessons, date("2026-03-01"))))
}
