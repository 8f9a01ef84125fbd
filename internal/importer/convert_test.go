package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentSnapshot() domain.Snapshot {
	return domain.Snapshot{Lessons: testutil.ScenarioLessons(), Units: testutil.ScenarioUnits()}
}

func TestApply_Replace(t *testing.T) {
	pf := validMinimalPlan()

	out, rep := Apply(currentSnapshot(), pf, Replace)

	assert.Equal(t, pf.Snapshot(), out)
	assert.Equal(t, Report{LessonsAdded: 1, UnitsAdded: 1}, rep)
}

func TestApply_MergeUpsertsByID(t *testing.T) {
	cur := currentSnapshot()
	pf := &PlanFile{
		Units: []domain.Unit{testutil.NewTestUnit("u1", testutil.WithShift("Tarde")), testutil.NewTestUnit("u9")},
		Lessons: []domain.Lesson{
			testutil.NewTestLesson("l1", "u2", "2026-01-20", testutil.WithStatus(domain.StatusDelivered)),
			testutil.NewTestLesson("l9", "u9", "2026-01-22"),
		},
	}

	out, rep := Apply(cur, pf, Merge)

	assert.Equal(t, Report{LessonsAdded: 1, LessonsUpdated: 1, UnitsAdded: 1, UnitsUpdated: 1}, rep)
	require.Len(t, out.Units, 3)
	assert.Equal(t, "Tarde", out.Units[0].Shift)
	assert.Equal(t, "u9", out.Units[2].ID)
	require.Len(t, out.Lessons, 3)
	assert.Equal(t, domain.StatusDelivered, out.Lessons[0].Status)
	assert.Equal(t, "l9", out.Lessons[2].ID)

	assert.Equal(t, currentSnapshot(), cur, "current is not modified")
}

func TestApply_ReportsDanglingLessons(t *testing.T) {
	pf := &PlanFile{Lessons: []domain.Lesson{testutil.NewTestLesson("l7", "gone", "2026-01-20")}}

	_, rep := Apply(currentSnapshot(), pf, Merge)
	assert.Equal(t, []string{"l7"}, rep.Dangling)

	_, rep = Apply(currentSnapshot(), pf, Replace)
	assert.Equal(t, []string{"l7"}, rep.Dangling)
}

func TestWriteThenLoadPlanFile(t *testing.T) {
	snap := currentSnapshot()
	path := filepath.Join(t.TempDir(), "plan.json")

	var buf bytes.Buffer
	require.NoError(t, WritePlanFile(&buf, snap))
	assert.Contains(t, buf.String(), `"blockId": "u2"`)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	pf, err := LoadPlanFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, pf.Snapshot())
}

func TestLoadPlanFile_Missing(t *testing.T) {
	_, err := LoadPlanFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
