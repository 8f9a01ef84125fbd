package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImportCmd_Replace(t *testing.T) {
	app := testApp(t, nil)
	path := writePlan(t, `{
		"units": [{"id": "n1", "name": "Redes", "code": "TI - V3", "shift": "Tarde"}],
		"lessons": [{"id": "x1", "blockId": "n1", "number": "Aula 1", "date": "2026-01-21", "title": "Camadas"}]
	}`)

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Lessons: 1 added, 0 updated. Units: 1 added, 0 updated.")
	assert.Contains(t, out, "Imported.")

	snap := app.Store.Snapshot()
	require.Len(t, snap.Lessons, 1)
	assert.Equal(t, "Camadas", snap.Lessons[0].Title)
	require.Len(t, snap.Units, 1)
}

func TestImportCmd_Merge(t *testing.T) {
	app := testApp(t, nil)
	path := writePlan(t, `{"lessons": [{"id": "l1", "blockId": "u2", "date": "2026-01-20", "status": "Entregue"}]}`)

	out, err := executeCmd(t, app, "import", "--merge", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Lessons: 0 added, 1 updated.")
	assert.Len(t, app.Store.Lessons(), 3)
	assert.Equal(t, "Entregue", string(lesson(t, app, "l1").Status))
}

func TestImportCmd_DryRunChangesNothing(t *testing.T) {
	app := testApp(t, nil)
	before := app.Store.Snapshot()
	path := writePlan(t, `{"lessons": [{"id": "z", "blockId": "ghost", "date": "2026-01-20"}], "units": []}`)

	out, err := executeCmd(t, app, "import", "--dry-run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 lesson(s) reference a unit that does not exist.")
	assert.Contains(t, out, "Dry run")
	assert.Equal(t, before, app.Store.Snapshot())
}

func TestImportCmd_InvalidFileListsProblems(t *testing.T) {
	app := testApp(t, nil)
	before := app.Store.Snapshot()
	path := writePlan(t, `{"lessons": [{"id": "a", "date": "tomorrow"}, {"date": "2026-01-20", "status": "Done"}]}`)

	out, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan file has 3 problem(s)")
	assert.Contains(t, out, `lessons[0].date: invalid date format "tomorrow"`)
	assert.Contains(t, out, "lessons[1].id is required")
	assert.Contains(t, out, `lessons[1].status: invalid value "Done"`)
	assert.Equal(t, before, app.Store.Snapshot())
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t, nil)
	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportCmd_RoundTrip(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "l3"`)
	assert.Contains(t, out, `"status": "Entregue"`)

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err = executeCmd(t, app, "export", path)
	require.NoError(t, err)

	other := testApp(t, nil)
	other.Store.DeleteUnit("u1")
	_, err = executeCmd(t, other, "import", path)
	require.NoError(t, err)
	assert.Equal(t, app.Store.Snapshot(), other.Store.Snapshot())
}
