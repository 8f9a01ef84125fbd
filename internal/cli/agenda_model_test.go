package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/remote"
	"github.com/alexanderramin/lessonplan/internal/teatest"
	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgendaDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	m := newAgendaModel(app, app.Store)
	unsubscribe := m.subscribe()
	t.Cleanup(unsubscribe)

	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func agendaView(d *teatest.Driver) string {
	return stripANSI(d.View())
}

func TestAgenda_ShowsCurrentWeekInShiftOrder(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	view := agendaView(d)
	assert.Contains(t, view, "Sun 18 Jan to Sat 24 Jan 2026")
	assert.Contains(t, view, "offline")
	assert.Less(t, strings.Index(view, "Aula l2"), strings.Index(view, "Aula l1"))
	assert.Contains(t, view, "› Today", "cursor starts on the first lesson")
}

func TestAgenda_WeekNavigation(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressRight()
	view := agendaView(d)
	assert.Contains(t, view, "Sun 25 Jan to Sat 31 Jan 2026")
	assert.Contains(t, view, "Aula l3")

	d.PressRight()
	assert.Contains(t, agendaView(d), "No lessons scheduled this week.")

	d.PressLeft()
	d.PressLeft()
	d.PressLeft()
	assert.Contains(t, agendaView(d), "Sun 11 Jan to Sat 17 Jan 2026")

	d.PressKey('t')
	assert.Contains(t, agendaView(d), "Sun 18 Jan to Sat 24 Jan 2026")
}

func TestAgenda_CycleStatusOfSelectedLesson(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressDown()
	d.PressKey('s')
	assert.Equal(t, domain.StatusInPreparation, lesson(t, app, "l1").Status)
	assert.Equal(t, domain.StatusToPrepare, lesson(t, app, "l2").Status)
	assert.Contains(t, agendaView(d), "◐ Preparando")

	d.PressKey('s')
	d.PressKey('s')
	assert.Equal(t, domain.StatusToPrepare, lesson(t, app, "l1").Status)
}

func TestAgenda_CursorStaysInBounds(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressUp()
	d.PressDown()
	d.PressDown()
	d.PressDown()
	d.PressKey('s')
	assert.Equal(t, domain.StatusInPreparation, lesson(t, app, "l1").Status, "cursor clamps at the last row")
}

func TestAgenda_EditObservations(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressKey('o')
	assert.Contains(t, agendaView(d), "enter: save")
	d.Type("quiz")
	d.PressEnter()

	assert.Equal(t, "quiz", lesson(t, app, "l2").Observations)
	view := agendaView(d)
	assert.Contains(t, view, "Obs: quiz")
	assert.Contains(t, view, "Observations saved.")
}

func TestAgenda_EditObservationsEscCancels(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressKey('o')
	d.Type("q")
	d.PressEsc()

	assert.False(t, d.Quitting, "q while editing is text, not quit")
	assert.Empty(t, lesson(t, app, "l2").Observations)
}

func TestAgenda_PullOffline(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressKey('r')
	assert.Contains(t, agendaView(d), "Offline: set an endpoint")
}

func TestAgenda_PullReplacesData(t *testing.T) {
	rem := &stubRemote{}
	app := testApp(t, rem)
	app.Store.SetRemoteURL("https://script.example.com/exec")
	require.NoError(t, app.Store.Wait())
	d := newAgendaDriver(t, app)
	assert.Contains(t, agendaView(d), "Aula l1")

	rem.mu.Lock()
	rem.pullRes = &remote.PullResult{
		Lessons: []domain.Lesson{testutil.NewTestLesson("p1", "u1", "2026-01-21", testutil.WithTitle("Puxada"))},
	}
	rem.mu.Unlock()
	d.PressKey('r')
	d.Settle(200 * time.Millisecond)

	view := agendaView(d)
	assert.Contains(t, view, "Puxada")
	assert.NotContains(t, view, "Aula l1")
	assert.Contains(t, view, "Pulled latest data.")
}

func TestAgenda_PullFailureShowsMessage(t *testing.T) {
	rem := &stubRemote{}
	app := testApp(t, rem)
	app.Store.SetRemoteURL("https://script.example.com/exec")
	require.NoError(t, app.Store.Wait())
	d := newAgendaDriver(t, app)

	rem.mu.Lock()
	rem.pullErr = remote.ErrNetwork
	rem.mu.Unlock()
	d.PressKey('r')
	d.Settle(200 * time.Millisecond)

	view := agendaView(d)
	assert.Contains(t, view, "failed to download data")
	assert.Contains(t, view, "sync error")
}

func TestAgenda_RefreshesOnStoreChange(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	_, err := app.Store.UpdateLessonStatus("l2", domain.StatusDelivered)
	require.NoError(t, err)

	require.Positive(t, d.Settle(time.Second))
	assert.Contains(t, agendaView(d), "● Entregue")
}

func TestAgenda_Quit(t *testing.T) {
	app := testApp(t, nil)
	d := newAgendaDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
