package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestClient() *Client {
	return NewClient(2*time.Second, zap.NewNop(), WithClock(func() time.Time { return fixedNow }))
}

func serveJSON(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://script.google.com/macros/s/abc/exec"))
	assert.NoError(t, ValidateURL("HTTP://localhost:8080"))

	for _, bad := range []string{"", "script.google.com/exec", "ftp://example.com", "https://"} {
		assert.ErrorIs(t, ValidateURL(bad), ErrInvalidURL, bad)
	}
}

func TestPull_InvalidURLFailsWithoutRequest(t *testing.T) {
	_, err := newTestClient().Pull(context.Background(), "script.google.com/exec")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestPull_AddsCacheBuster(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient().Pull(context.Background(), srv.URL+"/exec?sheet=2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026"}, gotQuery["sheet"])
	assert.Equal(t, []string{"1768910400000"}, gotQuery["t"])
}

func TestPull_FullDataset(t *testing.T) {
	payload := domain.Snapshot{Lessons: testutil.ScenarioLessons(), Units: testutil.ScenarioUnits()}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	srv := serveJSON(t, http.StatusOK, string(data))

	res, err := newTestClient().Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload.Lessons, res.Lessons)
	assert.Equal(t, payload.Units, res.Units)
	assert.Empty(t, res.Rejected)
}

func TestPull_OnlyLessonsLeavesUnitsAbsent(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{"lessons":[{"id":"l9","blockId":"u1","date":"2026-01-21","status":"Entregue"}]}`)

	res, err := newTestClient().Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, res.Lessons, 1)
	assert.Equal(t, domain.StatusDelivered, res.Lessons[0].Status)
	assert.Nil(t, res.Units)
}

func TestPull_EmptyArrayIsPresent(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{"lessons":[],"units":null}`)

	res, err := newTestClient().Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotNil(t, res.Lessons)
	assert.Empty(t, res.Lessons)
	assert.Nil(t, res.Units)
}

func TestPull_MalformedFieldsAreRejectedNotFatal(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{
		"lessons": {"id": "not-an-array"},
		"units": [{"id": "u1", "name": "ok"}]
	}`)

	res, err := newTestClient().Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Nil(t, res.Lessons)
	require.Len(t, res.Units, 1)
	require.Len(t, res.Rejected, 1)
	assert.Contains(t, res.Rejected[0], "lessons")
}

func TestPull_InvalidEntryRejectsWholeField(t *testing.T) {
	cases := map[string]string{
		"bad status":   `{"lessons":[{"id":"a","date":"2026-01-20","status":"Pronto"}]}`,
		"bad date":     `{"lessons":[{"id":"a","date":"20/01/2026"}]}`,
		"missing id":   `{"lessons":[{"date":"2026-01-20"}]}`,
		"duplicate id": `{"lessons":[{"id":"a","date":"2026-01-20"},{"id":"a","date":"2026-01-21"}]}`,
		"not object":   `{"lessons":["a"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := serveJSON(t, http.StatusOK, body)
			res, err := newTestClient().Pull(context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Nil(t, res.Lessons)
			assert.Len(t, res.Rejected, 1)
		})
	}
}

func TestPull_TimestampDatesKeepCalendarDay(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{"lessons":[`+
		`{"id":"a","blockId":"u1","date":"2026-01-20T03:00:00.000Z","status":"Preparar"},`+
		`{"id":"b","blockId":"u1","date":"2026-01-21","status":"Entregue"}]}`)

	res, err := newTestClient().Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, res.Rejected)
	require.Len(t, res.Lessons, 2)
	assert.Equal(t, "2026-01-20", res.Lessons[0].Date)
	assert.Equal(t, "2026-01-21", res.Lessons[1].Date)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-01-20", normalizeDate("2026-01-20T03:00:00.000Z"))
	assert.Equal(t, "2026-01-20", normalizeDate("2026-01-20T00:00:00-03:00"))
	assert.Equal(t, "2026-01-20", normalizeDate("2026-01-20"))
	assert.Equal(t, "2026-01-20Tnoon", normalizeDate("2026-01-20Tnoon"))
	assert.Equal(t, "20/01/2026 10:00", normalizeDate("20/01/2026 10:00"))
}

func TestPull_ErrorPayload(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `{"status":"error","message":"sheet not found"}`)

	_, err := newTestClient().Pull(context.Background(), srv.URL)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "sheet not found", remoteErr.Detail)
}

func TestPull_HTTPStatusError(t *testing.T) {
	srv := serveJSON(t, http.StatusForbidden, `denied`)

	_, err := newTestClient().Pull(context.Background(), srv.URL)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	assert.Equal(t, "Forbidden", remoteErr.Status)
}

func TestPull_UndecodableBody(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `<html>login</html>`)

	_, err := newTestClient().Pull(context.Background(), srv.URL)
	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
}

func TestPull_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient().Pull(context.Background(), url)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestPush_SendsPlainTextSnapshot(t *testing.T) {
	var gotMethod, gotType string
	var got domain.Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	t.Cleanup(srv.Close)

	snap := domain.Snapshot{Lessons: testutil.ScenarioLessons(), Units: testutil.ScenarioUnits()}
	d, err := newTestClient().Push(context.Background(), srv.URL, snap)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "text/plain;charset=utf-8", gotType)
	assert.Equal(t, snap, got)
	assert.Equal(t, srv.URL, d.Endpoint)
	assert.Positive(t, d.Bytes)
	assert.Equal(t, fixedNow, d.At)
}

func TestPush_EmptySnapshotEncodesArrays(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient().Push(context.Background(), srv.URL, domain.Snapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw["lessons"]))
	assert.JSONEq(t, `[]`, string(raw["units"]))
}

func TestPush_RemoteRejectionIsInvisible(t *testing.T) {
	srv := serveJSON(t, http.StatusInternalServerError, `{"status":"error","message":"quota"}`)

	d, err := newTestClient().Push(context.Background(), srv.URL, domain.Snapshot{})
	require.NoError(t, err, "push reports dispatch, not acceptance")
	assert.NotNil(t, d)
}

func TestPush_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient().Push(context.Background(), url, domain.Snapshot{})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestPush_InvalidURL(t *testing.T) {
	_, err := newTestClient().Push(context.Background(), "nope", domain.Snapshot{})
	assert.ErrorIs(t, err, ErrInvalidURL)
}
