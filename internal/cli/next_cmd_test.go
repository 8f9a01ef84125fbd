package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCmd_RanksTodayByShift(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "next")
	require.NoError(t, err)
	assert.Contains(t, out, "NEXT TO PREPARE")
	assert.Contains(t, out, "△ due soon")
	assert.Less(t, strings.Index(out, "Aula l2"), strings.Index(out, "Aula l1"))
	assert.NotContains(t, out, "Aula l3", "delivered lessons are done")
}

func TestNextCmd_ExplainAndLimit(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "next", "--limit", "1", "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "Aula l2")
	assert.NotContains(t, out, "Aula l1")
	assert.Contains(t, out, "+100.0 Due today")
}

func TestNextCmd_NothingLeft(t *testing.T) {
	app := testApp(t, nil)
	_, err := executeCmd(t, app, "lesson", "status", "l1", "delivered")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "lesson", "status", "l2", "delivered")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "next")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing left to prepare.")
}

func TestNextCmd_RejectsNegative(t *testing.T) {
	app := testApp(t, nil)
	_, err := executeCmd(t, app, "next", "--days", "-1")
	assert.Error(t, err)
}
