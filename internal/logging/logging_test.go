package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("key", "lessonplan_units"))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "lessonplan_units", entry["key"])
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNew_ConsoleDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}
