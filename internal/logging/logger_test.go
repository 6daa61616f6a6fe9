package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Format: "json", Level: zapcore.InfoLevel})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("parsed unit", zap.Int("statements", 3))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parsed unit", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["statements"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, entry["ts"])
}

func TestNewLogfmt(t *testing.T) {
	var buf bytes.Buffer

	// a buffer is not a terminal, so auto means logfmt
	log, err := New(&buf, NewConfig())
	require.NoError(t, err)

	log.Info("dropped below warn")
	log.Warn("slow", zap.String("path", "main.jm"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "msg=slow")
	assert.Contains(t, out, "path=main.jm")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	assert.EqualError(t, err, "unknown logging format: xml")
}

func TestContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	log := zap.NewExample()
	ctx := NewContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
