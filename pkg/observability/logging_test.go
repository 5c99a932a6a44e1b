package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.in), "level %q", tc.in)
	}
}

func TestInitLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLogger(LogConfig{Level: "info", Format: "json", Output: &buf})
	logger.Info("hello", "session_id", "s-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "s-1", entry["session_id"])
}

func TestInitLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLogger(LogConfig{Level: "warn", Format: "text", Output: &buf})
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLogger(LogConfig{Level: "info", Format: "json", Output: &buf})
	WithService(logger, "lending-console").Info("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lending-console", entry["service"])
}
