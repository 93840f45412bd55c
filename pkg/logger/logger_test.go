package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("dashboard", &buf, LevelDebug).(*jsonLogger)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	l.Warn("malformed amount", map[string]interface{}{"field": "balance", "message": "shadowed"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "dashboard", entry["service"])
	assert.Equal(t, "malformed amount", entry["message"])
	assert.Equal(t, "balance", entry["field"])
	assert.Equal(t, "shadowed", entry["field_message"])
	assert.Equal(t, "2024-03-01T12:00:00Z", entry["timestamp"])
}

func TestJSONLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("dashboard", &buf, LevelWarn)

	l.Debug("gate evaluated", nil)
	l.Info("page rendered", nil)
	assert.Empty(t, buf.String())

	l.Error("accounts unavailable", nil)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("dashboard", &buf, LevelInfo).(*jsonLogger)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("invalid configuration", nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), `"level":"fatal"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
