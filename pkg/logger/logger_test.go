package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONOutputWithField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Output: &buf}).WithField("widget", "abc")

	log.Debug("hidden")
	log.Info("loaded", "location", "Paris")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "abc", entry["widget"])
	assert.Equal(t, "Paris", entry["location"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Format: "text", Output: &buf}).Warn("slow provider")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "slow provider")
}
