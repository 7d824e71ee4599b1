package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pharmacy-inventory/internal/pkg/logger"
)

func TestLogger_JSONIncludesContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter(&logger.LogConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "pharmacy",
	}, &buf)

	ctx, sessionID := logger.NewSessionContext(context.Background())
	ctx = logger.WithAction(ctx, "add")
	ctx = logger.WithDataFile(ctx, "pharmacy_data.json")

	log.InfoContext(ctx, "record added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "record added", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, sessionID, entry["session_id"])
	assert.Equal(t, "add", entry["action"])
	assert.Equal(t, "pharmacy_data.json", entry["data_file"])
	assert.Equal(t, "pharmacy", entry["service"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter(&logger.LogConfig{
		Level:  "warn",
		Format: "json",
	}, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter(&logger.LogConfig{
		Level:  "info",
		Format: "text",
	}, &buf)

	ctx := logger.WithAction(context.Background(), "search")
	log.With("store", "jsonfile").InfoContext(ctx, "record selected", "index", 2)

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "record selected")
	assert.Contains(t, line, "store=jsonfile")
	assert.Contains(t, line, "index=2")
	assert.Contains(t, line, "action=search")
	assert.NotContains(t, line, "\033[", "color is off unless requested")
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	log, err := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "json", Output: "discard"})
	require.NoError(t, err)
	assert.NoError(t, log.Close())
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pharmacy.log")

	log, err := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "json", Output: "file:" + path})
	require.NoError(t, err)

	log.Info("record added")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "record added")
}

func TestNewLogger_UnavailableOutput(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		errorContains string
	}{
		{
			name:          "unopenable_file",
			output:        "file:" + filepath.Join(t.TempDir(), "missing", "dir", "pharmacy.log"),
			errorContains: "failed to open log file",
		},
		{
			name:          "unknown_output",
			output:        "syslog",
			errorContains: "unknown log output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "text", Output: tt.output})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			require.NotNil(t, log, "a discarding logger is still returned")
			assert.NotPanics(t, func() { log.Info("dropped") })
			assert.NoError(t, log.Close())
		})
	}
}
