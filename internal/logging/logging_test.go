package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewWithWriter(config.LogConfig{Level: "warn", Format: config.LogFormatJSON}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("Sync failed", "entity_id", "e1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Sync failed", entry["msg"])
	assert.Equal(t, "e1", entry["entity_id"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "canvasync.log")
	var console bytes.Buffer

	logger, closer, err := NewWithWriter(config.LogConfig{
		Level:     "info",
		Format:    config.LogFormatText,
		File:      path,
		MaxSizeMB: 1,
	}, &console)
	require.NoError(t, err)

	logger.Info("Remote sync configured", "blocks_database_id", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Remote sync configured")
	assert.Contains(t, console.String(), "blocks_database_id=abc")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := NewWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, _, err = NewWithWriter(config.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewWithLevel_Runtime(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger, closer, err := NewWithLevel(config.LogConfig{Level: "error"}, &buf, level)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("before")
	require.NoError(t, SetLevel(level, "debug"))
	logger.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
	assert.Error(t, SetLevel(level, "verbose"))
	assert.Equal(t, slog.LevelDebug, level.Level())
}
