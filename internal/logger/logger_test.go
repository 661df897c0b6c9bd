package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown", "pid", "P1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown pid=P1")
}

func restoreDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		_ = Close()
	})
}

func TestSetupWritesToFile(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "sim.log")
	require.NoError(t, Setup(path, "debug"))

	slog.Debug("simulation finished", "processes", 3)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "simulation finished")
	assert.Contains(t, string(content), "processes=3")
}

func TestSetupRejectsLevel(t *testing.T) {
	assert.Error(t, Setup("", "nope"))
}

func TestSetupSwitchesFile(t *testing.T) {
	restoreDefault(t)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, Setup(first, "info"))
	opened := logFile
	slog.Info("to first")

	require.NoError(t, Setup(second, "info"))
	slog.Info("to second")

	// the first file handle was released
	assert.ErrorIs(t, opened.Close(), os.ErrClosed)

	content, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to first")
	assert.NotContains(t, string(content), "to second")

	content, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to second")
}

func TestClose(t *testing.T) {
	restoreDefault(t)

	assert.NoError(t, Close())

	require.NoError(t, Setup(filepath.Join(t.TempDir(), "sim.log"), "info"))
	require.NotNil(t, logFile)
	assert.NoError(t, Close())
	assert.Nil(t, logFile)
	assert.NoError(t, Close())
}

func TestSetupRejectedLevelKeepsFile(t *testing.T) {
	restoreDefault(t)

	require.NoError(t, Setup(filepath.Join(t.TempDir(), "sim.log"), "info"))
	opened := logFile

	assert.Error(t, Setup("", "nope"))
	assert.Same(t, opened, logFile)
}
