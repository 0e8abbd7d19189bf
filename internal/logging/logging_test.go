package logging

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
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "letter", "Q")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "letter")
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")

	logger, closeLog, err := ToFile(path, "info")
	require.NoError(t, err)
	logger.Info("board loaded", "names", 3)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "board loaded")
	assert.NotContains(t, string(data), "\x1b[", "file output is uncolored")
}

func TestToFile_BadPath(t *testing.T) {
	_, _, err := ToFile(filepath.Join(t.TempDir(), "missing", "tui.log"), "info")
	assert.Error(t, err)
}
