package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"unknown", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestFileSinkReceivesLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "run.log")

	l, err := New(InfoLevel, logFile)
	require.NoError(t, err)

	l.Info("hello %s", "world")
	l.Debug("filtered out at info level")
	l.Warn("careful")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[INFO] hello world")
	assert.Contains(t, out, "[WARN] careful")
	assert.NotContains(t, out, "filtered out")
}

func TestCloseWithoutFileIsSafe(t *testing.T) {
	l, err := New(ErrorLevel, "")
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}
