package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "cmdtree.log")

	l, err := New(logPath, zerolog.DebugLevel)
	require.NoError(t, err)

	l.Info("rendered %d nodes", 7)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "rendered 7 nodes")
	require.Contains(t, string(data), `"level":"info"`)
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "cmdtree.log")

	l, err := New(logPath, zerolog.WarnLevel)
	require.NoError(t, err)

	l.Debug("should be dropped")
	l.Warn("should be kept")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(data), "should be dropped")
	require.Contains(t, string(data), "should be kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.WarnLevel},
		{"", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestInitSetsGlobalLogger(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "cmdtree.log")

	require.NoError(t, Init(logPath, zerolog.DebugLevel))

	// Concurrent readers of the global logger while writing.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			Debug("global write %d", i)
		}
		close(done)
	}()
	Info("global logger ready")
	<-done

	require.NoError(t, Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "global logger ready")
	require.Contains(t, string(data), "global write 9")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Debug("no panic")
	l.Info("no panic")
	l.Warn("no panic")
	l.Error("no panic")
	require.NoError(t, l.Close())
}

func TestWithComponent(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "cmdtree.log")

	l, err := New(logPath, zerolog.DebugLevel)
	require.NoError(t, err)

	l.With("tree").Info("built")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"component":"tree"`)
}
