package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv(EnvLogLevel, "")

	logPath := filepath.Join(t.TempDir(), "nested", "taskflow.log")
	closer, err := InitFile(logPath)
	require.NoError(t, err)

	slog.Info("request completed", "status", 204)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "request completed")
	assert.Contains(t, string(data), "status=204")
}

func TestLevelFromEnv(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Setenv(EnvLogLevel, raw)
			assert.Equal(t, want, levelFromEnv())
		})
	}
}
