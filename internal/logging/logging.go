package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLogLevel selects the minimum level (debug, info, warn, error)
const EnvLogLevel = "TASKFLOW_LOG_LEVEL"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultPath returns ~/.taskflow/logs/taskflow.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskflow", "logs", "taskflow.log"), nil
}

// Init initializes the logging system, writing logs to ~/.taskflow/logs/taskflow.log
// Uses text format for human readability.
func Init() (io.Closer, error) {
	logPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return InitFile(logPath)
}

// InitFile installs a text logger appending to logPath as the slog default.
// The terminal belongs to the TUI, so nothing is logged to stdout or stderr.
func InitFile(logPath string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(EnvLogLevel)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelDebug
}
