package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates new Logger instance with the specified level. Level is one
// of "debug", "info", "warn", "error"; anything else means info.
func New(level string) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
