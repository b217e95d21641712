// Package log configures the process-wide structured logger.
package log

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const envLogLevel = "HARU_LOG_LEVEL"

// Setup directs slog output to a size-rotated log file. User-facing output
// goes through report and ui instead.
func Setup(pathToLogFile string) {
	rotated := &lumberjack.Logger{
		Filename:   pathToLogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}

	handler := slog.NewTextHandler(rotated, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})

	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(envLogLevel)) {
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
