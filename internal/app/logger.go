// Package app holds process-level wiring shared by the commands.
package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rcliao/learning-journal/internal/config"
)

// NewLogger creates a *slog.Logger from cfg and sets it as the default
// logger. Format "json" writes JSON lines, anything else writes text with
// source info. Output is always os.Stderr so stdout stays clean for data.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
