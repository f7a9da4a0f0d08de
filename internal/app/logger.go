package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/stagehype-backend/internal/config"
)

const appName = "stagehype-api"

// NewLogger builds the process logger from cfg, writes to stderr and installs
// it as the slog default. Every record carries the app name and version so
// logs from the server and the cmd tools can be told apart.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(
		slog.String("app", appName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler returns a JSON handler for format "json" and a text handler with
// source locations otherwise.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	json := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
