package cmd

import (
	"io"
	"log/slog"
)

// NewLogger writes JSON in production and human-readable text elsewhere.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
