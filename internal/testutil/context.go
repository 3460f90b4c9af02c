package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/bsv/internal/ctxlog"
)

// Context returns a background context carrying a logger that writes to w.
// A nil w discards the output.
func Context(w io.Writer) context.Context {
	if w == nil {
		w = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}
