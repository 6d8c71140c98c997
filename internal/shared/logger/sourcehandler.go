package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the call site to records at or above minSource.
// Repository and service failures log at warn or error, so in production
// only those lines carry file:line; debug mode lowers the floor to debug.
type sourceHandler struct {
	next      slog.Handler
	minSource slog.Level
}

// NewSourceHandler wraps next. next must not add source itself.
func NewSourceHandler(next slog.Handler, minSource slog.Level) slog.Handler {
	return &sourceHandler{next: next, minSource: minSource}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), minSource: h.minSource}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), minSource: h.minSource}
}
