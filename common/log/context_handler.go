package log

import (
	"context"
	"log/slog"

	"opencsg.com/persona-predictor/common/utils/trace"
)

// ContextHandler is a slog.Handler that adds the request trace ID to every log record.
type ContextHandler struct {
	slog.Handler
}

// Handle adds the trace ID to the record before passing it to the underlying handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID, _ := trace.GetTraceIDFromContext(ctx); traceID != "" {
		r.AddAttrs(slog.String("trace_id", traceID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
