package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderTraceparent = "Traceparent"
	HeaderXB3         = "X-B3-TraceId"
)

// traceContextKey is the private key of the traceparent stored in context.Context.
type traceContextKey struct{}

// headers checked in order when the request carries no otel span
var traceHeaders = []string{
	HeaderTraceparent,
	HeaderRequestID,
	HeaderXB3,
}

// GetOrGenTraceID returns the trace ID of the request, generating one if the
// request has none. The ID is cached in the gin context and its traceparent is
// injected into the request context so that slog handlers can read it.
func GetOrGenTraceID(c *gin.Context) string {
	traceID := GetTraceIDInGinContext(c)
	traceparent := ""
	if traceID == "" {
		traceID, traceparent, _ = GetOrGenTraceIDFromContext(c.Request.Context())
	}
	c.Set(HeaderRequestID, traceID)

	spanCtx := trace.SpanContextFromContext(c.Request.Context())
	if traceparent == "" && spanCtx.HasTraceID() {
		traceparent = fmt.Sprintf("00-%s-%s-%02x", spanCtx.TraceID().String(), spanCtx.SpanID().String(), byte(spanCtx.TraceFlags()))
	}
	if traceparent == "" {
		traceparent = fmt.Sprintf("00-%s-0000000000000000-01", traceID)
	}

	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), traceContextKey{}, traceparent))
	return traceID
}

// GetTraceIDInGinContext looks up the trace ID in the gin cache, then in the
// otel span, then in the well known trace headers.
func GetTraceIDInGinContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(HeaderRequestID); ok {
		if tid, ok := v.(string); ok {
			return tid
		}
	}
	if c.Request == nil {
		return ""
	}

	span := trace.SpanFromContext(c.Request.Context())
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	for _, header := range traceHeaders {
		value := c.Request.Header.Get(header)
		if value == "" {
			continue
		}
		if header == HeaderTraceparent {
			if tid := TraceIDFromTraceparent(value); tid != "" {
				return tid
			}
			continue
		}
		return value
	}
	return ""
}

// TraceIDFromTraceparent extracts the trace id of a W3C traceparent
// (version-traceid-spanid-flags).
func TraceIDFromTraceparent(traceparent string) string {
	parts := strings.Split(traceparent, "-")
	if len(parts) == 4 {
		return parts[1]
	}
	return ""
}

// GetTraceIDFromContext reads the trace ID from the context value set by
// GetOrGenTraceID or from the otel span. It never generates a new ID.
func GetTraceIDFromContext(ctx context.Context) (traceID, traceparent string) {
	if ctx == nil {
		return "", ""
	}
	// gin.Context.Value does not reach struct keys of the request context
	if c, ok := ctx.(*gin.Context); ok && c.Request != nil {
		ctx = c.Request.Context()
	}

	if v, ok := ctx.Value(traceContextKey{}).(string); ok {
		return TraceIDFromTraceparent(v), v
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() && spanCtx.HasSpanID() {
		traceID = spanCtx.TraceID().String()
		traceparent = fmt.Sprintf("00-%s-%s-%02x", traceID, spanCtx.SpanID().String(), byte(spanCtx.TraceFlags()))
		return traceID, traceparent
	}
	return "", ""
}

// GetOrGenTraceIDFromContext returns the trace info of ctx, or a freshly
// generated trace ID and traceparent with isNew set.
func GetOrGenTraceIDFromContext(ctx context.Context) (traceID, traceparent string, isNew bool) {
	traceID, traceparent = GetTraceIDFromContext(ctx)
	if traceID != "" {
		return traceID, traceparent, false
	}

	traceID = strings.ReplaceAll(uuid.New().String(), "-", "")
	spanID := make([]byte, 8)
	_, _ = rand.Read(spanID)
	traceparent = fmt.Sprintf("00-%s-%s-01", traceID, hex.EncodeToString(spanID))
	return traceID, traceparent, true
}
