package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestGetOrGenTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generate new trace ID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

		traceID := GetOrGenTraceID(c)
		assert.Len(t, traceID, 32)

		stored, exists := c.Get(HeaderRequestID)
		assert.True(t, exists)
		assert.Equal(t, traceID, stored)

		// cached on the second call
		assert.Equal(t, traceID, GetOrGenTraceID(c))

		fromCtx, traceparent := GetTraceIDFromContext(c.Request.Context())
		assert.Equal(t, traceID, fromCtx)
		assert.Contains(t, traceparent, traceID)
	})

	t.Run("trace ID from headers", func(t *testing.T) {
		cases := []struct {
			header   string
			value    string
			expected string
		}{
			{"traceparent", "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01", "0af7651916cd43dd8448eb211c80319c"},
			{"X-Request-ID", "my-request-id", "my-request-id"},
			{"X-B3-TraceId", "b3-trace", "b3-trace"},
		}
		for _, tc := range cases {
			t.Run(tc.header, func(t *testing.T) {
				c, _ := gin.CreateTestContext(httptest.NewRecorder())
				req, _ := http.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(tc.header, tc.value)
				c.Request = req

				assert.Equal(t, tc.expected, GetOrGenTraceID(c))
			})
		}
	})
}

func TestGetTraceIDFromContext(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		traceID, traceparent := GetTraceIDFromContext(context.Background())
		assert.Empty(t, traceID)
		assert.Empty(t, traceparent)
	})

	t.Run("otel span", func(t *testing.T) {
		tid, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		require.NoError(t, err)
		sid, err := trace.SpanIDFromHex("00f067aa0ba902b7")
		require.NoError(t, err)
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    tid,
			SpanID:     sid,
			TraceFlags: trace.FlagsSampled,
		}))

		traceID, traceparent := GetTraceIDFromContext(ctx)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traceID)
		assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", traceparent)
	})

	t.Run("generate when missing", func(t *testing.T) {
		traceID, traceparent, isNew := GetOrGenTraceIDFromContext(context.Background())
		assert.True(t, isNew)
		assert.Len(t, traceID, 32)
		assert.Equal(t, traceID, TraceIDFromTraceparent(traceparent))
	})
}

func TestTraceIDFromTraceparent(t *testing.T) {
	assert.Equal(t, "abc", TraceIDFromTraceparent("00-abc-def-01"))
	assert.Empty(t, TraceIDFromTraceparent("garbage"))
}
