package middleware

import (
	"github.com/gin-gonic/gin"
	"opencsg.com/persona-predictor/common/utils/trace"
)

// Request makes sure every request carries a trace id, echoed back in X-Request-ID.
func Request() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		traceID := trace.GetOrGenTraceID(ctx)
		ctx.Writer.Header().Set(trace.HeaderRequestID, traceID)
		ctx.Next()
	}
}
